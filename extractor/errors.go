/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package extractor implements the Text Placement Collector: it drives a
// contentstream.Processor over a page (and any Form XObjects it invokes),
// owns the graphics-state and text-object state the interpreter itself
// knows nothing about, and folds the result into page-coordinate
// TextPlacement records.
package extractor

import (
	"golang.org/x/xerrors"
)

// Kind classifies an extraction failure so a caller can tell a fatal
// condition from a per-page or per-font recoverable one.
type Kind int

const (
	// KindIOError means the source document is unreadable; fatal.
	KindIOError Kind = iota
	// KindMalformedPDF means a structural parser failure below this
	// module; recoverable per page.
	KindMalformedPDF
	// KindParseError means content-stream tokenization failed; the
	// current stream is aborted, extraction continues with the next one.
	KindParseError
	// KindUnsupportedFont means a font subtype or encoding could not be
	// decoded; placements for it fall back to raw Latin-1 bytes.
	KindUnsupportedFont
	// KindRecursionLimit means Form XObject nesting exceeded the
	// configured depth; the current page is aborted.
	KindRecursionLimit
)

func (k Kind) String() string {
	switch k {
	case KindIOError:
		return "IOError"
	case KindMalformedPDF:
		return "MalformedPDF"
	case KindParseError:
		return "ParseError"
	case KindUnsupportedFont:
		return "UnsupportedFont"
	case KindRecursionLimit:
		return "RecursionLimit"
	default:
		return "Unknown"
	}
}

// Error is an extraction failure tagged with its Kind, wrapping the
// underlying cause so xerrors.Is/As still see through to it.
type Error struct {
	Kind  Kind
	Page  int
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}
	return xerrors.Errorf("%s (page %d): %w", e.Kind, e.Page, e.cause).Error()
}

// Unwrap exposes the wrapped cause to xerrors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// newError wraps cause (which may be nil) as an Error of the given Kind.
func newError(kind Kind, page int, cause error) *Error {
	return &Error{Kind: kind, Page: page, cause: cause}
}

// IsFatal reports whether err should abort extraction of the whole
// document rather than just the current page or font.
func IsFatal(err error) bool {
	var e *Error
	if !xerrors.As(err, &e) {
		return false
	}
	return e.Kind == KindIOError
}
