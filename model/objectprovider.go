/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package model sits above core and contentstream: it loads font
// descriptions and resource scopes from an externally supplied
// ObjectProvider, the low-level PDF object graph (tokenizer, xref table,
// stream-filter decoding) deliberately being someone else's problem.
package model

import "github.com/unidoc/pdftextplace/core"

// PageRef is an opaque handle to one page of the source document, minted
// and owned by the ObjectProvider. The model and extractor packages never
// inspect it; they only pass it back.
type PageRef interface{}

// Box is an axis-aligned rectangle in default user space, [x1, y1, x2, y2].
type Box [4]float64

// ObjectProvider is the external contract this module depends on for
// everything below the PdfObject level: indirect-reference resolution,
// page enumeration, content-stream assembly and stream-filter decoding.
// Implementations typically wrap a full PDF reader/parser; this module
// owns none of that machinery.
type ObjectProvider interface {
	// Resolve dereferences an indirect reference to the object it points
	// to, following chains of references until a direct object is reached.
	Resolve(ref *core.PdfObjectReference) (core.PdfObject, error)

	// Pages enumerates the document's pages in document order.
	Pages() ([]PageRef, error)

	// PageContents returns the page's concatenated content streams with
	// filters already decoded.
	PageContents(page PageRef) ([]byte, error)

	// PageResources returns the page's inherited Resources dictionary.
	PageResources(page PageRef) (*core.PdfObjectDictionary, error)

	// StreamContents filter-decodes an arbitrary stream object, used for
	// Form XObject content and ToUnicode CMap streams.
	StreamContents(stream *core.PdfObjectStream) ([]byte, error)

	// PageBox returns the page's MediaBox.
	PageBox(page PageRef) (Box, error)
}
