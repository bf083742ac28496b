/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textencoding implements the simple-font byte-to-glyph-name
// translation layer: the four static named encodings, the /Differences
// overlay, and the Adobe Glyph List lookup from glyph name to rune.
//
// Only the decode direction is implemented (PDF bytes -> Unicode); this
// module never writes PDF content streams, so the teacher's Encode/
// RuneToCharcode direction has no caller here.
package textencoding

// CharCode is a character code in a simple (single-byte) encoding.
type CharCode uint16

// GlyphName is the name of a glyph, e.g. "A", "space", "emdash".
type GlyphName string

// SimpleEncoder maps single-byte character codes to glyph names and runes
// for a simple (Type1/TrueType/Type3/MMType1) font.
type SimpleEncoder interface {
	// BaseName identifies the base encoding ("StandardEncoding", "custom", ...).
	BaseName() string

	// CharcodeToGlyphName returns the glyph name for code, if any.
	CharcodeToGlyphName(code CharCode) (GlyphName, bool)

	// CharcodeToRune returns the rune corresponding to code, if any.
	CharcodeToRune(code CharCode) (rune, bool)

	// Decode converts a raw PDF byte string into a Go string using this encoding.
	Decode(raw []byte) string
}

// namedEncoding is a flat byte -> glyph-name table, used for the four static
// named encodings (StandardEncoding, WinAnsiEncoding, MacRomanEncoding,
// MacExpertEncoding).
type namedEncoding struct {
	name  string
	table map[byte]GlyphName
}

// BaseName returns the encoding's PDF name.
func (e *namedEncoding) BaseName() string { return e.name }

// CharcodeToGlyphName returns the glyph name mapped to code, if any.
func (e *namedEncoding) CharcodeToGlyphName(code CharCode) (GlyphName, bool) {
	if code > 0xff {
		return "", false
	}
	name, ok := e.table[byte(code)]
	return name, ok
}

// CharcodeToRune returns the rune mapped to code via the Adobe Glyph List.
func (e *namedEncoding) CharcodeToRune(code CharCode) (rune, bool) {
	name, ok := e.CharcodeToGlyphName(code)
	if !ok {
		return 0, false
	}
	return GlyphToRune(name)
}

// Decode converts raw PDF bytes to a Go string, one rune per byte. Bytes
// with no mapping are skipped, matching the teacher's decode-and-continue
// behavior rather than aborting the whole string on one bad code.
func (e *namedEncoding) Decode(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r, ok := e.CharcodeToRune(CharCode(b))
		if !ok {
			continue
		}
		runes = append(runes, r)
	}
	return string(runes)
}

func newNamedEncoding(name string, table map[byte]GlyphName) SimpleEncoder {
	return &namedEncoding{name: name, table: table}
}

// NewStandardEncoding returns the PDF StandardEncoding table.
func NewStandardEncoding() SimpleEncoder {
	return newNamedEncoding("StandardEncoding", standardEncodingTable)
}

// NewWinAnsiEncoding returns the PDF WinAnsiEncoding table.
func NewWinAnsiEncoding() SimpleEncoder {
	return newNamedEncoding("WinAnsiEncoding", winAnsiEncodingTable)
}

// NewMacRomanEncoding returns the PDF MacRomanEncoding table.
func NewMacRomanEncoding() SimpleEncoder {
	return newNamedEncoding("MacRomanEncoding", macRomanEncodingTable)
}

// NewMacExpertEncoding returns the PDF MacExpertEncoding table. Only space
// (0x20), comma (0x2c) and period (0x2e) are populated; every other code,
// including MacExpertEncoding's small-caps/old-style-figure glyph set, has
// no mapping.
func NewMacExpertEncoding() SimpleEncoder {
	return newNamedEncoding("MacExpertEncoding", macExpertEncodingTable)
}

// NewEncodingByName returns the static named encoding for name, or nil if
// name is not one of the four PDF base encodings.
func NewEncodingByName(name string) SimpleEncoder {
	switch name {
	case "StandardEncoding":
		return NewStandardEncoding()
	case "WinAnsiEncoding":
		return NewWinAnsiEncoding()
	case "MacRomanEncoding":
		return NewMacRomanEncoding()
	case "MacExpertEncoding":
		return NewMacExpertEncoding()
	default:
		return nil
	}
}
