/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "github.com/unidoc/pdftextplace/core"

// FromFontDifferences converts a /Differences array from an /Encoding
// dictionary (alternating integers and glyph names, the integer setting
// the code for the names that follow) into a code -> glyph-name map.
func FromFontDifferences(diffList *core.PdfObjectArray) (map[CharCode]GlyphName, error) {
	differences := make(map[CharCode]GlyphName)
	var n CharCode
	for _, obj := range diffList.Elements() {
		switch v := obj.(type) {
		case *core.PdfObjectInteger:
			n = CharCode(*v)
		case *core.PdfObjectName:
			differences[n] = GlyphName(*v)
			n++
		default:
			return nil, core.ErrTypeError
		}
	}
	return differences, nil
}

// differencesEncoding overlays a /Differences map on top of a base
// SimpleEncoder, falling through to the base for codes it does not remap.
type differencesEncoding struct {
	base        SimpleEncoder
	differences map[CharCode]GlyphName
}

// ApplyDifferences wraps base with the code -> glyph-name overrides in differences.
// If base is already a differencesEncoding, the two override maps are merged
// (new entries win) instead of nesting wrappers, matching the teacher's
// merge-on-reapply behavior.
func ApplyDifferences(base SimpleEncoder, differences map[CharCode]GlyphName) SimpleEncoder {
	if len(differences) == 0 {
		return base
	}
	if existing, ok := base.(*differencesEncoding); ok {
		merged := make(map[CharCode]GlyphName, len(existing.differences)+len(differences))
		for code, glyph := range existing.differences {
			merged[code] = glyph
		}
		for code, glyph := range differences {
			merged[code] = glyph
		}
		return &differencesEncoding{base: existing.base, differences: merged}
	}
	return &differencesEncoding{base: base, differences: differences}
}

// BaseName returns the name of the underlying base encoding.
func (e *differencesEncoding) BaseName() string { return e.base.BaseName() }

// CharcodeToGlyphName returns the overridden glyph name for code if one was
// set by Differences, else falls through to the base encoding.
func (e *differencesEncoding) CharcodeToGlyphName(code CharCode) (GlyphName, bool) {
	if name, ok := e.differences[code]; ok {
		return name, true
	}
	return e.base.CharcodeToGlyphName(code)
}

// CharcodeToRune returns the rune for code via the overridden glyph name, or
// the base encoding's rune if code was not remapped.
func (e *differencesEncoding) CharcodeToRune(code CharCode) (rune, bool) {
	if name, ok := e.differences[code]; ok {
		return GlyphToRune(name)
	}
	return e.base.CharcodeToRune(code)
}

// Decode converts raw PDF bytes to a Go string, one rune per byte.
func (e *differencesEncoding) Decode(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		if r, ok := e.CharcodeToRune(CharCode(b)); ok {
			runes = append(runes, r)
		}
	}
	return string(runes)
}
