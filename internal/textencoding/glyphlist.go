/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"fmt"
	"strconv"
	"strings"
)

// glyphToRune is a curated subset of the Adobe Glyph List: glyph name ->
// Unicode codepoint, covering printable ASCII, the Latin-1 supplement and
// common typographic glyphs referenced by the four static named encodings
// and /Differences arrays in ordinary (non-exotic) PDFs. A document that
// references a glyph name outside this table falls through to the "uniXXXX"
// convention handled below, then gives up: GlyphToRune reports false and the
// Font Decoder writes the replacement character for that code.
var glyphToRune = func() map[GlyphName]rune {
	m := map[GlyphName]rune{
		"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
		"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
		"quoteright": 0x2019, "quoteleft": 0x2018,
		"parenleft": '(', "parenright": ')', "asterisk": '*', "plus": '+',
		"comma": ',', "hyphen": '-', "period": '.', "slash": '/',
		"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
		"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
		"colon": ':', "semicolon": ';', "less": '<', "equal": '=',
		"greater": '>', "question": '?', "at": '@',
		"bracketleft": '[', "backslash": '\\', "bracketright": ']',
		"asciicircum": '^', "underscore": '_', "grave": '`',
		"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',
		"exclamdown": 0xa1, "cent": 0xa2, "sterling": 0xa3, "currency": 0xa4,
		"yen": 0xa5, "brokenbar": 0xa6, "section": 0xa7, "dieresis": 0xa8,
		"copyright": 0xa9, "ordfeminine": 0xaa, "guillemotleft": 0xab,
		"logicalnot": 0xac, "registered": 0xae, "macron": 0xaf,
		"degree": 0xb0, "plusminus": 0xb1, "twosuperior": 0xb2,
		"threesuperior": 0xb3, "acute": 0xb4, "mu": 0xb5, "paragraph": 0xb6,
		"periodcentered": 0xb7, "cedilla": 0xb8, "onesuperior": 0xb9,
		"ordmasculine": 0xba, "guillemotright": 0xbb, "onequarter": 0xbc,
		"onehalf": 0xbd, "threequarters": 0xbe, "questiondown": 0xbf,
		"Agrave": 0xc0, "Aacute": 0xc1, "Acircumflex": 0xc2, "Atilde": 0xc3,
		"Adieresis": 0xc4, "Aring": 0xc5, "AE": 0xc6, "Ccedilla": 0xc7,
		"Egrave": 0xc8, "Eacute": 0xc9, "Ecircumflex": 0xca, "Edieresis": 0xcb,
		"Igrave": 0xcc, "Iacute": 0xcd, "Icircumflex": 0xce, "Idieresis": 0xcf,
		"Eth": 0xd0, "Ntilde": 0xd1, "Ograve": 0xd2, "Oacute": 0xd3,
		"Ocircumflex": 0xd4, "Otilde": 0xd5, "Odieresis": 0xd6,
		"multiply": 0xd7, "Oslash": 0xd8, "Ugrave": 0xd9, "Uacute": 0xda,
		"Ucircumflex": 0xdb, "Udieresis": 0xdc, "Yacute": 0xdd, "Thorn": 0xde,
		"germandbls": 0xdf,
		"agrave": 0xe0, "aacute": 0xe1, "acircumflex": 0xe2, "atilde": 0xe3,
		"adieresis": 0xe4, "aring": 0xe5, "ae": 0xe6, "ccedilla": 0xe7,
		"egrave": 0xe8, "eacute": 0xe9, "ecircumflex": 0xea, "edieresis": 0xeb,
		"igrave": 0xec, "iacute": 0xed, "icircumflex": 0xee, "idieresis": 0xef,
		"eth": 0xf0, "ntilde": 0xf1, "ograve": 0xf2, "oacute": 0xf3,
		"ocircumflex": 0xf4, "otilde": 0xf5, "odieresis": 0xf6,
		"divide": 0xf7, "oslash": 0xf8, "ugrave": 0xf9, "uacute": 0xfa,
		"ucircumflex": 0xfb, "udieresis": 0xfc, "yacute": 0xfd, "thorn": 0xfe,
		"ydieresis": 0xff, "Ydieresis": 0x178,
		"fi": 0xfb01, "fl": 0xfb02,
		"endash": 0x2013, "emdash": 0x2014, "bullet": 0x2022,
		"ellipsis": 0x2026, "perthousand": 0x2030,
		"quotesinglbase": 0x201a, "quotedblbase": 0x201e,
		"quotedblleft": 0x201c, "quotedblright": 0x201d,
		"guilsinglleft": 0x2039, "guilsinglright": 0x203a,
		"dagger": 0x2020, "daggerdbl": 0x2021, "trademark": 0x2122,
		"fraction": 0x2044, "Euro": 0x20ac, "florin": 0x192,
		"circumflex": 0x2c6, "tilde": 0x2dc, "caron": 0x2c7, "breve": 0x2d8,
		"dotaccent": 0x2d9, "ring": 0x2da, "ogonek": 0x2db, "hungarumlaut": 0x2dd,
		"dotlessi": 0x131, "lslash": 0x142, "Lslash": 0x141,
		"oe": 0x153, "OE": 0x152, "scaron": 0x161, "Scaron": 0x160,
		"zcaron": 0x17e, "Zcaron": 0x17d,
	}
	return m
}()

// GlyphToRune returns the Unicode codepoint for glyph name name. It first
// consults the static table, then recognizes the PostScript "uniXXXX" and
// "uXXXX[XX]" hex-codepoint naming conventions.
func GlyphToRune(name GlyphName) (rune, bool) {
	if r, ok := glyphToRune[name]; ok {
		return r, true
	}
	s := string(name)
	if strings.HasPrefix(s, "uni") && len(s) >= 7 {
		if v, err := strconv.ParseUint(s[3:7], 16, 32); err == nil {
			return rune(v), true
		}
	}
	if strings.HasPrefix(s, "u") && len(s) >= 5 && len(s) <= 7 {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return rune(v), true
		}
	}
	return 0, false
}

// RuneToGlyphName is the inverse lookup, used only for diagnostics.
func RuneToGlyphName(r rune) (GlyphName, bool) {
	for name, rr := range glyphToRune {
		if rr == r {
			return name, true
		}
	}
	return GlyphName(fmt.Sprintf("uni%04X", r)), false
}
