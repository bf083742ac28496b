/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"strings"

	"github.com/unidoc/pdftextplace/common"
	"github.com/unidoc/pdftextplace/core"
	"github.com/unidoc/pdftextplace/internal/cmap"
	"github.com/unidoc/pdftextplace/internal/textencoding"
)

// simpleFontSubtypes lists the Subtype values §4.3 treats as one-byte-per-
// code fonts; "Type0" is a composite/CID font with a variable code length,
// and any other Subtype is marked Unsupported.
var simpleFontSubtypes = map[string]bool{
	"Type1":    true,
	"TrueType": true,
	"Type3":    true,
	"MMType1":  true,
}

// Displacement is one (width, code) pair produced by ComputeDisplacements.
// Width is in 1/1000 text-space units, matching PDF's glyph-space convention.
type Displacement struct {
	Width float64
	Code  uint32
}

// FontDescription is the Font Decoder's in-memory model of a font
// dictionary: its decoding strategy, width table and FontDescriptor-derived
// metrics, built once per distinct font object and cached by the caller.
type FontDescription struct {
	Subtype      string
	IsSimpleFont bool

	// Unsupported is true for a font Subtype that is neither one of the
	// simple-font subtypes nor "Type0" (§7 UnsupportedFont): Translate
	// falls back to raw Latin-1 bytes for these rather than guessing at a
	// width table or encoding it has no basis for.
	Unsupported bool

	toUnicode *cmap.CMap
	encoder   textencoding.SimpleEncoder // nil for CID fonts
	hasEncoding bool                      // true if Encoding was explicit (tag "simpleEncoding" vs "default")

	widths         map[uint32]float64
	defaultWidth   float64
	isMonospaced   bool
	monospaceWidth float64

	spaceCode   uint32
	hasSpaceCode bool

	FontName    string
	FamilyName  string
	FontStretch string
	FontWeight  float64
	Flags       int
	Ascent      float64
	Descent     float64
}

// CodeLength returns the number of bytes one character code occupies:
// always 1 for simple and Unsupported fonts; for CID fonts, the ToUnicode CMap's declared
// codespace width, defaulting to 2 when no CMap/codespace is available
// (PDF's implicit CID font default).
func (fd *FontDescription) CodeLength() int {
	if fd.IsSimpleFont || fd.Unsupported {
		return 1
	}
	if fd.toUnicode != nil {
		return fd.toUnicode.CodeLength(2)
	}
	return 2
}

// Codes splits data into character codes. When a ToUnicode CMap declares
// codespace ranges, codes are matched against them directly (§4.3: CID
// fonts consume a variable number of bytes per code), so a CMap mixing
// 1-byte and 2-byte codespaces is handled correctly rather than assumed
// uniform. Without a usable codespace match, it falls back to a fixed
// CodeLength split, zero-padding a trailing partial code rather than
// dropping it.
func (fd *FontDescription) Codes(data []byte) []uint32 {
	if fd.toUnicode != nil {
		if charcodes, ok := fd.toUnicode.BytesToCharcodes(data); ok {
			codes := make([]uint32, len(charcodes))
			for i, c := range charcodes {
				codes[i] = uint32(c)
			}
			return codes
		}
	}

	n := fd.CodeLength()
	if n < 1 {
		n = 1
	}
	codes := make([]uint32, 0, (len(data)+n-1)/n)
	for i := 0; i < len(data); i += n {
		var code uint32
		for j := 0; j < n; j++ {
			code <<= 8
			if i+j < len(data) {
				code |= uint32(data[i+j])
			}
		}
		codes = append(codes, code)
	}
	return codes
}

// Translate decodes data to UTF-8 text, choosing the strongest available
// method: toUnicode, simpleEncoding, or default (standard encoding). For an
// Unsupported font it decodes the bytes as raw Latin-1 itself (method
// "raw", via internal/textencoding.DecodeRawLatin1).
func (fd *FontDescription) Translate(data []byte) (text string, method string) {
	codes := fd.Codes(data)

	if fd.toUnicode != nil {
		var sb strings.Builder
		for _, c := range codes {
			s, ok := fd.toUnicode.CharcodeToUnicode(cmap.CharCode(c))
			if !ok {
				s = cmap.MissingCodeString
			}
			sb.WriteString(s)
		}
		return sb.String(), "toUnicode"
	}

	if fd.IsSimpleFont && fd.encoder != nil {
		var sb strings.Builder
		for _, c := range codes {
			r, ok := fd.encoder.CharcodeToRune(textencoding.CharCode(c))
			if !ok {
				r = cmap.MissingCodeRune
			}
			sb.WriteRune(r)
		}
		method = "default"
		if fd.hasEncoding {
			method = "simpleEncoding"
		}
		return sb.String(), method
	}

	if fd.Unsupported {
		return textencoding.DecodeRawLatin1(data), "raw"
	}

	// Composite font with no ToUnicode: no glyph-name path is defined for
	// CID fonts, so every code decodes to the replacement character.
	return strings.Repeat(cmap.MissingCodeString, len(codes)), "default"
}

// ComputeDisplacements iterates the character codes in data and looks up
// each one's glyph width: monospace short-circuit, then an explicit
// per-code entry, then defaultWidth, then 0.
func (fd *FontDescription) ComputeDisplacements(data []byte) []Displacement {
	codes := fd.Codes(data)
	out := make([]Displacement, len(codes))
	for i, c := range codes {
		out[i] = Displacement{Width: fd.widthForCode(c), Code: c}
	}
	return out
}

// SpaceWidth returns the font's nominal space-glyph width in 1/1000
// text-space units: the width of FindSpaceCharGlyphCode's code if one was
// found, else defaultWidth.
func (fd *FontDescription) SpaceWidth() float64 {
	if fd.hasSpaceCode {
		return fd.widthForCode(fd.spaceCode)
	}
	return fd.defaultWidth
}

func (fd *FontDescription) widthForCode(code uint32) float64 {
	if fd.isMonospaced {
		return fd.monospaceWidth
	}
	if w, ok := fd.widths[code]; ok {
		return w
	}
	return fd.defaultWidth
}

// IsSpaceCode reports whether code decodes to the space glyph U+0020,
// allowing Tw (word spacing) to apply to multi-byte CID codes as well as
// the literal byte 0x20 in simple fonts.
func (fd *FontDescription) IsSpaceCode(code uint32) bool {
	return fd.hasSpaceCode && code == fd.spaceCode
}

func (fd *FontDescription) findSpaceCode() {
	if fd.toUnicode != nil {
		for code := uint32(0); code <= 0xffff; code++ {
			if s, ok := fd.toUnicode.CharcodeToUnicode(cmap.CharCode(code)); ok && s == " " {
				fd.spaceCode, fd.hasSpaceCode = code, true
				return
			}
		}
	}
	if fd.IsSimpleFont && fd.encoder != nil {
		for code := uint32(0); code <= 0xff; code++ {
			if r, ok := fd.encoder.CharcodeToRune(textencoding.CharCode(code)); ok && r == ' ' {
				fd.spaceCode, fd.hasSpaceCode = code, true
				return
			}
		}
	}
}

func detectMonospace(widths map[uint32]float64, defaultWidth float64) (bool, float64) {
	if len(widths) == 0 {
		return false, 0
	}
	var uniform float64
	first := true
	for _, w := range widths {
		if first {
			uniform, first = w, false
			continue
		}
		if w != uniform {
			return false, 0
		}
	}
	if uniform != defaultWidth {
		return false, 0
	}
	return true, uniform
}

// LoadFontDescription builds a FontDescription from a resolved font
// dictionary, reading ToUnicode, Encoding and width tables per §4.3.
func LoadFontDescription(provider ObjectProvider, fontDict *core.PdfObjectDictionary) (*FontDescription, error) {
	subtype, _ := core.GetNameVal(fontDict.Get("Subtype"))
	isType0 := subtype == "Type0"
	fd := &FontDescription{Subtype: subtype, IsSimpleFont: simpleFontSubtypes[subtype]}

	widthDict := fontDict
	descriptorDict := fontDict
	if isType0 {
		descendants, ok := core.GetArray(resolve(provider, fontDict.Get("DescendantFonts")))
		if !ok || descendants.Len() == 0 {
			return nil, fmt.Errorf("model: Type0 font missing DescendantFonts")
		}
		descendant, ok := core.GetDict(resolve(provider, descendants.Get(0)))
		if !ok {
			return nil, fmt.Errorf("model: Type0 DescendantFonts[0] is not a dictionary")
		}
		widthDict = descendant
		descriptorDict = descendant
	}

	if err := loadToUnicode(provider, fontDict, fd); err != nil {
		common.Log.Debug("model: ToUnicode load failed, ignoring: %v", err)
	}

	switch {
	case fd.IsSimpleFont:
		loadSimpleEncoding(fontDict, fd)
		loadSimpleWidths(widthDict, descriptorDict, fd)
	case isType0:
		loadCIDWidths(widthDict, fd)
	default:
		// Neither a recognized simple-font subtype nor Type0: §7's
		// UnsupportedFont. No width table can be inferred, so Translate
		// falls back to raw Latin-1 bytes instead of guessing a CID-style
		// width layout that this subtype never declared.
		fd.Unsupported = true
		fd.widths = map[uint32]float64{}
	}

	loadDescriptor(provider, descriptorDict, fd)

	fd.isMonospaced, fd.monospaceWidth = detectMonospace(fd.widths, fd.defaultWidth)
	fd.findSpaceCode()

	return fd, nil
}

func loadToUnicode(provider ObjectProvider, fontDict *core.PdfObjectDictionary, fd *FontDescription) error {
	obj := resolve(provider, fontDict.Get("ToUnicode"))
	if obj == nil {
		return nil
	}
	stream, ok := core.GetStream(obj)
	if !ok {
		return nil
	}
	data, err := provider.StreamContents(stream)
	if err != nil {
		return err
	}
	cm, err := cmap.LoadCmapFromData(data)
	if err != nil {
		return err
	}
	fd.toUnicode = cm
	return nil
}

func loadSimpleEncoding(fontDict *core.PdfObjectDictionary, fd *FontDescription) {
	encObj := fontDict.Get("Encoding")
	if encObj == nil {
		fd.encoder = textencoding.NewStandardEncoding()
		fd.hasEncoding = false
		return
	}
	fd.hasEncoding = true

	if name, ok := core.GetNameVal(encObj); ok {
		fd.encoder = namedEncodingOrStandard(name)
		return
	}

	dict, ok := core.GetDict(encObj)
	if !ok {
		fd.encoder = textencoding.NewStandardEncoding()
		return
	}

	base := textencoding.SimpleEncoder(textencoding.NewStandardEncoding())
	if baseName, ok := core.GetNameVal(dict.Get("BaseEncoding")); ok {
		base = namedEncodingOrStandard(baseName)
	}

	diffArr, ok := core.GetArray(dict.Get("Differences"))
	if !ok {
		fd.encoder = base
		return
	}
	differences, err := textencoding.FromFontDifferences(diffArr)
	if err != nil {
		common.Log.Debug("model: invalid /Differences, using base encoding: %v", err)
		fd.encoder = base
		return
	}
	fd.encoder = textencoding.ApplyDifferences(base, differences)
}

func namedEncodingOrStandard(name string) textencoding.SimpleEncoder {
	if enc := textencoding.NewEncodingByName(name); enc != nil {
		return enc
	}
	return textencoding.NewStandardEncoding()
}

func loadSimpleWidths(widthDict, descriptorDict *core.PdfObjectDictionary, fd *FontDescription) {
	fd.widths = map[uint32]float64{}

	firstChar, _ := core.GetIntVal(widthDict.Get("FirstChar"))
	widthsArr, ok := core.GetArray(widthDict.Get("Widths"))
	if ok {
		for i, elem := range widthsArr.Elements() {
			if w, ok := core.GetNumberAsFloat(elem); ok {
				fd.widths[uint32(firstChar+i)] = w
			}
		}
	}

	fd.defaultWidth = 0
	if descObj := descriptorDict.Get("FontDescriptor"); descObj != nil {
		if descDict, ok := core.GetDict(descObj); ok {
			if mw, ok := core.GetNumberAsFloat(descDict.Get("MissingWidth")); ok {
				fd.defaultWidth = mw
			}
		}
	}
}

func loadCIDWidths(descendant *core.PdfObjectDictionary, fd *FontDescription) {
	fd.defaultWidth = 1000
	if dw, ok := core.GetNumberAsFloat(descendant.Get("DW")); ok {
		fd.defaultWidth = dw
	}

	fd.widths = map[uint32]float64{}
	wArr, ok := core.GetArray(descendant.Get("W"))
	if !ok {
		return
	}
	elems := wArr.Elements()
	for i := 0; i < len(elems); {
		c1, ok := core.GetIntVal(elems[i])
		if !ok {
			common.Log.Debug("model: malformed W array at index %d", i)
			return
		}
		i++
		if i >= len(elems) {
			return
		}
		if arr, ok := core.GetArray(elems[i]); ok {
			widths, err := core.GetNumbersAsFloat(arr)
			if err != nil {
				common.Log.Debug("model: malformed W per-code widths: %v", err)
				return
			}
			for j, w := range widths {
				fd.widths[uint32(c1+j)] = w
			}
			i++
			continue
		}
		c2, ok := core.GetIntVal(elems[i])
		if !ok {
			common.Log.Debug("model: malformed W array range at index %d", i)
			return
		}
		i++
		if i >= len(elems) {
			return
		}
		w, ok := core.GetNumberAsFloat(elems[i])
		if !ok {
			return
		}
		for cid := c1; cid <= c2; cid++ {
			fd.widths[uint32(cid)] = w
		}
		i++
	}
}

func loadDescriptor(provider ObjectProvider, fontDict *core.PdfObjectDictionary, fd *FontDescription) {
	descDict, ok := core.GetDict(resolve(provider, fontDict.Get("FontDescriptor")))
	if !ok {
		return
	}
	fd.FontName, _ = core.GetNameVal(descDict.Get("FontName"))
	fd.FamilyName, _ = core.GetNameVal(descDict.Get("FontFamily"))
	fd.FontStretch, _ = core.GetNameVal(descDict.Get("FontStretch"))
	fd.FontWeight, _ = core.GetNumberAsFloat(descDict.Get("FontWeight"))
	fd.Ascent, _ = core.GetNumberAsFloat(descDict.Get("Ascent"))
	fd.Descent, _ = core.GetNumberAsFloat(descDict.Get("Descent"))
	if flags, ok := core.GetIntVal(descDict.Get("Flags")); ok {
		fd.Flags = flags
	}
}
