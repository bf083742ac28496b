/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unidoc/pdftextplace/core"
)

// fakeProvider is a minimal ObjectProvider for tests: streams are supplied
// pre-decoded and references are resolved from a flat map.
type fakeProvider struct {
	streams map[*core.PdfObjectStream][]byte
	refs    map[core.PdfObjectReference]core.PdfObject
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		streams: map[*core.PdfObjectStream][]byte{},
		refs:    map[core.PdfObjectReference]core.PdfObject{},
	}
}

func (p *fakeProvider) Resolve(ref *core.PdfObjectReference) (core.PdfObject, error) {
	obj, ok := p.refs[*ref]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return obj, nil
}
func (p *fakeProvider) Pages() ([]PageRef, error)                    { return nil, nil }
func (p *fakeProvider) PageContents(PageRef) ([]byte, error)         { return nil, nil }
func (p *fakeProvider) PageResources(PageRef) (*core.PdfObjectDictionary, error) {
	return nil, nil
}
func (p *fakeProvider) PageBox(PageRef) (Box, error) { return Box{}, nil }
func (p *fakeProvider) StreamContents(stream *core.PdfObjectStream) ([]byte, error) {
	return p.streams[stream], nil
}

func helveticaLikeDict(widths []int64, firstChar int64) *core.PdfObjectDictionary {
	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("Type1"))
	dict.Set("FirstChar", core.MakeInteger(firstChar))
	dict.Set("LastChar", core.MakeInteger(firstChar+int64(len(widths))-1))
	arr := core.MakeArray()
	for _, w := range widths {
		arr.Append(core.MakeInteger(w))
	}
	dict.Set("Widths", arr)
	dict.Set("Encoding", core.MakeName("WinAnsiEncoding"))
	return dict
}

func TestLoadFontDescriptionSimpleWidths(t *testing.T) {
	dict := helveticaLikeDict([]int64{722, 278}, 72) // 'H'=0x48=72, 'I'=0x49=73
	provider := newFakeProvider()

	fd, err := LoadFontDescription(provider, dict)
	require.NoError(t, err)
	require.True(t, fd.IsSimpleFont)
	require.Equal(t, 1, fd.CodeLength())

	disp := fd.ComputeDisplacements([]byte("HI"))
	require.Len(t, disp, 2)
	require.Equal(t, 722.0, disp[0].Width)
	require.Equal(t, 278.0, disp[1].Width)

	text, method := fd.Translate([]byte("HI"))
	require.Equal(t, "HI", text)
	require.Equal(t, "simpleEncoding", method)
}

func TestLoadFontDescriptionDefaultEncoding(t *testing.T) {
	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("Type1"))
	provider := newFakeProvider()

	fd, err := LoadFontDescription(provider, dict)
	require.NoError(t, err)

	text, method := fd.Translate([]byte("A"))
	require.Equal(t, "A", text)
	require.Equal(t, "default", method)
}

func TestLoadFontDescriptionToUnicodeCID(t *testing.T) {
	streamDict := core.MakeDict()
	stream := &core.PdfObjectStream{PdfObjectDictionary: streamDict}

	cmapData := []byte("2 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"1 beginbfchar\n<0041> <0042>\nendbfchar")

	provider := newFakeProvider()
	provider.streams[stream] = cmapData

	descendant := core.MakeDict()
	descendant.Set("DW", core.MakeInteger(1000))
	w := core.MakeArray()
	w.Append(core.MakeInteger(0x41))
	inner := core.MakeArray(core.MakeInteger(600))
	w.Append(inner)
	descendant.Set("W", w)

	descendants := core.MakeArray(descendant)

	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("Type0"))
	dict.Set("DescendantFonts", descendants)
	dict.Set("ToUnicode", stream)

	fd, err := LoadFontDescription(provider, dict)
	require.NoError(t, err)
	require.False(t, fd.IsSimpleFont)
	require.Equal(t, 2, fd.CodeLength())

	text, method := fd.Translate([]byte{0x00, 0x41})
	require.Equal(t, "B", text)
	require.Equal(t, "toUnicode", method)

	disp := fd.ComputeDisplacements([]byte{0x00, 0x41})
	require.Equal(t, 600.0, disp[0].Width)
}

func TestLoadFontDescriptionWArrayRange(t *testing.T) {
	descendant := core.MakeDict()
	w := core.MakeArray()
	w.Append(core.MakeInteger(10))
	w.Append(core.MakeInteger(12))
	w.Append(core.MakeInteger(500))
	descendant.Set("W", w)
	descendant.Set("DW", core.MakeInteger(1000))

	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("Type0"))
	dict.Set("DescendantFonts", core.MakeArray(descendant))

	fd, err := LoadFontDescription(newFakeProvider(), dict)
	require.NoError(t, err)
	require.Equal(t, 500.0, fd.widthForCode(10))
	require.Equal(t, 500.0, fd.widthForCode(11))
	require.Equal(t, 500.0, fd.widthForCode(12))
	require.Equal(t, 1000.0, fd.widthForCode(13))
}

func TestFontDescriptionMonospaceDetection(t *testing.T) {
	dict := helveticaLikeDict([]int64{600, 600, 600}, 65)
	descriptor := core.MakeDict()
	descriptor.Set("MissingWidth", core.MakeInteger(600))
	dict.Set("FontDescriptor", descriptor)
	fd, err := LoadFontDescription(newFakeProvider(), dict)
	require.NoError(t, err)
	require.True(t, fd.isMonospaced)
	require.Equal(t, 600.0, fd.monospaceWidth)
}

func TestFontDescriptionEmptyTranslateIsEmpty(t *testing.T) {
	dict := helveticaLikeDict([]int64{722}, 72)
	fd, err := LoadFontDescription(newFakeProvider(), dict)
	require.NoError(t, err)

	text, _ := fd.Translate(nil)
	require.Equal(t, "", text)
	require.Empty(t, fd.ComputeDisplacements(nil))
}

// A font dictionary whose Subtype is neither a recognized simple-font
// subtype nor Type0 falls back to raw Latin-1 decoding (§7 UnsupportedFont).
func TestLoadFontDescriptionUnsupportedSubtypeFallsBackToRaw(t *testing.T) {
	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("CIDFontType0")) // a descendant-only subtype, never the top-level Font entry

	fd, err := LoadFontDescription(newFakeProvider(), dict)
	require.NoError(t, err)
	require.True(t, fd.Unsupported)
	require.False(t, fd.IsSimpleFont)
	require.Equal(t, 1, fd.CodeLength())

	text, method := fd.Translate([]byte{0xE9}) // Latin-1 'é'
	require.Equal(t, "raw", method)
	require.Equal(t, "é", text)

	disp := fd.ComputeDisplacements([]byte{0x41})
	require.Len(t, disp, 1)
	require.Equal(t, 0.0, disp[0].Width) // no width table: falls through to defaultWidth 0
}
