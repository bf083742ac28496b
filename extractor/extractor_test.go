/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unidoc/pdftextplace/core"
	"github.com/unidoc/pdftextplace/model"
)

var errBoom = errors.New("boom")

// fakeProvider is a minimal model.ObjectProvider for end-to-end tests: one
// page, content supplied directly as bytes, references resolved from a flat
// map, streams supplied pre-decoded.
type fakeProvider struct {
	content   []byte
	resources *core.PdfObjectDictionary
	refs      map[core.PdfObjectReference]core.PdfObject
	streams   map[*core.PdfObjectStream][]byte

	pagesErr     error
	resourcesErr error
}

func newFakeProvider(content []byte, resources *core.PdfObjectDictionary) *fakeProvider {
	return &fakeProvider{
		content:   content,
		resources: resources,
		refs:      map[core.PdfObjectReference]core.PdfObject{},
		streams:   map[*core.PdfObjectStream][]byte{},
	}
}

func (p *fakeProvider) Resolve(ref *core.PdfObjectReference) (core.PdfObject, error) {
	obj, ok := p.refs[*ref]
	if !ok {
		return nil, model.ErrObjectNotFound
	}
	return obj, nil
}
func (p *fakeProvider) Pages() ([]model.PageRef, error) {
	if p.pagesErr != nil {
		return nil, p.pagesErr
	}
	return []model.PageRef{0}, nil
}
func (p *fakeProvider) PageContents(model.PageRef) ([]byte, error) {
	return p.content, nil
}
func (p *fakeProvider) PageResources(model.PageRef) (*core.PdfObjectDictionary, error) {
	if p.resourcesErr != nil {
		return nil, p.resourcesErr
	}
	return p.resources, nil
}
func (p *fakeProvider) PageBox(model.PageRef) (model.Box, error) {
	return model.Box{0, 0, 612, 792}, nil
}
func (p *fakeProvider) StreamContents(stream *core.PdfObjectStream) ([]byte, error) {
	return p.streams[stream], nil
}

// helveticaDict builds a simple Type1 font dictionary with widths for the
// handful of glyphs the scenarios below show: H, i, space, a, b, X, n, e, r.
func helveticaDict() *core.PdfObjectDictionary {
	widths := map[int64]int64{
		32:  278, // space
		72:  722, // H
		88:  667, // X
		97:  556, // a
		98:  556, // b
		101: 556, // e
		105: 278, // i
		110: 556, // n
		114: 333, // r
	}
	const first, last = 32, 114
	arr := core.MakeArray()
	for c := int64(first); c <= last; c++ {
		arr.Append(core.MakeInteger(widths[c]))
	}

	descriptor := core.MakeDict()
	descriptor.Set("Ascent", core.MakeFloat(718))
	descriptor.Set("Descent", core.MakeFloat(-207))

	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("Type1"))
	dict.Set("FirstChar", core.MakeInteger(first))
	dict.Set("LastChar", core.MakeInteger(last))
	dict.Set("Widths", arr)
	dict.Set("FontDescriptor", descriptor)
	return dict
}

func fontResources(fonts map[string]core.PdfObject) *core.PdfObjectDictionary {
	fontDict := core.MakeDict()
	for name, obj := range fonts {
		fontDict.Set(core.PdfObjectName(name), obj)
	}
	resources := core.MakeDict()
	resources.Set("Font", fontDict)
	return resources
}

// Scenario 1: single-line, simple font.
func TestExtractSingleLineSimpleFont(t *testing.T) {
	content := []byte("BT /F1 12 Tf 72 720 Td (Hi) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)

	p := result.Placements[0]
	require.Equal(t, 0, p.Page)
	require.Equal(t, "Hi", p.Text)
	require.InDelta(t, 72.0, p.X, 1e-9)
	require.InDelta(t, 717.516, p.Y, 1e-9)
	require.InDelta(t, (722.0+278.0)*12/1000, p.Width, 1e-9)
	require.InDelta(t, 11.1, p.Height, 1e-9)
}

// Scenario 2: word spacing applies only to the space code, not to letters.
func TestExtractWordSpacingOnlyOnSpaceCode(t *testing.T) {
	content := []byte("BT /F1 12 Tf 10 Tw 0 0 Td (a b) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)

	p := result.Placements[0]
	require.Equal(t, "a b", p.Text)
	want := (556.0)*12/1000 + ((278.0)*12/1000 + 10) + (556.0)*12/1000
	require.InDelta(t, want, p.Width, 1e-9)
}

// Scenario 3: CID font with a ToUnicode CMap, two-byte codes.
func TestExtractCIDFontToUnicode(t *testing.T) {
	cmapData := []byte("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"2 beginbfchar\n<0041> <0041>\n<0042> <0042>\nendbfchar")

	streamDict := core.MakeDict()
	stream := &core.PdfObjectStream{PdfObjectDictionary: streamDict}

	descendant := core.MakeDict()
	descendant.Set("DW", core.MakeInteger(1000))
	dict := core.MakeDict()
	dict.Set("Subtype", core.MakeName("Type0"))
	dict.Set("DescendantFonts", core.MakeArray(descendant))
	dict.Set("ToUnicode", stream)

	content := []byte("BT /F2 10 Tf 0 0 Td <00410042> Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F2": dict})

	provider := newFakeProvider(content, resources)
	provider.streams[stream] = cmapData

	ex := NewExtractor(provider)
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	require.Equal(t, "AB", result.Placements[0].Text)
}

// Scenario 4: CTM composition scales both position and width.
func TestExtractCTMComposition(t *testing.T) {
	content := []byte("q 2 0 0 2 0 0 cm BT /F1 12 Tf 10 10 Td (X) Tj ET Q")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)

	p := result.Placements[0]
	require.InDelta(t, 20.0, p.X, 1e-9)
	require.InDelta(t, (667.0*12/1000)*2, p.Width, 1e-9)
}

// Scenario 5: Form XObject recursion inherits the enclosing CTM.
func TestExtractFormXObjectRecursion(t *testing.T) {
	formStreamDict := core.MakeDict()
	formStreamDict.Set("Subtype", core.MakeName("Form"))
	formStream := &core.PdfObjectStream{PdfObjectDictionary: formStreamDict}

	xobjects := core.MakeDict()
	xobjects.Set("Fm1", formStream)

	fontDict := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})
	resources := core.MakeDict()
	resources.Set("Font", fontDict.Get("Font"))
	resources.Set("XObject", xobjects)

	content := []byte("q 1 0 0 1 100 200 cm /Fm1 Do Q")
	provider := newFakeProvider(content, resources)
	provider.streams[formStream] = []byte("BT /F1 12 Tf 5 5 Td (inner) Tj ET")

	ex := NewExtractor(provider)
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)

	p := result.Placements[0]
	require.Equal(t, "inner", p.Text)
	require.InDelta(t, 105.0, p.X, 1e-9)
	require.InDelta(t, 205.0+(-207.0*12/1000), p.Y, 1e-9)
}

// Scenario 6: an unmatched Q is a no-op, not an error.
func TestExtractUnmatchedQIsNoOp(t *testing.T) {
	content := []byte("Q BT /F1 12 Tf (z) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	require.Equal(t, "z", result.Placements[0].Text)
}

// Boundary: an empty TJ array emits nothing and leaves tm where it was.
func TestExtractEmptyTJArrayNoPlacement(t *testing.T) {
	content := []byte("BT /F1 12 Tf 10 10 Td [] TJ (a) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	require.InDelta(t, 10.0, result.Placements[0].X, 1e-9)
}

// Boundary: a zero-length Tj string produces no placement and no error.
func TestExtractEmptyStringNoPlacement(t *testing.T) {
	content := []byte("BT /F1 12 Tf 10 10 Td () Tj (a) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
}

// Invariant: q/Q restores the graphics-state frame bit for bit.
func TestExtractQRestoresGraphicsState(t *testing.T) {
	content := []byte("q 2 0 0 2 5 5 cm Q BT /F1 12 Tf 0 0 Td (X) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	// If q/Q had not restored the pre-push CTM, X would be offset by the
	// cm inside the q/Q pair.
	require.InDelta(t, 0.0, result.Placements[0].X, 1e-9)
}

// Invariant: text matrices reset at every BT, not carried from a prior
// text object.
func TestExtractBTResetsTextMatrix(t *testing.T) {
	content := []byte("BT /F1 12 Tf 50 50 Td (X) Tj ET BT (X) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 2)
	require.InDelta(t, 50.0, result.Placements[0].X, 1e-9)
	require.InDelta(t, 0.0, result.Placements[1].X, 1e-9)
}

// Pages() failing is the one IOError path (§7): fatal, and nothing is
// extracted at all.
func TestExtractPagesFailureIsFatal(t *testing.T) {
	provider := newFakeProvider(nil, nil)
	provider.pagesErr = errBoom

	ex := NewExtractor(provider)
	_, err := ex.ExtractAll()
	require.Error(t, err)
	require.True(t, IsFatal(err))

	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	require.Equal(t, KindIOError, extractErr.Kind)
	require.Equal(t, "IOError", extractErr.Kind.String())
}

// A per-page resource failure is recoverable: logged, that page contributes
// no placements, and IsFatal reports false.
func TestExtractPageResourcesFailureIsNotFatal(t *testing.T) {
	provider := newFakeProvider([]byte("BT ET"), nil)
	provider.resourcesErr = errBoom

	ex := NewExtractor(provider)
	result, err := ex.ExtractAll()
	require.NoError(t, err) // per-page error is logged, not surfaced
	require.Empty(t, result.Placements)
}

// A degenerate cm (all-zero scale/skew) is ignored rather than collapsing
// the CTM to zero and erasing every subsequent placement's coordinates.
// Unlike TestExtractQRestoresGraphicsState, there is no enclosing q/Q here:
// if the guard did not fire, the CTM itself would stay zeroed afterward.
func TestExtractDegenerateCmIsIgnored(t *testing.T) {
	content := []byte("0 0 0 0 0 0 cm BT /F1 12 Tf 10 10 Td (X) Tj ET")
	resources := fontResources(map[string]core.PdfObject{"F1": helveticaDict()})

	ex := NewExtractor(newFakeProvider(content, resources))
	result, err := ex.ExtractAll()
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	require.InDelta(t, 10.0, result.Placements[0].X, 1e-9)
}

// Form XObject recursion beyond the configured depth aborts the page but
// keeps the prefix of placements already gathered.
func TestExtractRecursionLimitKeepsPrefix(t *testing.T) {
	selfStreamDict := core.MakeDict()
	selfStreamDict.Set("Subtype", core.MakeName("Form"))
	selfStream := &core.PdfObjectStream{PdfObjectDictionary: selfStreamDict}

	xobjects := core.MakeDict()
	xobjects.Set("Fm1", selfStream)
	resources := core.MakeDict()
	resources.Set("XObject", xobjects)
	resources.Set("Font", fontResources(map[string]core.PdfObject{"F1": helveticaDict()}).Get("Font"))

	content := []byte("BT /F1 12 Tf 1 1 Td (a) Tj ET /Fm1 Do")
	provider := newFakeProvider(content, resources)
	provider.streams[selfStream] = []byte("/Fm1 Do")

	ex := NewExtractor(provider)
	ex.SetMaxFormDepth(3)
	result, err := ex.ExtractAll()
	require.NoError(t, err) // per-page error is logged, not surfaced fatally
	require.Len(t, result.Placements, 1)
	require.Equal(t, "a", result.Placements[0].Text)
}
