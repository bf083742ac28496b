/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"github.com/unidoc/pdftextplace/common"
	"github.com/unidoc/pdftextplace/contentstream"
	"github.com/unidoc/pdftextplace/core"
	"github.com/unidoc/pdftextplace/internal/transform"
	"github.com/unidoc/pdftextplace/model"
)

// fontResolver is the subset of *model.ResourceScope the Collector needs
// to look up Font/ExtGState resources by name. Declaring it locally (rather
// than depending on *model.ResourceScope directly) keeps the Collector
// talking to the resource-scope stack only through the capability it uses.
type fontResolver interface {
	FindFont(name string) (dict *core.PdfObjectDictionary, identityKey string, found bool)
	FindExtGState(name string) (*core.PdfObjectDictionary, bool)
}

// Collector implements contentstream.Handler: the Text Placement Collector
// of §4.4. Per §5's ownership split, it is the sole owner of the
// graphics-state stack, the text-object state (tm/tlm) and the
// resource-scope stack; the Interpreter (contentstream.Processor) merely
// tokenizes and dispatches operators to it.
type Collector struct {
	provider model.ObjectProvider
	fonts    *fontCache

	gs        *graphicsStateStack
	resources []fontResolver // mirrors the interpreter's Form XObject recursion

	textActive bool
	tm, tlm    transform.Matrix

	placements []PlacedText
}

func newCollector(provider model.ObjectProvider, fonts *fontCache) *Collector {
	return &Collector{
		provider: provider,
		fonts:    fonts,
		gs:       newGraphicsStateStack(),
		tm:       transform.IdentityMatrix(),
		tlm:      transform.IdentityMatrix(),
	}
}

// onDone returns the placements gathered since the last onDone (or since
// construction) and resets all internal state, ready for the next page.
func (c *Collector) onDone() []PlacedText {
	out := c.placements
	c.placements = nil
	c.gs = newGraphicsStateStack()
	c.resources = nil
	c.textActive = false
	c.tm = transform.IdentityMatrix()
	c.tlm = transform.IdentityMatrix()
	return out
}

// OnResourcesRead pushes a new resource scope, consulted for Font/ExtGState
// lookups until the matching OnXObjectDoEnd (or, for the page's own
// top-level stream, until onDone).
func (c *Collector) OnResourcesRead(resources contentstream.Resources) {
	resolver, _ := resources.(fontResolver)
	c.resources = append(c.resources, resolver)
}

// OnXObjectDoStart is a no-op: the pushed-resource-scope bookkeeping
// happens in OnResourcesRead, which the interpreter calls right after this,
// at the start of the Form's own content stream.
func (c *Collector) OnXObjectDoStart(name string) {}

// OnXObjectDoEnd pops the resource scope pushed for that XObject and
// implicitly closes any pending text object, since PDF forbids BT...ET
// from crossing content streams.
func (c *Collector) OnXObjectDoEnd(name string) {
	if len(c.resources) > 0 {
		c.resources = c.resources[:len(c.resources)-1]
	}
	c.textActive = false
}

func (c *Collector) curResolver() fontResolver {
	if len(c.resources) == 0 {
		return nil
	}
	return c.resources[len(c.resources)-1]
}

// OnOperation routes one operator to its §4.2 handler. Operand arity or
// type mismatches are silently skipped; unknown
// operators are ignored. Neither ever aborts interpretation: only a
// caller-visible cont=false would, and this Collector never asks for that.
func (c *Collector) OnOperation(operand string, params []core.PdfObject) (bool, error) {
	switch operand {
	case "q":
		c.gs.push()
	case "Q":
		c.gs.pop()
	case "cm":
		if vals, ok := floatsN(params, 6); ok {
			gs := c.gs.top()
			next := gs.ctm
			next.Concat(transform.NewMatrix(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]))
			if next.Unrealistic() {
				common.Log.Debug("cm: ignoring unrealistic CTM update %s", next)
				return true, nil
			}
			gs.ctm = next
		}
	case "gs":
		if name, ok := nameArg(params, 0); ok {
			c.applyExtGState(name)
		}
	case "Tf":
		if len(params) >= 2 {
			name, ok1 := core.GetNameVal(params[0])
			size, ok2 := core.GetNumberAsFloat(params[1])
			if ok1 && ok2 {
				c.setFont(name, size)
			}
		}
	case "Tc":
		if v, ok := floatArg(params, 0); ok {
			c.gs.top().charSpace = v
		}
	case "Tw":
		if v, ok := floatArg(params, 0); ok {
			c.gs.top().wordSpace = v
		}
	case "TL":
		if v, ok := floatArg(params, 0); ok {
			c.gs.top().leading = v
		}
	case "Tz":
		if v, ok := floatArg(params, 0); ok {
			c.gs.top().horizScale = v / 100.0
		}
	case "Ts":
		if v, ok := floatArg(params, 0); ok {
			c.gs.top().textRise = v
		}
	case "Tr":
		if v, ok := floatArg(params, 0); ok {
			c.gs.top().renderMode = int(v)
		}
	case "BT":
		c.textActive = true
		c.tm = transform.IdentityMatrix()
		c.tlm = transform.IdentityMatrix()
	case "ET":
		c.textActive = false
	case "Td":
		if !c.textActive {
			break
		}
		if vals, ok := floatsN(params, 2); ok {
			c.moveText(vals[0], vals[1])
		}
	case "TD":
		if !c.textActive {
			break
		}
		if vals, ok := floatsN(params, 2); ok {
			c.gs.top().leading = -vals[1]
			c.moveText(vals[0], vals[1])
		}
	case "Tm":
		if !c.textActive {
			break
		}
		if vals, ok := floatsN(params, 6); ok {
			m := transform.NewMatrix(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])
			c.tm, c.tlm = m, m
		}
	case "T*":
		if !c.textActive {
			break
		}
		c.moveText(0, -c.gs.top().leading)
	case "Tj":
		if !c.textActive {
			break
		}
		if data, ok := stringArg(params, 0); ok {
			c.showText(data)
		}
	case "TJ":
		if !c.textActive {
			break
		}
		if arr, ok := core.GetArray(firstArg(params)); ok {
			c.showAdjustedText(arr)
		}
	case "'":
		if !c.textActive {
			break
		}
		if data, ok := stringArg(params, 0); ok {
			c.moveText(0, -c.gs.top().leading)
			c.showText(data)
		}
	case "\"":
		if !c.textActive {
			break
		}
		if len(params) >= 3 {
			aw, ok1 := core.GetNumberAsFloat(params[0])
			ac, ok2 := core.GetNumberAsFloat(params[1])
			data, ok3 := core.GetStringBytes(params[2])
			if ok1 && ok2 && ok3 {
				gs := c.gs.top()
				gs.wordSpace, gs.charSpace = aw, ac
				c.moveText(0, -gs.leading)
				c.showText(data)
			}
		}
	}
	return true, nil
}

func (c *Collector) setFont(name string, size float64) {
	resolver := c.curResolver()
	if resolver == nil {
		common.Log.Debug("Tf: no resource scope in effect, skipping %q", name)
		return
	}
	dict, key, found := resolver.FindFont(name)
	if !found {
		common.Log.Debug("Tf: font %q not found in resource scope", name)
		return
	}
	fd, err := c.fonts.load(key, dict)
	if err != nil {
		common.Log.Debug("Tf: failed to load font %q: %v", name, err)
		return
	}
	gs := c.gs.top()
	gs.font, gs.fontID, gs.fontSize, gs.hasFont = fd, key, size, true
}

// applyExtGState looks up name's ExtGState and, if it carries /Font
// [fontRef size], sets the current font the same way Tf would.
func (c *Collector) applyExtGState(name string) {
	resolver := c.curResolver()
	if resolver == nil {
		return
	}
	dict, ok := resolver.FindExtGState(name)
	if !ok {
		common.Log.Debug("gs: ExtGState %q not found", name)
		return
	}
	fontArr, ok := core.GetArray(dict.Get("Font"))
	if !ok || fontArr.Len() < 2 {
		return
	}
	fontRef := fontArr.Get(0)
	fontDict, ok := core.GetDict(model.Resolve(c.provider, fontRef))
	if !ok {
		common.Log.Debug("gs: ExtGState %q /Font entry does not resolve to a dictionary", name)
		return
	}
	size, ok := core.GetNumberAsFloat(fontArr.Get(1))
	if !ok {
		return
	}
	key := fontRef.String()
	fd, err := c.fonts.load(key, fontDict)
	if err != nil {
		common.Log.Debug("gs: failed to load ExtGState font %q: %v", name, err)
		return
	}
	gs := c.gs.top()
	gs.font, gs.fontID, gs.fontSize, gs.hasFont = fd, key, size, true
}

func (c *Collector) moveText(tx, ty float64) {
	c.tlm.Concat(transform.NewMatrix(1, 0, 0, 1, tx, ty))
	c.tm = c.tlm
}

// showAdjustedText implements the TJ operator: strings are shown exactly
// as Tj would; numbers shift tm directly along text-space x with no
// placement emitted.
func (c *Collector) showAdjustedText(arr *core.PdfObjectArray) {
	for _, el := range arr.Elements() {
		if data, ok := core.GetStringBytes(el); ok {
			c.showText(data)
			continue
		}
		if n, ok := core.GetNumberAsFloat(el); ok {
			gs := c.gs.top()
			dx := -n / 1000.0 * gs.fontSize * gs.horizScale
			c.tm.Concat(transform.NewMatrix(1, 0, 0, 1, dx, 0))
		}
	}
}

// showText implements §4.2's "Showing a string s": translate, compute
// per-code advances, emit one PlacedText, then advance tm.
func (c *Collector) showText(data []byte) {
	if len(data) == 0 {
		return
	}
	gs := c.gs.top()
	if !gs.hasFont {
		common.Log.Debug("showText: no font set, skipping string")
		return
	}
	font := gs.font

	text, _ := font.Translate(data)
	disps := font.ComputeDisplacements(data)
	if len(disps) == 0 {
		return
	}

	tfs, th := gs.fontSize, gs.horizScale

	// trm carries the already-fontSize-scaled text-space coordinates below
	// (tx_i, descent*tfs/1000, ascent*tfs/1000 all bake in tfs themselves)
	// to page space. It is [1 0 0 1 0 Ts] x tm x ctm (the text rise as a
	// vertical offset), not the glyph-space Trm of the PDF spec proper
	// (which would double the fontSize scaling here): the worked examples
	// of the bbox this must produce only come out right without that
	// second factor.
	trm := gs.ctm.Mult(c.tm.Mult(transform.TranslationMatrix(0, gs.textRise)))

	var totalTx float64
	for _, d := range disps {
		w := 0.0
		if font.IsSpaceCode(d.Code) {
			w = gs.wordSpace
		}
		totalTx += ((d.Width/1000.0)*tfs + gs.charSpace + w) * th
	}

	localBbox := [4]float64{
		0,
		font.Descent * tfs / 1000.0,
		totalTx,
		font.Ascent * tfs / 1000.0,
	}

	spaceWidth := font.SpaceWidth()*tfs/1000.0 + gs.charSpace + gs.wordSpace
	ox, oy := trm.Transform(0, 0)
	tx, ty := trm.Transform(spaceWidth, 0)

	c.placements = append(c.placements, PlacedText{
		Text:             text,
		FontID:           gs.fontID,
		FontSize:         tfs,
		Matrix:           trm,
		LocalBbox:        localBbox,
		SpaceWidth:       spaceWidth,
		GlobalSpaceWidth: transform.NewPoint(tx-ox, ty-oy),
	})

	c.tm.Concat(transform.NewMatrix(1, 0, 0, 1, totalTx, 0))
}

func firstArg(params []core.PdfObject) core.PdfObject {
	if len(params) == 0 {
		return nil
	}
	return params[0]
}

func nameArg(params []core.PdfObject, i int) (string, bool) {
	if i >= len(params) {
		return "", false
	}
	return core.GetNameVal(params[i])
}

func stringArg(params []core.PdfObject, i int) ([]byte, bool) {
	if i >= len(params) {
		return nil, false
	}
	return core.GetStringBytes(params[i])
}

func floatArg(params []core.PdfObject, i int) (float64, bool) {
	if i >= len(params) {
		return 0, false
	}
	return core.GetNumberAsFloat(params[i])
}

// floatsN reads the first n operands as numbers, failing if fewer than n
// were supplied or any of them is not a number.
func floatsN(params []core.PdfObject, n int) ([]float64, bool) {
	if len(params) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, ok := core.GetNumberAsFloat(params[i])
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

var _ contentstream.Handler = (*Collector)(nil)
