/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"

	"github.com/unidoc/pdftextplace/common"
	"github.com/unidoc/pdftextplace/contentstream"
	"github.com/unidoc/pdftextplace/core"
)

// maxResolveDepth bounds indirect-reference chains, the same defensive
// posture as the recursion limit on Form XObjects: a document should never
// need more than a couple of hops to reach a direct object.
const maxResolveDepth = 32

// Resolve follows a chain of indirect references to a direct object,
// exported so callers outside this package (the extractor's ExtGState
// handling, which resolves a raw /Font array entry rather than a named
// resource) can share the same bounded-depth logic.
func Resolve(provider ObjectProvider, obj core.PdfObject) core.PdfObject {
	return resolve(provider, obj)
}

// resolve follows a chain of indirect references to a direct object.
func resolve(provider ObjectProvider, obj core.PdfObject) core.PdfObject {
	for i := 0; i < maxResolveDepth; i++ {
		ref, ok := obj.(*core.PdfObjectReference)
		if !ok {
			return obj
		}
		resolved, err := provider.Resolve(ref)
		if err != nil || resolved == nil {
			common.Log.Debug("resolve: unresolved reference %s: %v", ref, err)
			return nil
		}
		obj = resolved
	}
	common.Log.Debug("resolve: reference chain too deep, giving up")
	return nil
}

// ResourceScope is one level of the §4.2 resource-scope stack: the
// name-indexed Font/ExtGState/XObject mappings inherited from the page's or
// a Form XObject's own Resources dictionary. It implements
// contentstream.Resources so the interpreter can resolve Do operands
// without knowing about fonts or ExtGStates at all.
type ResourceScope struct {
	provider ObjectProvider
	dict     *core.PdfObjectDictionary
}

// NewResourceScope wraps a page or Form XObject's Resources dictionary.
// dict may be nil, in which case every lookup fails. A failed lookup is not
// retried in an enclosing page or Form scope.
func NewResourceScope(provider ObjectProvider, dict *core.PdfObjectDictionary) *ResourceScope {
	return &ResourceScope{provider: provider, dict: dict}
}

func (rs *ResourceScope) subdict(category core.PdfObjectName) (*core.PdfObjectDictionary, bool) {
	if rs == nil || rs.dict == nil {
		return nil, false
	}
	obj := resolve(rs.provider, rs.dict.Get(category))
	return core.GetDict(obj)
}

// FindFont resolves a font resource name to the resolved font dictionary
// plus an identityKey taken from its raw (possibly indirect) entry. identityKey is a string unique
// to the underlying object, suitable as a font cache key: for an indirect
// font entry it is the reference's object/generation number; an inline
// font dictionary (no indirection) falls back to its own String(), which
// means two structurally-identical inline font dicts collide in the cache
// — an accepted simplification, since real-world PDF writers always
// reference fonts indirectly.
func (rs *ResourceScope) FindFont(name string) (dict *core.PdfObjectDictionary, identityKey string, found bool) {
	sub, ok := rs.subdict("Font")
	if !ok {
		return nil, "", false
	}
	raw := sub.Get(core.PdfObjectName(name))
	if raw == nil {
		return nil, "", false
	}
	key := raw.String()
	resolved := resolve(rs.provider, raw)
	d, ok := core.GetDict(resolved)
	if !ok {
		return nil, "", false
	}
	return d, key, true
}

// FindExtGState resolves an ExtGState resource name to its dictionary.
func (rs *ResourceScope) FindExtGState(name string) (*core.PdfObjectDictionary, bool) {
	sub, ok := rs.subdict("ExtGState")
	if !ok {
		return nil, false
	}
	resolved := resolve(rs.provider, sub.Get(core.PdfObjectName(name)))
	return core.GetDict(resolved)
}

// GetXObject implements contentstream.Resources, resolving the Do
// operand's name to decoded content bytes plus the XObject's own nested
// Resources (nil if it declares none).
func (rs *ResourceScope) GetXObject(name string) ([]byte, string, contentstream.Resources, bool, error) {
	sub, ok := rs.subdict("XObject")
	if !ok {
		return nil, "", nil, false, nil
	}
	resolved := resolve(rs.provider, sub.Get(core.PdfObjectName(name)))
	stream, ok := core.GetStream(resolved)
	if !ok {
		return nil, "", nil, false, nil
	}

	subtypeName, _ := core.GetNameVal(stream.Get("Subtype"))

	content, err := rs.provider.StreamContents(stream)
	if err != nil {
		return nil, "", nil, false, fmt.Errorf("decoding xobject %q: %w", name, err)
	}

	var nested contentstream.Resources
	if nestedDict, ok := core.GetDict(resolve(rs.provider, stream.Get("Resources"))); ok {
		nested = NewResourceScope(rs.provider, nestedDict)
	}

	return content, subtypeName, nested, true, nil
}

var _ contentstream.Resources = (*ResourceScope)(nil)
