/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"github.com/unidoc/pdftextplace/core"
	"github.com/unidoc/pdftextplace/model"
)

// fontCache interns FontDescriptions by the resource scope's identityKey,
// document-scoped and shared across every page's Collector (§3 Ownership,
// §4.4 "rebuilding a FontDescription on each encounter is forbidden").
//
// Unlike the teacher's extractor/text.go fontEntry/maxFontCache, this cache
// is not LRU-bounded: spec.md's cache is document-scoped rather than the
// teacher's process-global one, so the eviction pressure that motivates an
// LRU there does not apply here (see DESIGN.md).
type fontCache struct {
	provider model.ObjectProvider
	entries  map[string]*model.FontDescription
}

func newFontCache(provider model.ObjectProvider) *fontCache {
	return &fontCache{provider: provider, entries: map[string]*model.FontDescription{}}
}

// load returns the cached FontDescription for key, building and interning
// one from dict if this is the first encounter.
func (c *fontCache) load(key string, dict *core.PdfObjectDictionary) (*model.FontDescription, error) {
	if fd, ok := c.entries[key]; ok {
		return fd, nil
	}
	fd, err := model.LoadFontDescription(c.provider, dict)
	if err != nil {
		return nil, err
	}
	c.entries[key] = fd
	return fd, nil
}

// summaries returns the §6.2 serialized form of every font built so far.
func (c *fontCache) summaries() map[string]FontSummary {
	out := make(map[string]FontSummary, len(c.entries))
	for id, fd := range c.entries {
		out[id] = FontSummary{
			FontID:      id,
			FontName:    fd.FontName,
			FamilyName:  fd.FamilyName,
			FontStretch: fd.FontStretch,
			FontWeight:  fd.FontWeight,
			FontFlags:   fd.Flags,
			Ascent:      fd.Ascent,
			Descent:     fd.Descent,
			SpaceWidth:  fd.SpaceWidth(),
		}
	}
	return out
}
