/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"golang.org/x/xerrors"

	"github.com/unidoc/pdftextplace/common"
	"github.com/unidoc/pdftextplace/contentstream"
	"github.com/unidoc/pdftextplace/model"
)

// Extractor drives a document's pages through the interpreter and
// Collector end to end. It owns the document-scoped font cache: building
// one Extractor per document, as §5 requires for parallel extraction, is
// the caller's job.
type Extractor struct {
	provider model.ObjectProvider
	fonts    *fontCache
	proc     *contentstream.Processor
}

// NewExtractor returns an Extractor reading pages from provider, using the
// recommended Form XObject recursion limit.
func NewExtractor(provider model.ObjectProvider) *Extractor {
	return &Extractor{
		provider: provider,
		fonts:    newFontCache(provider),
		proc:     contentstream.NewProcessor(),
	}
}

// SetMaxFormDepth overrides the Form XObject recursion limit (§5's
// recommended default is 32, set by NewExtractor).
func (ex *Extractor) SetMaxFormDepth(depth int) {
	ex.proc.MaxFormDepth = depth
}

// Result is the §6.2 output surface for one Extract call.
type Result struct {
	PageCount      int
	PlacementCount int
	FontsByID      map[string]FontSummary
	Placements     []TextPlacement
}

// ExtractAll extracts every page of the document.
func (ex *Extractor) ExtractAll() (*Result, error) {
	return ex.Extract(0, -1)
}

// Extract extracts pages in [startPage, endPage); endPage < 0 means
// end-of-document (§6.2). A failure enumerating the document's pages is
// fatal (IOError); a failure reading one page's resources or contents is
// logged and that page is skipped, contributing no placements
// (MalformedPDF, per-page recoverable).
func (ex *Extractor) Extract(startPage, endPage int) (*Result, error) {
	pages, err := ex.provider.Pages()
	if err != nil {
		return nil, newError(KindIOError, startPage, err)
	}

	total := len(pages)
	if startPage < 0 {
		startPage = 0
	}
	if endPage < 0 || endPage > total {
		endPage = total
	}

	result := &Result{PageCount: total}

	for i := startPage; i < endPage; i++ {
		placed, err := ex.extractPage(i, pages[i])
		for _, pt := range placed {
			result.Placements = append(result.Placements, toTextPlacement(i, &pt))
		}
		if err != nil {
			common.Log.Debug("extract: page %d: %v", i, err)
		}
	}

	result.PlacementCount = len(result.Placements)
	result.FontsByID = ex.fonts.summaries()
	return result, nil
}

// extractPage runs one page's content stream to completion, returning
// whatever placements were gathered even if an error aborted the stream
// partway through (§8: a RecursionLimit abort still yields the prefix of
// placements gathered so far).
func (ex *Extractor) extractPage(index int, page model.PageRef) ([]PlacedText, error) {
	resourcesDict, err := ex.provider.PageResources(page)
	if err != nil {
		return nil, newError(KindMalformedPDF, index, err)
	}
	content, err := ex.provider.PageContents(page)
	if err != nil {
		return nil, newError(KindMalformedPDF, index, err)
	}

	scope := model.NewResourceScope(ex.provider, resourcesDict)
	collector := newCollector(ex.provider, ex.fonts)

	procErr := ex.proc.Process(content, scope, collector)
	placed := collector.onDone()

	if procErr == nil {
		return placed, nil
	}
	if xerrors.Is(procErr, contentstream.ErrRecursionLimit) {
		return placed, newError(KindRecursionLimit, index, procErr)
	}
	return placed, newError(KindParseError, index, procErr)
}
