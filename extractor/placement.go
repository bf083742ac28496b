/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import "github.com/unidoc/pdftextplace/internal/transform"

// PlacedText is one interpreter-level record per text-showing primitive
// (Tj/TJ string element/'/"), produced before page aggregation. See §3.
type PlacedText struct {
	Text   string
	FontID string

	// FontSize is the font size in effect when the string was shown; not
	// named in spec.md's PlacedText but carried through the way the
	// teacher's TextMark carries FontSize, since downstream gap/line
	// detection needs it and spec.md never says to discard it.
	FontSize float64

	// Matrix is [1 0 0 1 0 textRise] × tm × ctm at the start of the
	// string: the transform
	// carrying the already fontSize-scaled text-space coordinates below
	// (LocalBbox, SpaceWidth) to page (default user) space.
	Matrix transform.Matrix

	// LocalBbox is [xMin, yMin, xMax, yMax] in text space, pre-matrix.
	LocalBbox [4]float64

	// SpaceWidth is the font's nominal space advance in text-space units
	// at this fontSize, plus charSpace and wordSpace (§4.2).
	SpaceWidth float64

	// GlobalSpaceWidth is SpaceWidth transformed as a vector (not a point:
	// translation is excluded) through Matrix.
	GlobalSpaceWidth transform.Point
}

// TextPlacement is the external, page-aggregated output record (§6.2).
type TextPlacement struct {
	Page   int
	FontID string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Text   string
}

// FontSummary is the serialized FontDescription form named in §6.2.
type FontSummary struct {
	FontID      string
	FontName    string
	FamilyName  string
	FontStretch string
	FontWeight  float64
	FontFlags   int
	Ascent      float64
	Descent     float64
	SpaceWidth  float64
}

// globalBbox transforms localBbox's four corners by m and returns the
// axis-aligned bounding box of the result, per §4.2 "Global bbox".
func globalBbox(local [4]float64, m transform.Matrix) (x, y, width, height float64) {
	corners := [4]transform.Point{
		transform.NewPoint(local[0], local[1]),
		transform.NewPoint(local[2], local[1]),
		transform.NewPoint(local[0], local[3]),
		transform.NewPoint(local[2], local[3]),
	}

	first := corners[0].Transform(m)
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, c := range corners[1:] {
		p := c.Transform(m)
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX - minX, maxY - minY
}

// toTextPlacement converts one interpreter-level record into the page's
// external output form.
func toTextPlacement(page int, pt *PlacedText) TextPlacement {
	x, y, w, h := globalBbox(pt.LocalBbox, pt.Matrix)
	return TextPlacement{
		Page:   page,
		FontID: pt.FontID,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Text:   pt.Text,
	}
}
