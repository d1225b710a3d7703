// Package split2d distributes each pixel's corrected intensity across a 2D
// (pos0, pos1) bin grid via full polygon-rectangle clipping, with fast
// paths for the single-cell and single-row/column cases.
package split2d

import (
	"math"

	"azimint/internal/accum"
	"azimint/internal/binning"
	"azimint/pkg/geometry"
)

const degenerateArea = 1e-12

// Corners is one pixel's four (pos0, pos1) corners in angular units.
type Corners [4]struct{ Pos0, Pos1 float64 }

// Splitter distributes intensity over the (Axis0 x Axis1) bin grid.
// Accumulator bins are addressed flat, row-major over (bin0, bin1):
// index = bin0*Axis1.Bins + bin1.
type Splitter struct {
	Axis0, Axis1 binning.Axis
}

func (s *Splitter) flatIndex(bin0, bin1 int) int {
	return bin0*s.Axis1.Bins + bin1
}

func (s *Splitter) inRange(bin0, bin1 int) bool {
	return bin0 >= 0 && bin0 < s.Axis0.Bins && bin1 >= 0 && bin1 < s.Axis1.Bins
}

func (s *Splitter) deposit(acc *accum.Accumulator, bin0, bin1 int, w, intensity float64) {
	if w == 0 || !s.inRange(bin0, bin1) {
		return
	}
	acc.Add(s.flatIndex(bin0, bin1), w, intensity)
}

// Split deposits weight and intensity into acc for one pixel. It returns
// false when the pixel's bounding box falls entirely outside the pos0
// range or entirely below the pos1 range (the only hard discards; an
// out-of-range pos1 upper bound is handled softly by simply never matching
// an in-range cell).
func (s *Splitter) Split(c Corners, intensity float64, acc *accum.Accumulator) bool {
	var rawPos1 [4]float64
	for i, corner := range c {
		rawPos1[i] = corner.Pos1
	}
	wrapped := binning.ApplyWrap(rawPos1)

	var q geometry.Quad
	for i, corner := range c {
		q[i] = geometry.Point{X: s.Axis0.BinOf(corner.Pos0), Y: s.Axis1.BinOf(wrapped[i])}
	}
	minX, maxX, minY, maxY := q.Bounds()

	if maxX < 0 || minX >= float64(s.Axis0.Bins) || maxY < 0 {
		return false
	}

	bin0Min := int(math.Floor(minX))
	bin0Max := int(math.Floor(maxX))
	bin1Min := int(math.Floor(minY))
	bin1Max := int(math.Floor(maxY))

	switch {
	case bin0Min == bin0Max && bin1Min == bin1Max:
		s.deposit(acc, bin0Min, bin1Min, 1, intensity)
		return true

	case bin0Min == bin0Max:
		// single column: integrate along pos1, X translated so bin1Min -> 0.
		var t geometry.Quad
		for i, p := range q {
			t[i] = geometry.Point{X: p.Y - float64(bin1Min), Y: p.X}
		}
		splitAlongAxis(t, bin1Max-bin1Min, func(localK int, w float64) {
			s.deposit(acc, bin0Min, bin1Min+localK, w, intensity)
		})
		return true

	case bin1Min == bin1Max:
		// single row: integrate along pos0, X translated so bin0Min -> 0.
		var t geometry.Quad
		for i, p := range q {
			t[i] = geometry.Point{X: p.X - float64(bin0Min), Y: p.Y}
		}
		splitAlongAxis(t, bin0Max-bin0Min, func(localK int, w float64) {
			s.deposit(acc, bin0Min+localK, bin1Min, w, intensity)
		})
		return true

	default:
		s.splitGeneral(q, bin0Min, bin0Max, bin1Min, bin1Max, intensity, acc)
		return true
	}
}

// splitAlongAxis runs the line-integral scheme against a quad already
// translated so its local split axis starts at column 0, depositing a
// weight for each local column 0..span inclusive.
func splitAlongAxis(t geometry.Quad, span int, deposit func(localK int, w float64)) {
	pixelArea := t.Area()
	if pixelArea < degenerateArea {
		return
	}
	ab := geometry.FitEdgeLine(t[0], t[1])
	bc := geometry.FitEdgeLine(t[1], t[2])
	cd := geometry.FitEdgeLine(t[2], t[3])
	da := geometry.FitEdgeLine(t[3], t[0])

	for k := 0; k <= span; k++ {
		u := float64(k)
		aLim := geometry.Clamp(t[0].X, u, u+1)
		bLim := geometry.Clamp(t[1].X, u, u+1)
		cLim := geometry.Clamp(t[2].X, u, u+1)
		dLim := geometry.Clamp(t[3].X, u, u+1)

		partial := geometry.LineIntegrate(aLim, bLim, ab.Slope, ab.Intercept) +
			geometry.LineIntegrate(bLim, cLim, bc.Slope, bc.Intercept) +
			geometry.LineIntegrate(cLim, dLim, cd.Slope, cd.Intercept) +
			geometry.LineIntegrate(dLim, aLim, da.Slope, da.Intercept)

		w := math.Abs(partial) / pixelArea
		if w == 0 {
			continue
		}
		deposit(k, w)
	}
}

// splitGeneral runs the full Sutherland-Hodgman clip path: build an
// is-inside lattice over the pixel's local bounding box, classify each
// cell by how many of its four corners are inside the pixel quadrilateral,
// and either deposit the whole cell (all 4 inside), clip-and-measure
// (1-3 inside), or skip (0 inside).
func (s *Splitter) splitGeneral(q geometry.Quad, bin0Min, bin0Max, bin1Min, bin1Max int, intensity float64, acc *accum.Accumulator) {
	var t geometry.Quad
	for i, p := range q {
		t[i] = geometry.Point{X: p.X - float64(bin0Min), Y: p.Y - float64(bin1Min)}
	}
	pixelArea := t.Area()
	if pixelArea < degenerateArea {
		return
	}

	// numCols/numRows count local cells: bin0_min..bin0_max is an inclusive
	// bounding box (as in the 1D splitter's k_lo..k_hi and this file's own
	// splitAlongAxis), so the cell count is the span plus one.
	numCols := bin0Max - bin0Min + 1
	numRows := bin1Max - bin1Min + 1

	// is_inside is sized (numCols+1) x (numRows+1): one lattice point per
	// cell corner. Boundary points (i==0, i==numCols, j==0 or j==numRows)
	// default to "outside" - only strict-interior points are evaluated,
	// matching the source's interior-only test.
	w := numRows + 1
	inside := make([]bool, (numCols+1)*w)
	at := func(i, j int) bool { return inside[i*w+j] }

	for i := 1; i < numCols; i++ {
		for j := 1; j < numRows; j++ {
			p := geometry.Point{X: float64(i), Y: float64(j)}
			sum := geometry.SideOfLine(t[0], t[1], p) +
				geometry.SideOfLine(t[1], t[2], p) +
				geometry.SideOfLine(t[2], t[3], p) +
				geometry.SideOfLine(t[3], t[0], p)
			if sum == 4 || sum == -4 {
				inside[i*w+j] = true
			}
		}
	}

	var a, b geometry.Polygon
	subject := geometry.FromQuad(t)
	for i := 0; i < numCols; i++ {
		for j := 0; j < numRows; j++ {
			count := 0
			if at(i, j) {
				count++
			}
			if at(i, j+1) {
				count++
			}
			if at(i+1, j) {
				count++
			}
			if at(i+1, j+1) {
				count++
			}

			switch count {
			case 4:
				s.deposit(acc, bin0Min+i, bin1Min+j, 1/pixelArea, intensity)
			case 0:
				continue
			default:
				clipped := geometry.ClipToCell(subject, i, j, &a, &b)
				area := clipped.Area()
				if area == 0 {
					continue
				}
				s.deposit(acc, bin0Min+i, bin1Min+j, area/pixelArea, intensity)
			}
		}
	}
}
