// Package split1d distributes each pixel's corrected intensity across
// radial (pos0) bins, integrating the quadrilateral's edges restricted to
// each bin column.
package split1d

import (
	"math"

	"azimint/internal/accum"
	"azimint/internal/binning"
	"azimint/pkg/geometry"
)

// degenerateArea is the pixel-area floor below which a quadrilateral is
// treated as degenerate and silently skipped, per spec's failure semantics
// for malformed pixels.
const degenerateArea = 1e-12

// Corners is one pixel's four (pos0, pos1) corners in angular units, in
// the order supplied by the geometry layer.
type Corners [4]struct{ Pos0, Pos1 float64 }

// Splitter distributes intensity along a single pos0 Axis. Pos1Range, when
// set, discards pixels whose raw pos1 corners fall entirely outside it.
type Splitter struct {
	Axis      binning.Axis
	Pos1Range *[2]float64
}

// Split deposits weight and intensity into acc for one pixel. It returns
// false when the pixel was discarded (out of range or degenerate), purely
// for caller-side bookkeeping/logging.
func (s *Splitter) Split(c Corners, intensity float64, acc *accum.Accumulator) bool {
	var q geometry.Quad
	for i, corner := range c {
		q[i] = geometry.Point{X: s.Axis.BinOf(corner.Pos0), Y: corner.Pos1}
	}
	minX, maxX, minY, maxY := q.Bounds()

	bins := s.Axis.Bins
	if maxX < 0 || minX >= float64(bins) {
		return false
	}
	if s.Pos1Range != nil {
		if maxY < s.Pos1Range[0] || minY > s.Pos1Range[1] {
			return false
		}
	}

	kLo := int(math.Floor(minX))
	kHi := int(math.Floor(maxX))

	if kLo == kHi {
		if kLo >= 0 && kLo < bins {
			acc.Add(kLo, 1, intensity)
		}
		return true
	}

	// Translate so kLo becomes column 0; slopes are translation-invariant,
	// only the intercepts shift.
	var t geometry.Quad
	for i, p := range q {
		t[i] = geometry.Point{X: p.X - float64(kLo), Y: p.Y}
	}
	pixelArea := t.Area()
	if pixelArea < degenerateArea {
		return false
	}

	ab := geometry.FitEdgeLine(t[0], t[1])
	bc := geometry.FitEdgeLine(t[1], t[2])
	cd := geometry.FitEdgeLine(t[2], t[3])
	da := geometry.FitEdgeLine(t[3], t[0])

	lo := max(kLo, 0)
	hi := min(kHi, bins-1)
	for k := lo; k <= hi; k++ {
		u := float64(k - kLo)
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
		acc.Add(k, w, intensity)
	}
	return true
}
