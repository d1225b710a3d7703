// Package binning maps pixel corners from angular units (pos0, pos1) to
// fractional bin-index coordinates, and resolves the pos1 azimuthal
// wrap-around at +/-pi.
package binning

import "math"

// Axis is a linear map from an angular coordinate to a fractional bin
// index: BinOf(x) = (x - Lo) / D.
type Axis struct {
	Lo, Hi, D float64
	Bins      int
}

// NewAxis builds an Axis spanning [lo, hi) split into bins equal columns.
func NewAxis(lo, hi float64, bins int) Axis {
	return Axis{Lo: lo, Hi: hi, D: (hi - lo) / float64(bins), Bins: bins}
}

// BinOf converts an angular coordinate to a fractional bin index.
func (a Axis) BinOf(x float64) float64 {
	return (x - a.Lo) / a.D
}

// Center returns the center, in angular units, of bin k.
func (a Axis) Center(k int) float64 {
	return a.Lo + (float64(k)+0.5)*a.D
}

// DeriveRange scans pos for its min/max and expands the upper bound by one
// float32 ulp, so the maximum input value maps strictly below the last bin
// rather than landing exactly on its right edge.
func DeriveRange(pos []float64) (lo, hi float64) {
	lo, hi = pos[0], pos[0]
	for _, v := range pos[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, expandUlp(hi)
}

// expandUlp nudges x up by one ulp at float32 precision: the engine's
// range semantics are defined in terms of a float32 ulp regardless of the
// internal float64 working precision, matching the reference behavior of
// treating pos0_max/pos1_max as expanded-by-one-ulp inclusive bounds.
func expandUlp(x float64) float64 {
	f32 := float32(x)
	next := math.Nextafter32(f32, float32(math.Inf(1)))
	return float64(next)
}
