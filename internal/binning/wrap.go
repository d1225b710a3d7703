package binning

import "math"

// quarterTurn is the +/-pi/2 threshold the wrap predicate tests corners
// against.
const quarterTurn = math.Pi / 2

// WrapNeeded reports whether a pixel's four pos1 corners straddle the
// +/-pi cut: two corners above +pi/2 and the complementary two below -pi/2.
// It is the OR over the three ways to split four corners into two
// complementary pairs, each checked in both directions, for six total
// disjoint patterns. A pixel where all four corners share the same half
// (the open question noted against the source's "foo" predicate) never
// matches any of the three groups, since that requires one pair to clear
// +pi/2 while the *other* pair clears -pi/2.
func WrapNeeded(a, b, c, d float64) bool {
	v := [4]float64{a, b, c, d}
	above := func(i int) bool { return v[i] > quarterTurn }
	below := func(i int) bool { return v[i] < -quarterTurn }

	groups := [3][2][2]int{
		{{0, 1}, {2, 3}},
		{{0, 2}, {1, 3}},
		{{0, 3}, {1, 2}},
	}
	for _, g := range groups {
		p, q := g[0], g[1]
		if above(p[0]) && above(p[1]) && below(q[0]) && below(q[1]) {
			return true
		}
		if below(p[0]) && below(p[1]) && above(q[0]) && above(q[1]) {
			return true
		}
	}
	return false
}

// ApplyWrap shifts every negative corner by +2pi when the quadrilateral
// crosses the +/-pi cut, keeping the four corners contiguous in angular
// space (at the cost of shifted corners lying above +pi, past the end of a
// [-pi, pi) output axis). Callers
// must clip the resulting bin-space coordinates against the valid range
// themselves; ApplyWrap only fixes up the input corners.
func ApplyWrap(corners [4]float64) [4]float64 {
	if !WrapNeeded(corners[0], corners[1], corners[2], corners[3]) {
		return corners
	}
	out := corners
	for i, v := range out {
		if v < 0 {
			out[i] = v + 2*math.Pi
		}
	}
	return out
}
