package binning

import (
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RobustRangeCheck logs a single warning when an auto-derived [lo, hi)
// range looks dominated by a handful of extreme corners rather than the
// bulk of the data. It never changes lo/hi - spec's range derivation stays
// the plain min/max scan in DeriveRange - this is purely a diagnostic built
// the way the teacher solves small linear systems elsewhere (a normal-
// equations solve via mat.Dense/mat.VecDense), reused here for a
// constant-model (mean) fit instead of an affine one.
func RobustRangeCheck(label string, pos []float64, lo, hi float64) {
	n := len(pos)
	if n < 8 {
		return
	}

	A := mat.NewDense(n, 1, nil)
	b := mat.NewVecDense(n, nil)
	for i, v := range pos {
		A.Set(i, 0, 1)
		b.SetVec(i, v)
	}

	var center mat.VecDense
	if err := center.SolveVec(A, b); err != nil {
		return
	}
	c := center.AtVec(0)

	var sumSq float64
	for _, v := range pos {
		d := v - c
		sumSq += d * d
	}
	spread := math.Sqrt(sumSq / float64(n))
	if spread <= 0 {
		return
	}

	if (hi-c) > 6*spread || (c-lo) > 6*spread {
		log.Printf("binning: %s range [%.6g, %.6g) looks outlier-driven (center %.6g, spread %.6g)",
			label, lo, hi, c, spread)
	}
}
