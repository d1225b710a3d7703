// Package accum accumulates per-bin weighted sums during the pixel loop and
// finalizes them into a normalized histogram once the loop completes.
package accum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// epsilon is the minimum accumulated weight a bin needs before it is
// considered populated; below it the bin is filled with the dummy value.
const epsilon = 1e-10

// Accumulator holds the running sum(I*w) and sum(w) for every bin. Bins are
// addressed by a flat index; 2D callers map (i,j) to i*bins1+j themselves.
type Accumulator struct {
	Data  []float64
	Count []float64
}

// New allocates a zero-initialized accumulator for n bins.
func New(n int) *Accumulator {
	return &Accumulator{Data: make([]float64, n), Count: make([]float64, n)}
}

// Add deposits weight w (area fraction or 1 in the fast paths) and its
// associated intensity contribution I*w into bin k.
func (a *Accumulator) Add(k int, w, intensity float64) {
	a.Count[k] += w
	a.Data[k] += intensity * w
}

// Finalize divides Data by Count bin-by-bin, filling bins whose
// accumulated weight is at or below epsilon with dummy (0 if dummy is nil).
func (a *Accumulator) Finalize(dummy *float64) []float64 {
	fill := 0.0
	if dummy != nil {
		fill = *dummy
	}
	merge := make([]float64, len(a.Data))
	for k := range merge {
		if a.Count[k] > epsilon {
			merge[k] = a.Data[k] / a.Count[k]
		} else {
			merge[k] = fill
		}
	}
	return merge
}

// TotalCount and TotalData are the conservation-check sums referenced by
// spec's P1: summed accumulated weight and intensity across every bin. They
// are exposed for tests; the engine itself does not call them.
func (a *Accumulator) TotalCount() float64 { return floats.Sum(a.Count) }
func (a *Accumulator) TotalData() float64  { return floats.Sum(a.Data) }

// WeightedMean reports the accumulation-weighted mean of Data/Count across
// populated bins, a cheap gonum/stat-based sanity figure useful for
// property tests and debug logging - not part of the spec's output.
func (a *Accumulator) WeightedMean() float64 {
	var merged, weights []float64
	for k := range a.Data {
		if a.Count[k] > epsilon {
			merged = append(merged, a.Data[k]/a.Count[k])
			weights = append(weights, a.Count[k])
		}
	}
	if len(merged) == 0 {
		return 0
	}
	return stat.Mean(merged, weights)
}
