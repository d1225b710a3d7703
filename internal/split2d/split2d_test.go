package split2d

import (
	"math"
	"testing"

	"azimint/internal/accum"
	"azimint/internal/binning"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// P6 / scenario 5: a pixel covering [0,2]x[0,2] split over a 2x2 grid over
// the same range deposits 0.25/1 into every cell.
func TestFullCoverageOverFourCells(t *testing.T) {
	s := &Splitter{Axis0: binning.NewAxis(0, 2, 2), Axis1: binning.NewAxis(0, 2, 2)}
	acc := accum.New(4)
	c := Corners{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	s.Split(c, 4, acc)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			idx := s.flatIndex(i, j)
			if !approx(acc.Count[idx], 0.25, 1e-9) {
				t.Errorf("Count[%d,%d] = %v, want 0.25", i, j, acc.Count[idx])
			}
			if !approx(acc.Data[idx], 1, 1e-9) {
				t.Errorf("Data[%d,%d] = %v, want 1", i, j, acc.Data[idx])
			}
		}
	}
}

// P6: a pixel whose four corners lie inside one cell deposits 1 and I.
func TestSingleCellFastPath(t *testing.T) {
	s := &Splitter{Axis0: binning.NewAxis(0, 10, 10), Axis1: binning.NewAxis(0, 10, 10)}
	acc := accum.New(100)
	c := Corners{{1.1, 2.1}, {1.9, 2.1}, {1.9, 2.9}, {1.1, 2.9}}
	s.Split(c, 9, acc)

	idx := s.flatIndex(1, 2)
	if acc.Count[idx] != 1 {
		t.Errorf("Count = %v, want 1", acc.Count[idx])
	}
	if acc.Data[idx] != 9 {
		t.Errorf("Data = %v, want 9", acc.Data[idx])
	}
	if acc.TotalCount() != 1 {
		t.Errorf("TotalCount() = %v, want 1 (only one cell touched)", acc.TotalCount())
	}
}

func TestSingleColumnFastPath(t *testing.T) {
	s := &Splitter{Axis0: binning.NewAxis(0, 5, 5), Axis1: binning.NewAxis(0, 4, 4)}
	acc := accum.New(20)
	// pos0 fixed within bin 2; pos1 spans bins 1-2.
	c := Corners{{2.1, 1.5}, {2.9, 1.5}, {2.9, 2.5}, {2.1, 2.5}}
	s.Split(c, 8, acc)

	total := acc.TotalCount()
	if !approx(total, 1, 1e-9) {
		t.Errorf("total weight = %v, want 1 for a fully in-range pixel", total)
	}
	idxOther := s.flatIndex(2, 0)
	if acc.Count[idxOther] != 0 {
		t.Errorf("bin (2,0) should not receive any weight")
	}
}

func TestSingleRowFastPath(t *testing.T) {
	s := &Splitter{Axis0: binning.NewAxis(0, 4, 4), Axis1: binning.NewAxis(0, 5, 5)}
	acc := accum.New(20)
	c := Corners{{1.5, 2.1}, {2.5, 2.1}, {2.5, 2.9}, {1.5, 2.9}}
	s.Split(c, 8, acc)

	total := acc.TotalCount()
	if !approx(total, 1, 1e-9) {
		t.Errorf("total weight = %v, want 1 for a fully in-range pixel", total)
	}
}

// P8: a pixel whose azimuthal corners straddle +/-pi is deposited
// contiguously - no weight in the interior bins between the wrapped
// segment and the part that falls outside the output range.
func TestWrapAroundContiguous(t *testing.T) {
	axis0 := binning.NewAxis(0, 10, 10)
	axis1 := binning.NewAxis(-math.Pi, math.Pi, 8)
	s := &Splitter{Axis0: axis0, Axis1: axis1}
	acc := accum.New(10 * 8)

	c := Corners{
		{5.0, 3.0},
		{5.05, 3.1},
		{5.05, -3.1},
		{5.0, -3.0},
	}
	s.Split(c, 6, acc)

	for bin1 := 1; bin1 < 7; bin1++ {
		idx := s.flatIndex(5, bin1)
		if acc.Count[idx] != 0 {
			t.Errorf("interior azimuthal bin %d should be empty, got count %v", bin1, acc.Count[idx])
		}
	}
}

// Regression: a non-grid-aligned pixel spanning a 2x2 block of cells must
// still be split via partial clips (count 1-3), not silently dropped
// because its bounding box happens not to land on an integer bin edge.
func TestGeneralPathNonGridAlignedSplit(t *testing.T) {
	s := &Splitter{Axis0: binning.NewAxis(0, 2, 2), Axis1: binning.NewAxis(0, 2, 2)}
	acc := accum.New(4)
	c := Corners{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}}
	s.Split(c, 4, acc)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			idx := s.flatIndex(i, j)
			if !approx(acc.Count[idx], 0.25, 1e-9) {
				t.Errorf("Count[%d,%d] = %v, want 0.25", i, j, acc.Count[idx])
			}
			if !approx(acc.Data[idx], 1, 1e-9) {
				t.Errorf("Data[%d,%d] = %v, want 1", i, j, acc.Data[idx])
			}
		}
	}
	if !approx(acc.TotalCount(), 1, 1e-9) {
		t.Errorf("total weight = %v, want 1 for a fully in-range pixel", acc.TotalCount())
	}
}

func TestOutOfRangePos0Discarded(t *testing.T) {
	s := &Splitter{Axis0: binning.NewAxis(0, 2, 2), Axis1: binning.NewAxis(0, 2, 2)}
	acc := accum.New(4)
	c := Corners{{10, 0}, {11, 0}, {11, 1}, {10, 1}}
	if ok := s.Split(c, 5, acc); ok {
		t.Errorf("expected pos0 out-of-range pixel to be discarded")
	}
	if acc.TotalCount() != 0 {
		t.Errorf("expected no accumulation")
	}
}
