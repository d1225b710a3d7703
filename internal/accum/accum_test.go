package accum

import "testing"

func TestAddAndFinalize(t *testing.T) {
	a := New(3)
	a.Add(1, 1, 7)
	merge := a.Finalize(nil)
	if merge[1] != 7 {
		t.Errorf("merge[1] = %v, want 7", merge[1])
	}
	if merge[0] != 0 || merge[2] != 0 {
		t.Errorf("empty bins should default to 0 when no dummy is set")
	}
}

func TestFinalizeFillsDummy(t *testing.T) {
	a := New(3)
	dummy := -1.0
	merge := a.Finalize(&dummy)
	for k, v := range merge {
		if v != -1 {
			t.Errorf("merge[%d] = %v, want -1 (dummy)", k, v)
		}
	}
}

func TestFinalizePartialSplit(t *testing.T) {
	a := New(3)
	a.Add(0, 0.5, 10)
	a.Add(1, 0.5, 10)
	merge := a.Finalize(nil)
	if merge[0] != 10 || merge[1] != 10 {
		t.Errorf("merge = %v, want [10,10,0]", merge)
	}
	if a.TotalCount() != 1 {
		t.Errorf("TotalCount() = %v, want 1", a.TotalCount())
	}
	if a.TotalData() != 10 {
		t.Errorf("TotalData() = %v, want 10", a.TotalData())
	}
}
