package azimint

import (
	"azimint/internal/split1d"
	"azimint/internal/split2d"
)

func toSplit1DCorners(q Quad) split1d.Corners {
	var c split1d.Corners
	for i, corner := range q {
		c[i] = struct{ Pos0, Pos1 float64 }{corner.Pos0, corner.Pos1}
	}
	return c
}

func toSplit2DCorners(q Quad) split2d.Corners {
	var c split2d.Corners
	for i, corner := range q {
		c[i] = struct{ Pos0, Pos1 float64 }{corner.Pos0, corner.Pos1}
	}
	return c
}

func flattenPos0(pos []Quad) []float64 {
	out := make([]float64, 0, len(pos)*4)
	for _, q := range pos {
		for _, c := range q {
			out = append(out, c.Pos0)
		}
	}
	return out
}

func flattenPos1(pos []Quad) []float64 {
	out := make([]float64, 0, len(pos)*4)
	for _, q := range pos {
		for _, c := range q {
			out = append(out, c.Pos1)
		}
	}
	return out
}
