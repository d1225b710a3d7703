package azimint

import (
	"fmt"
	"log"

	"azimint/internal/accum"
	"azimint/internal/binning"
	"azimint/internal/correction"
	"azimint/internal/split2d"
)

// Integrate2D distributes each pixel's corrected intensity across a
// (bins0 x bins1) grid over (Pos0Range, Pos1Range), or their derived
// min/max, returning a flat row-major result.
func Integrate2D(pos []Quad, weights []float64, bins0, bins1 int, opts Options) (Result2D, error) {
	n := len(pos)
	if len(weights) != n {
		return Result2D{}, fmt.Errorf("%w: weights has length %d, pos has length %d", ErrShapeMismatch, len(weights), n)
	}
	if bins0 <= 0 || bins1 <= 0 {
		return Result2D{}, fmt.Errorf("%w: bins0/bins1 must be positive, got %d/%d", ErrInvalidParameter, bins0, bins1)
	}

	pipeline, err := correction.New(correction.Options{
		Mask:         opts.Mask,
		Dark:         opts.Dark,
		Flat:         opts.Flat,
		Polarization: opts.Polarization,
		SolidAngle:   opts.SolidAngle,
		Dummy:        opts.Dummy,
		DeltaDummy:   opts.DeltaDummy,
	}, n)
	if err != nil {
		return Result2D{}, fmt.Errorf("%w: %s", ErrShapeMismatch, err)
	}

	pos0lo, pos0hi := rangeOrDerive(flattenPos0(pos), opts.Pos0Range)
	pos1lo, pos1hi := rangeOrDerive(flattenPos1(pos), opts.Pos1Range)
	if opts.Pos0Range == nil && n > 0 {
		binning.RobustRangeCheck("pos0", flattenPos0(pos), pos0lo, pos0hi)
	}
	if opts.Pos1Range == nil && n > 0 {
		binning.RobustRangeCheck("pos1", flattenPos1(pos), pos1lo, pos1hi)
	}
	axis0 := binning.NewAxis(pos0lo, pos0hi, bins0)
	axis1 := binning.NewAxis(pos1lo, pos1hi, bins1)

	splitter := &split2d.Splitter{Axis0: axis0, Axis1: axis1}
	values, keep := pipeline.ApplyAll(weights)

	acc, discarded := runPixelLoop(n, opts.Workers, bins0*bins1, func(i int, acc *accum.Accumulator) bool {
		if !keep[i] {
			return true
		}
		return splitter.Split(toSplit2DCorners(pos[i]), values[i], acc)
	})
	if discarded > 0 {
		log.Printf("azimint: %d/%d pixels fell outside the pos0/pos1 range", discarded, n)
	}

	edges0 := make([]float64, bins0)
	for k := range edges0 {
		edges0[k] = axis0.Center(k)
	}
	edges1 := make([]float64, bins1)
	for k := range edges1 {
		edges1[k] = axis1.Center(k)
	}

	return Result2D{
		OutMerge: acc.Finalize(opts.Dummy),
		OutData:  acc.Data,
		OutCount: acc.Count,
		Edges0:   edges0,
		Edges1:   edges1,
		Bins0:    bins0,
		Bins1:    bins1,
	}, nil
}
