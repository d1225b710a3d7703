package azimint

import (
	"fmt"
	"log"

	"azimint/internal/accum"
	"azimint/internal/binning"
	"azimint/internal/correction"
	"azimint/internal/split1d"
)

// Integrate1D distributes each pixel's corrected intensity across bins
// radial bins spanning Pos0Range (or the derived min/max of pos), returning
// the bin centers, normalized intensity, and the raw weight/data sums.
func Integrate1D(pos []Quad, weights []float64, bins int, opts Options) (Result1D, error) {
	n := len(pos)
	if len(weights) != n {
		return Result1D{}, fmt.Errorf("%w: weights has length %d, pos has length %d", ErrShapeMismatch, len(weights), n)
	}
	if bins <= 0 {
		return Result1D{}, fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidParameter, bins)
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
		return Result1D{}, fmt.Errorf("%w: %s", ErrShapeMismatch, err)
	}

	pos0lo, pos0hi := rangeOrDerive(flattenPos0(pos), opts.Pos0Range)
	if opts.Pos0Range == nil && n > 0 {
		binning.RobustRangeCheck("pos0", flattenPos0(pos), pos0lo, pos0hi)
	}
	axis := binning.NewAxis(pos0lo, pos0hi, bins)

	splitter := &split1d.Splitter{Axis: axis, Pos1Range: opts.Pos1Range}
	values, keep := pipeline.ApplyAll(weights)

	acc, discarded := runPixelLoop(n, opts.Workers, bins, func(i int, acc *accum.Accumulator) bool {
		if !keep[i] {
			return true
		}
		return splitter.Split(toSplit1DCorners(pos[i]), values[i], acc)
	})
	if discarded > 0 {
		log.Printf("azimint: %d/%d pixels were discarded (outside the pos0/pos1 range or degenerate)", discarded, n)
	}

	outPos := make([]float64, bins)
	for k := 0; k < bins; k++ {
		outPos[k] = axis.Center(k)
	}

	return Result1D{
		OutPos:   outPos,
		OutMerge: acc.Finalize(opts.Dummy),
		OutData:  acc.Data,
		OutCount: acc.Count,
	}, nil
}

func rangeOrDerive(values []float64, override *[2]float64) (lo, hi float64) {
	if override != nil {
		return override[0], override[1]
	}
	return binning.DeriveRange(values)
}
