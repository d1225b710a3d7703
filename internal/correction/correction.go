// Package correction applies the per-pixel validity and intensity
// correction pipeline: mask and dummy skip, then dark subtraction and
// flat/polarization/solid-angle division, in that fixed order.
package correction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// step is a bit in the enabled-steps mask. A bitmask of independently
// togglable steps reads cleaner than a parallel set of booleans once the
// pipeline grows past two or three optional corrections.
type step int

const (
	stepMask step = 1 << iota
	stepDummy
	stepDark
	stepFlat
	stepPolarization
	stepSolidAngle
)

// Options holds the optional per-pixel arrays and scalars the pipeline may
// apply. Every field is independently optional; a nil slice or pointer
// means that step is disabled.
type Options struct {
	Mask                                 []bool
	Dark, Flat, Polarization, SolidAngle []float64
	Dummy, DeltaDummy                    *float64
}

// Pipeline is Options resolved against a known pixel count, with presence
// checks done once up front instead of on every pixel.
type Pipeline struct {
	opts    Options
	enabled step
	n       int
}

// New validates that every provided array has length n and returns a
// Pipeline ready to run. It fails fast, before any accumulation, per the
// shape-mismatch contract the engine enforces at its boundary.
func New(opts Options, n int) (*Pipeline, error) {
	check := func(name string, l int) error {
		if l != 0 && l != n {
			return fmt.Errorf("correction: %s has length %d, want %d", name, l, n)
		}
		return nil
	}
	if opts.Mask != nil {
		if err := check("mask", len(opts.Mask)); err != nil {
			return nil, err
		}
	}
	if err := check("dark", len(opts.Dark)); err != nil {
		return nil, err
	}
	if err := check("flat", len(opts.Flat)); err != nil {
		return nil, err
	}
	if err := check("polarization", len(opts.Polarization)); err != nil {
		return nil, err
	}
	if err := check("solidangle", len(opts.SolidAngle)); err != nil {
		return nil, err
	}

	var enabled step
	if opts.Mask != nil {
		enabled |= stepMask
	}
	if opts.Dummy != nil {
		enabled |= stepDummy
	}
	if len(opts.Dark) != 0 {
		enabled |= stepDark
	}
	if len(opts.Flat) != 0 {
		enabled |= stepFlat
	}
	if len(opts.Polarization) != 0 {
		enabled |= stepPolarization
	}
	if len(opts.SolidAngle) != 0 {
		enabled |= stepSolidAngle
	}

	return &Pipeline{opts: opts, enabled: enabled, n: n}, nil
}

// Apply corrects the raw intensity of pixel i. keep is false when the pixel
// must be skipped (masked, or matching the dummy sentinel); value is
// meaningless when keep is false.
func (p *Pipeline) Apply(i int, raw float64) (value float64, keep bool) {
	if p.enabled&stepMask != 0 && p.opts.Mask[i] {
		return 0, false
	}
	if p.enabled&stepDummy != 0 {
		dummy := *p.opts.Dummy
		delta := 0.0
		if p.opts.DeltaDummy != nil {
			delta = *p.opts.DeltaDummy
		}
		if delta == 0 {
			if raw == dummy {
				return 0, false
			}
		} else if math.Abs(raw-dummy) <= delta {
			return 0, false
		}
	}

	v := raw
	if p.enabled&stepDark != 0 {
		v -= p.opts.Dark[i]
	}
	if p.enabled&stepFlat != 0 {
		v /= p.opts.Flat[i]
	}
	if p.enabled&stepPolarization != 0 {
		v /= p.opts.Polarization[i]
	}
	if p.enabled&stepSolidAngle != 0 {
		v /= p.opts.SolidAngle[i]
	}
	return v, true
}

// ApplyAll corrects every pixel's weight in one pass. It vectorizes the
// dark/flat/polarization/solidangle arithmetic with gonum/floats (each is a
// plain elementwise subtract or divide over the whole slice) and only falls
// back to a per-pixel branch for the mask/dummy skip decision, which is not
// expressible as an elementwise op. values is sized to p.n; the returned
// keep slice is true for pixels that should be accumulated.
func (p *Pipeline) ApplyAll(weights []float64) (values []float64, keep []bool) {
	values = make([]float64, p.n)
	copy(values, weights)

	if p.enabled&stepDark != 0 {
		floats.SubTo(values, values, p.opts.Dark)
	}
	if p.enabled&stepFlat != 0 {
		floats.DivTo(values, values, p.opts.Flat)
	}
	if p.enabled&stepPolarization != 0 {
		floats.DivTo(values, values, p.opts.Polarization)
	}
	if p.enabled&stepSolidAngle != 0 {
		floats.DivTo(values, values, p.opts.SolidAngle)
	}

	keep = make([]bool, p.n)
	for i := range keep {
		keep[i] = true
		if p.enabled&stepMask != 0 && p.opts.Mask[i] {
			keep[i] = false
			continue
		}
		if p.enabled&stepDummy != 0 {
			dummy := *p.opts.Dummy
			delta := 0.0
			if p.opts.DeltaDummy != nil {
				delta = *p.opts.DeltaDummy
			}
			raw := weights[i]
			if delta == 0 {
				if raw == dummy {
					keep[i] = false
				}
			} else if math.Abs(raw-dummy) <= delta {
				keep[i] = false
			}
		}
	}
	return values, keep
}
