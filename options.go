// Package azimint implements the core of an azimuthal integration engine
// for X-ray powder diffraction: given per-pixel detector intensity and
// per-pixel quadrilateral corners in (pos0, pos1) angular space, it
// distributes each pixel's intensity across 1D or 2D output bins in
// proportion to the geometric overlap between the pixel and each bin.
package azimint

// Corner is one vertex of a pixel's footprint, in angular units (radial
// pos0, azimuthal pos1).
type Corner struct {
	Pos0, Pos1 float64
}

// Quad is the four-corner footprint of one detector pixel, in the order
// supplied by the external geometry layer (A, B, C, D). Orientation does
// not affect the result.
type Quad [4]Corner

// Options holds every optional input to Integrate1D/Integrate2D. Every
// field's zero value (nil pointer or nil slice) means that input is
// absent; this makes presence/absence an explicit part of the type instead
// of relying on sentinel values.
type Options struct {
	// Pos0Range overrides the radial output range; nil derives it from
	// the min/max of pos.
	Pos0Range *[2]float64

	// Pos1Range overrides the azimuthal range. In Integrate1D it filters
	// out pixels whose raw pos1 corners fall outside it; in Integrate2D
	// it defines the azimuthal output axis when set, and is derived from
	// the data when nil.
	Pos1Range *[2]float64

	// Dummy is the sentinel intensity value; pixels matching it (within
	// DeltaDummy) are skipped, and empty output bins are filled with it.
	Dummy *float64

	// DeltaDummy is the tolerance for the Dummy match. A nil or zero
	// value requires an exact match.
	DeltaDummy *float64

	// Mask flags pixels to skip outright when true.
	Mask []bool

	// Dark, Flat, Polarization, SolidAngle are independently optional
	// per-pixel correction arrays, applied in that order after the
	// mask/dummy skip decision: I <- (I - Dark) / (Flat * Polarization *
	// SolidAngle).
	Dark, Flat, Polarization, SolidAngle []float64

	// Workers selects chunked parallel accumulation when > 1. The
	// default (0 or 1) is the single-threaded, pixel-index-ascending
	// reference ordering; Workers > 1 trades bit-identical reproduction
	// for wall-clock time, matching the reference within a few ULPs per
	// bin.
	Workers int
}

// Result1D is the output of Integrate1D.
type Result1D struct {
	OutPos   []float64 // bin centers, length bins
	OutMerge []float64 // normalized intensity per bin
	OutData  []float64 // weighted sum sum(I*w) per bin
	OutCount []float64 // weight sum sum(w) per bin
}

// Result2D is the output of Integrate2D. OutMerge/OutData/OutCount are flat,
// row-major over (bin0, bin1): index = bin0*Bins1 + bin1.
type Result2D struct {
	OutMerge []float64
	OutData  []float64
	OutCount []float64
	Edges0   []float64
	Edges1   []float64
	Bins0    int
	Bins1    int
}

// At returns OutMerge[bin0][bin1].
func (r Result2D) At(bin0, bin1 int) float64 {
	return r.OutMerge[bin0*r.Bins1+bin1]
}
