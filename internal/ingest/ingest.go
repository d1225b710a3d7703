// Package ingest loads detector images, masks, and per-pixel correction
// frames (dark, flat, polarization, solid-angle) from disk into the plain
// float64/bool slices the engine consumes. TIFF support is registered via
// golang.org/x/image/tiff for formats gocv cannot decode directly; gocv
// itself is used for thresholding a loaded mask image into a boolean
// array.
package ingest

import (
	"fmt"
	"image"
	"os"

	_ "golang.org/x/image/tiff"

	"gocv.io/x/gocv"
)

// Frame is a decoded detector image: a flat, row-major array of per-pixel
// values alongside its dimensions.
type Frame struct {
	Width, Height int
	Data          []float64
}

// At returns the value at (x, y).
func (f Frame) At(x, y int) float64 { return f.Data[y*f.Width+x] }

// Len returns the pixel count, Width*Height.
func (f Frame) Len() int { return f.Width * f.Height }

// LoadFrame reads a detector image (TIFF, PNG, or any format gocv/the
// standard decoders understand) and returns its per-pixel intensities as
// float64, preserving 16-bit depth where the source format carries it.
func LoadFrame(path string) (Frame, error) {
	mat := gocv.IMRead(path, gocv.IMReadAnyDepthAnyColor)
	if mat.Empty() {
		return frameFromStdlib(path)
	}
	defer mat.Close()
	return frameFromMat(mat)
}

// frameFromStdlib falls back to the standard image decoders (with the
// blank-imported tiff codec registered above) for formats gocv's IMRead
// does not recognize.
func frameFromStdlib(path string) (Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Frame{}, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Frame{}, fmt.Errorf("ingest: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			data[y*w+x] = float64(gray)
		}
	}
	return Frame{Width: w, Height: h, Data: data}, nil
}

// frameFromMat reads every pixel of a gocv Mat into a Frame. Multi-channel
// inputs are first converted to grayscale (BGR to gray); the single-channel
// result is converted to 64-bit float before its values are read.
func frameFromMat(mat gocv.Mat) (Frame, error) {
	gray := mat
	if mat.Channels() > 1 {
		gray = gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	}

	f64 := gocv.NewMat()
	defer f64.Close()
	gray.ConvertTo(&f64, gocv.MatTypeCV64F)

	h, w := f64.Rows(), f64.Cols()
	data := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = f64.GetDoubleAt(y, x)
		}
	}
	return Frame{Width: w, Height: h, Data: data}, nil
}

// LoadMask reads a mask image and thresholds it into a boolean array: true
// marks a pixel to exclude from integration. Any pixel brighter than zero
// in the source image is treated as masked, following the convention the
// engine's correction pipeline expects.
func LoadMask(path string) ([]bool, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	if mat.Empty() {
		return nil, fmt.Errorf("ingest: could not read mask %s", path)
	}
	defer mat.Close()

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(mat, &binary, 0, 255, gocv.ThresholdBinary)

	h, w := binary.Rows(), binary.Cols()
	out := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = binary.GetUCharAt(y, x) != 0
		}
	}
	return out, nil
}
