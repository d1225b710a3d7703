// Package plotwindow renders integration results in a minimal fyne viewer:
// a line plot for 1D results, a false-color raster for 2D results.
package plotwindow

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"azimint"
	"azimint/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Show1D opens a window plotting a Result1D as a simple line graph over its
// bin range and blocks until the window is closed.
func Show1D(title string, res azimint.Result1D) {
	a := app.New()
	w := a.NewWindow(title)

	raster := fynecanvas.NewRaster(func(width, height int) image.Image {
		return renderLine(res, width, height)
	})
	raster.SetMinSize(fyne.NewSize(640, 360))

	status := widget.NewLabel(fmt.Sprintf("%d bins, pos0 [%.4g, %.4g]",
		len(res.OutPos), res.OutPos[0], res.OutPos[len(res.OutPos)-1]))

	w.SetContent(container.NewBorder(nil, status, nil, nil, raster))
	w.Resize(fyne.NewSize(640, 400))
	w.ShowAndRun()
}

// Show2D opens a window rendering a Result2D as a false-color raster and
// blocks until the window is closed.
func Show2D(title string, res azimint.Result2D) {
	a := app.New()
	w := a.NewWindow(title)

	raster := fynecanvas.NewRaster(func(width, height int) image.Image {
		return renderHeatmap(res, width, height)
	})
	raster.SetMinSize(fyne.NewSize(640, 480))

	status := widget.NewLabel(fmt.Sprintf("%d x %d bins", res.Bins0, res.Bins1))

	w.SetContent(container.NewBorder(nil, status, nil, nil, raster))
	w.Resize(fyne.NewSize(640, 520))
	w.ShowAndRun()
}

// renderLine rasterizes OutMerge as a simple polyline against a black
// background, following the canvas draw-into-*image.RGBA pattern used
// throughout this codebase's fyne widgets.
func renderLine(res azimint.Result1D, width, height int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw(out, width, height, color.Black)

	n := len(res.OutMerge)
	if n == 0 || width <= 0 || height <= 0 {
		return out
	}

	lo, hi := minMax(res.OutMerge)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	toPx := func(k int) (x, y int) {
		x = k * (width - 1) / max(n-1, 1)
		frac := (res.OutMerge[k] - lo) / span
		y = height - 1 - int(frac*float64(height-1))
		return
	}

	prevX, prevY := toPx(0)
	lineColor := color.RGBA{R: 80, G: 220, B: 255, A: 255}
	for k := 1; k < n; k++ {
		x, y := toPx(k)
		drawLine(out, prevX, prevY, x, y, lineColor)
		prevX, prevY = x, y
	}
	return out
}

// renderHeatmap maps each output pixel to the nearest (bin0, bin1) cell and
// colors it via colorutil.Heatmap, normalized against the result's own
// min/max.
func renderHeatmap(res azimint.Result2D, width, height int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	if res.Bins0 == 0 || res.Bins1 == 0 || width <= 0 || height <= 0 {
		return out
	}
	lo, hi := minMax(res.OutMerge)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for y := 0; y < height; y++ {
		bin0 := y * res.Bins0 / height
		for x := 0; x < width; x++ {
			bin1 := x * res.Bins1 / width
			v := res.At(bin0, bin1)
			out.Set(x, y, colorutil.Heatmap((v-lo)/span))
		}
	}
	return out
}

func draw(img *image.RGBA, w, h int, c color.Color) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
}

// drawLine is a basic Bresenham rasterizer; the plots here never need
// anything richer.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
