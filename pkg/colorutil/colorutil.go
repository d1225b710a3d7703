// Package colorutil provides shared color conversion helpers.
package colorutil

import (
	"image/color"
	"math"
)

// Heatmap maps a normalized intensity t (0-1, clamped) to a blue-to-red
// false-color scale by sweeping hue from 240 (blue) down to 0 (red) at full
// saturation and value, reusing HSVToRGB below for the conversion.
func Heatmap(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	hue := 240 * (1 - t)
	r, g, b := HSVToRGB(hue, 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HSVToRGB converts HSV (H 0-360, S 0-1, V 0-1) to RGB (0-255 each).
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return uint8((rf + m) * 255), uint8((gf + m) * 255), uint8((bf + m) * 255)
}
