package stats

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	goldenAngle   = 137.50776405003785
	colorSat      = 0.65
	colorVal      = 0.95
	hueStartAngle = 20.0
)

// ColorTable returns n colours for a thematic raster with classes 0..n-1.
// Entry 0 is transparent black; every other class gets an opaque HSV colour
// whose hue advances by the golden angle, so neighbouring class numbers are
// far apart in hue. The table is the same on every call.
func ColorTable(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	table := make([]color.RGBA, n)
	for i := 1; i < n; i++ {
		hue := math.Mod(hueStartAngle+float64(i-1)*goldenAngle, 360)
		r, g, b := colorful.Hsv(hue, colorSat, colorVal).RGB255()
		table[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	return table
}
