// Package raster draws primitive shapes into a flat display buffer. All
// primitives mutate the buffer in place, clamp their brightness before
// writing, and silently skip points that fall outside the 25x25 grid.
// Later writes to a cell overwrite earlier ones; there is no blending.
package raster

import (
	"math"

	"github.com/lenslight/lensd/grid"
)

func set(buf []int, x, y, brightness int) {
	if x < 0 || x >= grid.Cols || y < 0 || y >= grid.Rows {
		return
	}
	buf[y*grid.Cols+x] = brightness
}

// Line draws a straight line from (x1, y1) to (x2, y2) by parametric
// sampling: one sample per unit of the longer axis, each rounded to the
// nearest cell. Rounding may land consecutive samples on the same cell.
func Line(buf []int, x1, y1, x2, y2, brightness int) {
	brightness = grid.ClampBrightness(brightness)

	steps := max(abs(x2-x1), abs(y2-y1), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x1) + float64(x2-x1)*t))
		y := int(math.Round(float64(y1) + float64(y2-y1)*t))
		set(buf, x, y, brightness)
	}
}

// Circle draws a circle outline of the given radius around (cx, cy),
// sampling at integer-degree steps of 360/(radius*8). Small radii sample
// coarsely and can leave visible gaps; the display has always rendered
// circles this way, so the quantization is kept as is.
func Circle(buf []int, cx, cy, radius, brightness int) {
	if radius <= 0 {
		return
	}
	brightness = grid.ClampBrightness(brightness)

	step := 360 / (radius * 8)
	if step < 1 {
		step = 1
	}
	for deg := 0; deg < 360; deg += step {
		rad := float64(deg) * math.Pi / 180
		x := cx + int(math.Round(math.Cos(rad)*float64(radius)))
		y := cy + int(math.Round(math.Sin(rad)*float64(radius)))
		set(buf, x, y, brightness)
	}
}

// Dot draws a filled disk of the given radius around (cx, cy).
func Dot(buf []int, cx, cy, radius, brightness int) {
	brightness = grid.ClampBrightness(brightness)

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if math.Sqrt(dx*dx+dy*dy) <= float64(radius) {
				set(buf, x, y, brightness)
			}
		}
	}
}

// Fill sets every cell of the buffer to the clamped brightness.
func Fill(buf []int, brightness int) {
	brightness = grid.ClampBrightness(brightness)
	for i := range buf {
		buf[i] = brightness
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
