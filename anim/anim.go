// Package anim generates animation frame sequences for the lens display.
// Every generator is a pure function of its parameters: calling it again
// with the same arguments produces an identical sequence, and each frame is
// an independent buffer with no state shared between frames.
package anim

import (
	"fmt"
	"math"

	"github.com/lenslight/lensd/grid"
	"github.com/lenslight/lensd/raster"
)

// Default parameters shared by the generators.
const (
	DefaultBrightness = 255
	DefaultLineLength = 8
	DefaultMaxRadius  = 10
	DefaultAmplitude  = 5
	DefaultWavelength = 2.0
)

const (
	centerX = grid.Cols / 2
	centerY = grid.Rows / 2
)

// RotatingLine generates frameCount frames of a line sweeping a full turn
// around the display center, one equal angle step per frame starting at 0
// degrees. A radius-1 dot marks the center, drawn after the line.
func RotatingLine(frameCount, lineLength, brightness int) [][]int {
	frames := make([][]int, frameCount)
	for f := range frames {
		buf := grid.NewFlat()

		rad := float64(f) * 2 * math.Pi / float64(frameCount)
		x2 := centerX + int(math.Round(math.Cos(rad)*float64(lineLength)))
		y2 := centerY + int(math.Round(math.Sin(rad)*float64(lineLength)))

		raster.Line(buf, centerX, centerY, x2, y2, brightness)
		raster.Dot(buf, centerX, centerY, 1, brightness)

		frames[f] = buf
	}
	return frames
}

// Pulse generates a circle growing out of the center and collapsing back,
// radius following half a sine period over the sequence. Frames where the
// radius rounds to zero draw no circle; the center dot is always present.
func Pulse(frameCount, maxRadius, brightness int) [][]int {
	frames := make([][]int, frameCount)
	for f := range frames {
		buf := grid.NewFlat()

		progress := float64(f) / float64(frameCount)
		radius := int(math.Round(math.Sin(progress*math.Pi) * float64(maxRadius)))
		if radius > 0 {
			raster.Circle(buf, centerX, centerY, radius, brightness)
		}
		raster.Dot(buf, centerX, centerY, 1, brightness)

		frames[f] = buf
	}
	return frames
}

// Wave generates a sine wave travelling across the display, one lit pixel
// per column, phase advancing one full period over the sequence.
func Wave(frameCount, amplitude, brightness int) [][]int {
	brightness = grid.ClampBrightness(brightness)

	frames := make([][]int, frameCount)
	for f := range frames {
		buf := grid.NewFlat()

		phase := float64(f) * 2 * math.Pi / float64(frameCount)
		for x := 0; x < grid.Cols; x++ {
			y := centerY + int(math.Round(math.Sin(float64(x)*0.5+phase)*float64(amplitude)))
			if y >= 0 && y < grid.Rows {
				buf[y*grid.Cols+x] = brightness
			}
		}

		frames[f] = buf
	}
	return frames
}

// HorizontalWave generates a thickness-1 horizontal sine wave using
// DrawHorizontalWave for each frame.
func HorizontalWave(frameCount, amplitude, brightness int, wavelength float64) [][]int {
	frames := make([][]int, frameCount)
	for f := range frames {
		buf := grid.NewFlat()
		DrawHorizontalWave(buf, f, frameCount, amplitude, brightness, wavelength, 1)
		frames[f] = buf
	}
	return frames
}

// DrawHorizontalWave draws one frame of a horizontal sine wave into buf.
// Amplitude is clamped to [1, 8] and thickness to [1, 3]. Thicker waves
// stack rows above and below the wave line, attenuating brightness by up to
// 40% toward the outer rows; rows are written in ascending offset order, so
// a lower row wins where two offsets land on the same cell.
func DrawHorizontalWave(buf []int, frameIndex, frameCount, amplitude, brightness int, wavelength float64, thickness int) {
	amplitude = clampInt(amplitude, 1, 8)
	thickness = clampInt(thickness, 1, 3)

	phase := 0.0
	if frameCount > 1 {
		phase = float64(frameIndex) * 2 * math.Pi / float64(frameCount)
	}

	half := thickness / 2
	for offset := -half; offset <= half; offset++ {
		attenuation := 1 - float64(absInt(offset))/float64(maxInt(half, 1))*0.4
		b := grid.ClampBrightness(int(math.Round(float64(brightness) * attenuation)))

		for x := 0; x < grid.Cols; x++ {
			y := centerY + int(math.Round(math.Sin(float64(x)*wavelength*math.Pi/float64(grid.Cols)+phase)*float64(amplitude)))
			y += offset
			if y >= 0 && y < grid.Rows {
				buf[y*grid.Cols+x] = b
			}
		}
	}
}

// Sequence generates the named animation with default shape parameters.
// Names: "rotating-line", "pulse", "wave", "horizontal-wave".
func Sequence(name string, frameCount, brightness int) ([][]int, error) {
	if frameCount < 1 {
		return nil, fmt.Errorf("invalid frame count: %d", frameCount)
	}

	switch name {
	case "rotating-line":
		return RotatingLine(frameCount, DefaultLineLength, brightness), nil
	case "pulse":
		return Pulse(frameCount, DefaultMaxRadius, brightness), nil
	case "wave":
		return Wave(frameCount, DefaultAmplitude, brightness), nil
	case "horizontal-wave":
		return HorizontalWave(frameCount, DefaultAmplitude, brightness, DefaultWavelength), nil
	default:
		return nil, fmt.Errorf("unknown animation: %q", name)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
