package anim

import (
	"math"

	"github.com/lenslight/lensd/grid"
)

// Baseline rows of the three spectrum bands.
const (
	BassRow   = 18
	MidRow    = 12
	TrebleRow = 6
)

const levelThreshold = 0.05

type spectrumBand struct {
	row       int
	amplitude int // amplitude per unit level, also the amplitude cap
	scale     float64
}

// Bass sits lowest with the tallest swing; treble highest with the smallest.
// Drawn in this order, so treble wins where bands cross.
var spectrumBands = [3]spectrumBand{
	{row: BassRow, amplitude: 6, scale: 0.9},
	{row: MidRow, amplitude: 4, scale: 0.8},
	{row: TrebleRow, amplitude: 3, scale: 0.7},
}

// DrawAudioSpectrumWaves draws up to three sine bands into buf, one per
// frequency band, each scaled by its level in [0, 1]. Bands with a level at
// or below 0.05 are skipped. All bands share the frame phase.
func DrawAudioSpectrumWaves(buf []int, bassLevel, midLevel, trebleLevel float64, frameIndex, frameCount, maxBrightness int) {
	phase := 0.0
	if frameCount > 1 {
		phase = float64(frameIndex) * 2 * math.Pi / float64(frameCount)
	}

	levels := [3]float64{bassLevel, midLevel, trebleLevel}
	for i, band := range spectrumBands {
		level := levels[i]
		if level <= levelThreshold {
			continue
		}

		amplitude := clampInt(int(math.Round(level*float64(band.amplitude))), 1, band.amplitude)
		brightness := grid.ClampBrightness(int(math.Round(float64(maxBrightness) * level * band.scale)))

		for x := 0; x < grid.Cols; x++ {
			y := band.row + int(math.Round(math.Sin(float64(x)*0.5+phase)*float64(amplitude)))
			if y >= 0 && y < grid.Rows {
				buf[y*grid.Cols+x] = brightness
			}
		}
	}
}
