package anim

import (
	"testing"

	"github.com/lenslight/lensd/grid"
)

func rowLit(buf []int, y int) bool {
	for x := 0; x < grid.Cols; x++ {
		if buf[y*grid.Cols+x] != 0 {
			return true
		}
	}
	return false
}

func TestAudioSpectrumSkipsQuietBand(t *testing.T) {
	buf := grid.NewFlat()
	DrawAudioSpectrumWaves(buf, 0.02, 0.5, 0.5, 0, 1, 255)

	// At phase 0 and x = 0 the sine term is zero, so each drawn band hits
	// its baseline row exactly.
	if at(buf, 0, MidRow) == 0 {
		t.Error("mid band not drawn at its baseline row")
	}
	if at(buf, 0, TrebleRow) == 0 {
		t.Error("treble band not drawn at its baseline row")
	}
	if at(buf, 0, BassRow) != 0 {
		t.Error("bass band drawn despite level below threshold")
	}
}

func TestAudioSpectrumBandBrightness(t *testing.T) {
	buf := grid.NewFlat()
	DrawAudioSpectrumWaves(buf, 0, 0.5, 0.5, 0, 1, 255)

	// brightness = maxBrightness * level * scale, scale 0.8 mid, 0.7 treble.
	if got := at(buf, 0, MidRow); got != 102 {
		t.Errorf("mid band brightness = %d, want 102", got)
	}
	if got := at(buf, 0, TrebleRow); got != 89 {
		t.Errorf("treble band brightness = %d, want 89", got)
	}
}

func TestAudioSpectrumAllQuiet(t *testing.T) {
	buf := grid.NewFlat()
	DrawAudioSpectrumWaves(buf, 0.05, 0.05, 0.0, 0, 1, 255)

	if n := lit(buf); n != 0 {
		t.Errorf("%d pixels lit, want 0 for levels at or below the threshold", n)
	}
}

func TestAudioSpectrumFullLevels(t *testing.T) {
	buf := grid.NewFlat()
	DrawAudioSpectrumWaves(buf, 1.0, 1.0, 1.0, 0, 1, 255)

	for _, row := range []int{BassRow, MidRow, TrebleRow} {
		if !rowLit(buf, row) {
			t.Errorf("row %d has no lit pixels at full level", row)
		}
	}
	// Full-level bass swings 6 rows below its baseline.
	if !rowLit(buf, BassRow+6) {
		t.Error("bass band never reaches its full amplitude")
	}
}

func TestAudioSpectrumDeterministic(t *testing.T) {
	a := grid.NewFlat()
	b := grid.NewFlat()
	DrawAudioSpectrumWaves(a, 0.8, 0.4, 0.6, 3, 16, 255)
	DrawAudioSpectrumWaves(b, 0.8, 0.4, 0.6, 3, 16, 255)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical calls: %d vs %d", i, a[i], b[i])
		}
	}
}
