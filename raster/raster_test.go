package raster

import (
	"testing"

	"github.com/lenslight/lensd/grid"
)

func at(buf []int, x, y int) int {
	return buf[y*grid.Cols+x]
}

func lit(buf []int) int {
	n := 0
	for _, v := range buf {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestLineEndpoints(t *testing.T) {
	buf := grid.NewFlat()
	Line(buf, 2, 3, 20, 3, 200)

	if at(buf, 2, 3) != 200 {
		t.Errorf("start pixel = %d, want 200", at(buf, 2, 3))
	}
	if at(buf, 20, 3) != 200 {
		t.Errorf("end pixel = %d, want 200", at(buf, 20, 3))
	}
	for x := 2; x <= 20; x++ {
		if at(buf, x, 3) != 200 {
			t.Errorf("pixel (%d, 3) = %d, want 200", x, at(buf, x, 3))
		}
	}
}

func TestLineSinglePoint(t *testing.T) {
	buf := grid.NewFlat()
	Line(buf, 12, 12, 12, 12, 100)

	if at(buf, 12, 12) != 100 {
		t.Errorf("pixel = %d, want 100", at(buf, 12, 12))
	}
	if n := lit(buf); n != 1 {
		t.Errorf("%d pixels lit, want 1", n)
	}
}

func TestLineDiagonal(t *testing.T) {
	buf := grid.NewFlat()
	Line(buf, 0, 0, 24, 24, 255)

	for i := 0; i <= 24; i++ {
		if at(buf, i, i) != 255 {
			t.Errorf("pixel (%d, %d) = %d, want 255", i, i, at(buf, i, i))
		}
	}
}

func TestLineClampsBrightness(t *testing.T) {
	buf := grid.NewFlat()
	Line(buf, 0, 0, 4, 0, 999)

	if at(buf, 0, 0) != 255 {
		t.Errorf("pixel = %d, want clamped 255", at(buf, 0, 0))
	}
}

func TestLineOutOfBoundsSkipped(t *testing.T) {
	buf := grid.NewFlat()
	Line(buf, -10, 12, 34, 12, 255)

	for x := 0; x < grid.Cols; x++ {
		if at(buf, x, 12) != 255 {
			t.Errorf("pixel (%d, 12) = %d, want 255", x, at(buf, x, 12))
		}
	}
	if n := lit(buf); n != grid.Cols {
		t.Errorf("%d pixels lit, want %d", n, grid.Cols)
	}
}

func TestCircleOnAxes(t *testing.T) {
	buf := grid.NewFlat()
	Circle(buf, 12, 12, 5, 180)

	// Degree 0, 90, 180 and 270 samples always land exactly on the axes.
	for _, p := range [][2]int{{17, 12}, {12, 17}, {7, 12}, {12, 7}} {
		if at(buf, p[0], p[1]) != 180 {
			t.Errorf("pixel (%d, %d) = %d, want 180", p[0], p[1], at(buf, p[0], p[1]))
		}
	}
	if at(buf, 12, 12) != 0 {
		t.Error("circle outline lit its own center")
	}
}

func TestCircleZeroRadius(t *testing.T) {
	buf := grid.NewFlat()
	Circle(buf, 12, 12, 0, 255)

	if n := lit(buf); n != 0 {
		t.Errorf("%d pixels lit, want 0", n)
	}
}

func TestDotFillsDisk(t *testing.T) {
	buf := grid.NewFlat()
	Dot(buf, 12, 12, 2, 90)

	// Every cell within Euclidean distance 2 is lit, the corners of the
	// bounding box are not.
	for _, p := range [][2]int{{12, 12}, {10, 12}, {14, 12}, {12, 10}, {12, 14}, {11, 11}} {
		if at(buf, p[0], p[1]) != 90 {
			t.Errorf("pixel (%d, %d) = %d, want 90", p[0], p[1], at(buf, p[0], p[1]))
		}
	}
	for _, p := range [][2]int{{10, 10}, {14, 14}, {10, 14}, {14, 10}} {
		if at(buf, p[0], p[1]) != 0 {
			t.Errorf("corner (%d, %d) = %d, want 0", p[0], p[1], at(buf, p[0], p[1]))
		}
	}
}

func TestDotAtEdge(t *testing.T) {
	buf := grid.NewFlat()
	Dot(buf, 0, 0, 3, 50)

	if at(buf, 0, 0) != 50 {
		t.Errorf("pixel (0, 0) = %d, want 50", at(buf, 0, 0))
	}
	// Nothing outside the buffer was touched; total lit count is the
	// quarter of the disk that fits.
	for _, v := range buf[grid.Cols*5:] {
		if v != 0 {
			t.Error("dot leaked past its bounding rows")
			break
		}
	}
}

func TestFill(t *testing.T) {
	buf := grid.NewFlat()
	Fill(buf, 300)

	for i, v := range buf {
		if v != 255 {
			t.Fatalf("cell %d = %d, want clamped 255", i, v)
		}
	}
}

func TestOverwriteSemantics(t *testing.T) {
	buf := grid.NewFlat()
	Line(buf, 0, 12, 24, 12, 100)
	Line(buf, 12, 0, 12, 24, 200)

	if at(buf, 12, 12) != 200 {
		t.Errorf("crossing pixel = %d, want last write 200", at(buf, 12, 12))
	}
}
