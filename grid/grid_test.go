package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShapeTable(t *testing.T) {
	for r := 0; r < Rows; r++ {
		width, err := RowWidth(r)
		if err != nil {
			t.Fatalf("RowWidth(%d): %v", r, err)
		}
		if width < 7 || width > Cols {
			t.Errorf("row %d width %d outside [7, %d]", r, width, Cols)
		}

		offset, err := RowOffset(r)
		if err != nil {
			t.Fatalf("RowOffset(%d): %v", r, err)
		}
		if want := (Cols - width) / 2; offset != want {
			t.Errorf("row %d offset = %d, want %d", r, offset, want)
		}
		if offset+width > Cols {
			t.Errorf("row %d spills over: offset %d + width %d > %d", r, offset, width, Cols)
		}
	}
}

func TestRowAccessorsRange(t *testing.T) {
	for _, r := range []int{-1, Rows, 100} {
		var rangeErr *RangeError
		if _, err := RowWidth(r); !errors.As(err, &rangeErr) {
			t.Errorf("RowWidth(%d) = %v, want RangeError", r, err)
		}
		if _, err := RowOffset(r); !errors.As(err, &rangeErr) {
			t.Errorf("RowOffset(%d) = %v, want RangeError", r, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	shaped := NewShaped()
	for r, row := range shaped {
		for c := range row {
			row[c] = (r*31 + c*7) % 256
		}
	}

	flat, err := ShapedToFlat(shaped)
	if err != nil {
		t.Fatal("ShapedToFlat:", err)
	}
	if len(flat) != FlatLen {
		t.Fatalf("flat buffer has %d cells, want %d", len(flat), FlatLen)
	}

	back, err := FlatToShaped(flat)
	if err != nil {
		t.Fatal("FlatToShaped:", err)
	}
	if diff := cmp.Diff(shaped, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestShapedToFlatCenters(t *testing.T) {
	shaped := NewShaped()
	shaped[0][0] = 200

	flat, err := ShapedToFlat(shaped)
	if err != nil {
		t.Fatal("ShapedToFlat:", err)
	}

	offset := (Cols - Widths[0]) / 2
	if flat[offset] != 200 {
		t.Errorf("flat[%d] = %d, want 200", offset, flat[offset])
	}
	for c := 0; c < offset; c++ {
		if flat[c] != 0 {
			t.Errorf("cell %d outside row span is %d, want 0", c, flat[c])
		}
	}
}

func TestShapedToFlatMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(shaped [][]int) [][]int
	}{
		{
			name:   "too few rows",
			mutate: func(s [][]int) [][]int { return s[:Rows-1] },
		},
		{
			name:   "too many rows",
			mutate: func(s [][]int) [][]int { return append(s, []int{}) },
		},
		{
			name: "short row",
			mutate: func(s [][]int) [][]int {
				s[3] = s[3][:len(s[3])-1]
				return s
			},
		},
		{
			name: "long row",
			mutate: func(s [][]int) [][]int {
				s[3] = append(s[3], 0)
				return s
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var shapeErr *ShapeMismatchError
			_, err := ShapedToFlat(test.mutate(NewShaped()))
			if !errors.As(err, &shapeErr) {
				t.Errorf("got %v, want ShapeMismatchError", err)
			}
		})
	}
}

func TestFlatToShapedSize(t *testing.T) {
	var sizeErr *SizeMismatchError
	if _, err := FlatToShaped(make([]int, FlatLen-1)); !errors.As(err, &sizeErr) {
		t.Errorf("got %v, want SizeMismatchError", err)
	}
	if _, err := FlatToShaped(make([]int, FlatLen+1)); !errors.As(err, &sizeErr) {
		t.Errorf("got %v, want SizeMismatchError", err)
	}
}

func TestClampBrightness(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, test := range tests {
		if got := ClampBrightness(test.in); got != test.want {
			t.Errorf("ClampBrightness(%d) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestPixelStringRoundTrip(t *testing.T) {
	flat := NewFlat()
	for i := range flat {
		flat[i] = i % 256
	}

	s, err := FormatPixelString(flat)
	if err != nil {
		t.Fatal("FormatPixelString:", err)
	}
	if strings.HasSuffix(s, ",") {
		t.Error("pixel string has a trailing separator")
	}

	back, err := ParsePixelString(s)
	if err != nil {
		t.Fatal("ParsePixelString:", err)
	}
	if diff := cmp.Diff(flat, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePixelStringRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "624 tokens",
			input: strings.TrimSuffix(strings.Repeat("0,", FlatLen-1), ","),
		},
		{
			name:  "626 tokens",
			input: strings.TrimSuffix(strings.Repeat("0,", FlatLen+1), ","),
		},
		{
			name:  "non-numeric token",
			input: "x," + strings.TrimSuffix(strings.Repeat("0,", FlatLen-1), ","),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var parseErr *ParseError
			_, err := ParsePixelString(test.input)
			if !errors.As(err, &parseErr) {
				t.Errorf("got %v, want ParseError", err)
			}
		})
	}
}

func TestParsePixelStringTrimsSpace(t *testing.T) {
	tokens := make([]string, FlatLen)
	for i := range tokens {
		tokens[i] = " 7 "
	}

	flat, err := ParsePixelString(strings.Join(tokens, ","))
	if err != nil {
		t.Fatal("ParsePixelString:", err)
	}
	if flat[0] != 7 || flat[FlatLen-1] != 7 {
		t.Errorf("parsed values = %d, %d, want 7", flat[0], flat[FlatLen-1])
	}
}

func TestFormatPixelStringSize(t *testing.T) {
	var sizeErr *SizeMismatchError
	if _, err := FormatPixelString(make([]int, 10)); !errors.As(err, &sizeErr) {
		t.Errorf("got %v, want SizeMismatchError", err)
	}
}
