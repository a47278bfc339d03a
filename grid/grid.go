// Package grid defines the shape of the lens display and converts between
// its two pixel representations: the shaped grid, which holds only the
// physically real pixels of each row, and the flat buffer, the fixed 25x25
// row-major array that the display driver consumes. Rows are centered in the
// flat buffer; cells outside a row's real span are always zero.
package grid

import (
	"strconv"
	"strings"
)

const (
	// Rows and Cols are the logical dimensions of the flat buffer.
	Rows = 25
	Cols = 25
	// FlatLen is the total cell count of a flat buffer.
	FlatLen = Rows * Cols

	// MaxBrightness is the largest value a cell may hold.
	MaxBrightness = 255
)

// Widths is the shape table: the number of real pixels in each display row.
// The display is lens-shaped, widening from 7 pixels at the top to the full
// 25 in the middle band and narrowing back down. Fixed at compile time.
var Widths = [Rows]int{
	7, 9, 11, 13, 15, 17, 19, 21, 23, 25,
	25, 25, 25, 25, 25,
	25, 23, 21, 19, 17, 15, 13, 11, 9, 7,
}

// RowWidth returns the number of real pixels in row r.
func RowWidth(r int) (int, error) {
	if r < 0 || r >= Rows {
		return 0, &RangeError{Row: r}
	}
	return Widths[r], nil
}

// RowOffset returns the column at which row r's real pixels begin once the
// row is centered in the flat buffer.
func RowOffset(r int) (int, error) {
	if r < 0 || r >= Rows {
		return 0, &RangeError{Row: r}
	}
	return (Cols - Widths[r]) / 2, nil
}

// NewFlat returns a zeroed flat buffer.
func NewFlat() []int {
	return make([]int, FlatLen)
}

// NewShaped returns a zeroed shaped grid matching the shape table.
func NewShaped() [][]int {
	shaped := make([][]int, Rows)
	for r := range shaped {
		shaped[r] = make([]int, Widths[r])
	}
	return shaped
}

// ShapedToFlat embeds a shaped grid into a flat buffer, centering each row.
// The grid must have exactly Rows rows and each row must match the shape
// table; otherwise a ShapeMismatchError is returned and nothing is written.
func ShapedToFlat(shaped [][]int) ([]int, error) {
	if len(shaped) != Rows {
		return nil, &ShapeMismatchError{Row: -1, Want: Rows, Got: len(shaped)}
	}
	for r, row := range shaped {
		if len(row) != Widths[r] {
			return nil, &ShapeMismatchError{Row: r, Want: Widths[r], Got: len(row)}
		}
	}

	flat := NewFlat()
	for r, row := range shaped {
		offset := (Cols - Widths[r]) / 2
		for c, v := range row {
			flat[r*Cols+offset+c] = v
		}
	}
	return flat, nil
}

// FlatToShaped extracts the real pixels of each row from a flat buffer.
func FlatToShaped(flat []int) ([][]int, error) {
	if len(flat) != FlatLen {
		return nil, &SizeMismatchError{Got: len(flat)}
	}

	shaped := make([][]int, Rows)
	for r := range shaped {
		offset := (Cols - Widths[r]) / 2
		row := make([]int, Widths[r])
		copy(row, flat[r*Cols+offset:r*Cols+offset+Widths[r]])
		shaped[r] = row
	}
	return shaped, nil
}

// ClampBrightness clamps v into [0, MaxBrightness].
func ClampBrightness(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxBrightness {
		return MaxBrightness
	}
	return v
}

// ParsePixelString parses the comma-separated text form of a flat buffer.
// Exactly FlatLen integer tokens are required.
func ParsePixelString(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	if len(tokens) != FlatLen {
		return nil, &ParseError{Index: -1, Count: len(tokens)}
	}

	flat := make([]int, FlatLen)
	for i, token := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, &ParseError{Index: i, Token: token, Count: len(tokens)}
		}
		flat[i] = v
	}
	return flat, nil
}

// FormatPixelString renders a flat buffer as its comma-separated text form.
func FormatPixelString(flat []int) (string, error) {
	if len(flat) != FlatLen {
		return "", &SizeMismatchError{Got: len(flat)}
	}

	var sb strings.Builder
	sb.Grow(FlatLen * 4)
	for i, v := range flat {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String(), nil
}
