package grid

import "fmt"

// ShapeMismatchError reports a shaped grid that does not match the shape
// table. Row is -1 when the grid has the wrong number of rows.
type ShapeMismatchError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("shaped grid has %d rows, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("row %d has %d pixels, want %d", e.Row, e.Got, e.Want)
}

// SizeMismatchError reports a flat buffer of the wrong length.
type SizeMismatchError struct {
	Got int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("flat buffer has %d cells, want %d", e.Got, FlatLen)
}

// ParseError reports a pixel string that could not be parsed. Index is -1
// when the string has the wrong number of tokens; otherwise it is the
// position of the offending token.
type ParseError struct {
	Index int
	Token string
	Count int
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("pixel string has %d tokens, want %d", e.Count, FlatLen)
	}
	return fmt.Sprintf("pixel string token %d is not an integer: %q", e.Index, e.Token)
}

// RangeError reports a row index outside the display.
type RangeError struct {
	Row int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("row %d out of range [0, %d)", e.Row, Rows)
}
