package lensd

// DisplayController is a controller for the display.
type DisplayController interface {
	// Frame returns the currently displayed flat buffer.
	Frame() []int
	// SetFrame replaces the displayed frame with the given flat buffer.
	SetFrame(frame []int) error
}
