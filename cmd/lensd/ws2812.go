package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lenslight/lensd"
	"github.com/lenslight/lensd/grid"
	"libdb.so/ledctl"
)

// RGBController is a controller for RGB LEDs.
type RGBController interface {
	SetRGBAt(i int, color ledctl.RGB)
	Flush() error
}

// ledCount returns the number of physical LEDs on the display: the sum of
// the shape table, not the full 25x25 grid.
func ledCount() int {
	n := 0
	for _, w := range grid.Widths {
		n += w
	}
	return n
}

// ledIndex maps a real pixel (row r, column c within the row) to its index
// on the LED strip. Rows are wired serpentine: even rows run left to right,
// odd rows right to left.
func ledIndex(r, c int) int {
	base := 0
	for i := 0; i < r; i++ {
		base += grid.Widths[i]
	}
	if r%2 == 1 {
		return base + grid.Widths[r] - 1 - c
	}
	return base + c
}

type ledController struct {
	logger *slog.Logger

	drawCh chan struct{}
	ctrl   RGBController
	ctrlMu sync.Mutex
	frame  []int

	cfg ledControlConfig
}

var _ lensd.DisplayController = (*ledController)(nil)

type ledControlConfig struct {
	Controller RGBController
	FrameRate  int

	Logger *slog.Logger
}

func newLEDController(cfg ledControlConfig) *ledController {
	return &ledController{
		logger: cfg.Logger,
		drawCh: make(chan struct{}, 1),
		ctrl:   cfg.Controller,
		frame:  grid.NewFlat(),
		cfg:    cfg,
	}
}

func (c *ledController) start(ctx context.Context) {
	drawCh := c.drawCh

	frameTicker := time.NewTicker(time.Second / time.Duration(c.cfg.FrameRate))
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-frameTicker.C:
			drawCh = c.drawCh
			continue
		case <-drawCh:
			drawCh = nil
		}

		c.ctrlMu.Lock()
		if err := c.ctrl.Flush(); err != nil {
			c.logger.Error(
				"error writing LED strip",
				"error", err)
		}
		c.ctrlMu.Unlock()
	}
}

func (c *ledController) Frame() []int {
	c.ctrlMu.Lock()
	defer c.ctrlMu.Unlock()

	frame := grid.NewFlat()
	copy(frame, c.frame)
	return frame
}

func (c *ledController) SetFrame(frame []int) error {
	if len(frame) != grid.FlatLen {
		return &grid.SizeMismatchError{Got: len(frame)}
	}

	c.ctrlMu.Lock()
	defer c.ctrlMu.Unlock()

	copy(c.frame, frame)

	// Push only the real pixels of each row to the strip; the inert cells
	// of the flat buffer have no LED behind them.
	for r := 0; r < grid.Rows; r++ {
		offset := (grid.Cols - grid.Widths[r]) / 2
		for col := 0; col < grid.Widths[r]; col++ {
			v := uint8(grid.ClampBrightness(frame[r*grid.Cols+offset+col]))
			c.ctrl.SetRGBAt(ledIndex(r, col), ledctl.RGB{R: v, G: v, B: v})
		}
	}

	c.queueDraw()
	return nil
}

func (c *ledController) queueDraw() {
	select {
	case c.drawCh <- struct{}{}:
	default:
	}
}
