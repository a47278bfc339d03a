package lensd

import (
	"context"
	"fmt"
	"time"
)

// PlayFrames writes a frame sequence to the controller, one frame per tick
// at the given frame rate. It returns once the last frame has been shown, or
// earlier if the context is cancelled or the controller rejects a frame.
func PlayFrames(ctx context.Context, ctrl DisplayController, frames [][]int, frameRate int) error {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	for i, frame := range frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := ctrl.SetFrame(frame); err != nil {
			return fmt.Errorf("failed to set frame %d: %w", i, err)
		}
	}
	return nil
}
