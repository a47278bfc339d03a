package lensd

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lenslight/lensd/anim"
	"github.com/lenslight/lensd/grid"
)

func TestPlayFrames(t *testing.T) {
	ctrl := newMemController()
	frames := anim.Pulse(4, 10, 255)

	// High frame rate keeps the test fast; correctness doesn't depend on
	// the tick interval.
	if err := PlayFrames(context.Background(), ctrl, frames, 1000); err != nil {
		t.Fatal("PlayFrames:", err)
	}

	if diff := cmp.Diff(frames[len(frames)-1], ctrl.Frame()); diff != "" {
		t.Errorf("controller not left on the last frame (-want +got):\n%s", diff)
	}
}

func TestPlayFramesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := newMemController()
	err := PlayFrames(ctx, ctrl, anim.Wave(8, 5, 255), 1000)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestPlayFramesControllerError(t *testing.T) {
	ctrl := newMemController()
	frames := [][]int{grid.NewFlat(), make([]int, 3)}

	err := PlayFrames(context.Background(), ctrl, frames, 1000)
	var sizeErr *grid.SizeMismatchError
	if !errors.As(err, &sizeErr) {
		t.Errorf("got %v, want wrapped SizeMismatchError", err)
	}
}
