package lensd

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/gobwas/ws/wsutil"
	"github.com/google/go-cmp/cmp"
	"github.com/lenslight/lensd/grid"
	"github.com/lenslight/lensd/lensdpb"
	"github.com/neilotoole/slogt"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestSession(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		play   func(t *testing.T, conn io.ReadWriteCloser)
	}{
		{
			name: "invalid secret",
			play: func(t *testing.T, conn io.ReadWriteCloser) {
				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_Authenticate{
						Authenticate: &lensdpb.AuthenticateRequest{
							Secret: "wrong",
						},
					},
				})

				assertMessage(t, conn, &lensdpb.DisplayServerMessage{
					Message: &lensdpb.DisplayServerMessage_Authenticate{
						Authenticate: &lensdpb.AuthenticateResponse{
							Success: false,
						},
					},
				})

				assertMessage(t, conn, &lensdpb.DisplayServerMessage{
					Error: proto.String("invalid secret"),
				})

				expectCloseFrame(t, conn)
			},
			config: Config{
				Secret: "test",
			},
		},
		{
			name: "valid secret",
			play: func(t *testing.T, conn io.ReadWriteCloser) {
				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_Authenticate{
						Authenticate: &lensdpb.AuthenticateRequest{
							Secret: "test",
						},
					},
				})

				assertMessage(t, conn, &lensdpb.DisplayServerMessage{
					Message: &lensdpb.DisplayServerMessage_Authenticate{
						Authenticate: &lensdpb.AuthenticateResponse{
							Success: true,
						},
					},
				})
			},
			config: Config{
				Secret: "test",
			},
		},
		{
			name: "unauthenticated request",
			play: func(t *testing.T, conn io.ReadWriteCloser) {
				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_GetFrame{
						GetFrame: &lensdpb.GetFrameRequest{},
					},
				})

				assertMessage(t, conn, &lensdpb.DisplayServerMessage{
					Error: proto.String("not authenticated"),
				})

				expectCloseFrame(t, conn)
			},
			config: Config{
				Secret: "test",
			},
		},
		{
			name: "shape info",
			play: func(t *testing.T, conn io.ReadWriteCloser) {
				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_GetShapeInfo{
						GetShapeInfo: &lensdpb.GetShapeInfoRequest{},
					},
				})

				msg := readServerMessage(t, conn)
				info := msg.GetGetShapeInfo()
				if info == nil {
					t.Fatalf("unexpected message: %v", msg)
				}
				if info.GetRows() != grid.Rows || info.GetCols() != grid.Cols {
					t.Errorf("shape info is %dx%d, want %dx%d",
						info.GetRows(), info.GetCols(), grid.Rows, grid.Cols)
				}
				if len(info.GetRowWidths()) != grid.Rows {
					t.Errorf("got %d row widths, want %d", len(info.GetRowWidths()), grid.Rows)
				}
				for r, width := range info.GetRowWidths() {
					offset := info.GetRowOffsets()[r]
					if uint32(grid.Widths[r]) != width {
						t.Errorf("row %d width = %d, want %d", r, width, grid.Widths[r])
					}
					if offset+width > grid.Cols {
						t.Errorf("row %d spills over: offset %d + width %d", r, offset, width)
					}
				}
			},
		},
		{
			name: "set and get frame",
			play: func(t *testing.T, conn io.ReadWriteCloser) {
				pixels := make([]uint32, grid.FlatLen)
				for i := range pixels {
					pixels[i] = uint32(i % 256)
				}

				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_SetFrame{
						SetFrame: &lensdpb.SetFrameRequest{Pixels: pixels},
					},
				})
				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_GetFrame{
						GetFrame: &lensdpb.GetFrameRequest{},
					},
				})

				assertMessage(t, conn, &lensdpb.DisplayServerMessage{
					Message: &lensdpb.DisplayServerMessage_GetFrame{
						GetFrame: &lensdpb.GetFrameResponse{Pixels: pixels},
					},
				})
			},
		},
		{
			name: "set frame wrong size",
			play: func(t *testing.T, conn io.ReadWriteCloser) {
				writeClientMessage(t, conn, &lensdpb.DisplayClientMessage{
					Message: &lensdpb.DisplayClientMessage_SetFrame{
						SetFrame: &lensdpb.SetFrameRequest{
							Pixels: make([]uint32, grid.FlatLen-1),
						},
					},
				})

				assertMessage(t, conn, &lensdpb.DisplayServerMessage{
					Error: proto.String("invalid number of pixels: 624"),
				})

				expectCloseFrame(t, conn)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			conn := startTestSession(t, ctx, test.config)
			test.play(t, conn)
		})
	}
}

func writeClientMessage(t *testing.T, conn io.ReadWriteCloser, msg *lensdpb.DisplayClientMessage) {
	t.Helper()

	b, err := proto.Marshal(msg)
	if err != nil {
		t.Fatal("invalid client proto message:", err)
	}
	if err := wsutil.WriteClientBinary(conn, b); err != nil {
		t.Fatal("error writing client message:", err)
	}
}

func readServerMessage(t *testing.T, conn io.ReadWriteCloser) *lensdpb.DisplayServerMessage {
	t.Helper()

	b, err := wsutil.ReadServerBinary(conn)
	if err != nil {
		t.Fatal("error reading server message:", err)
	}

	msg := &lensdpb.DisplayServerMessage{}
	if err := proto.Unmarshal(b, msg); err != nil {
		t.Fatal("invalid server proto message:", err)
	}

	return msg
}

func assertMessage(t *testing.T, conn io.ReadWriteCloser, expect *lensdpb.DisplayServerMessage) {
	t.Helper()

	actual := readServerMessage(t, conn)
	assertEq(t, expect, actual)
}

func assertEq[T any](t *testing.T, expected, actual T, opts ...cmp.Option) {
	t.Helper()

	opts = append(opts, protocmp.Transform())
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}

func expectCloseFrame(t *testing.T, conn io.ReadWriteCloser) {
	t.Helper()
	var closedErr wsutil.ClosedError

	_, op, err := wsutil.ReadServerData(conn)
	if err == nil {
		t.Fatal("no close frame received, got op", op)
	}
	if !errors.As(err, &closedErr) {
		t.Fatal("unexpected non-ClosedError while reading server data:", err)
	}

	// Responding close frame is automatically handled by gobwas/ws/wsutil.
	// See wsutil/handler.go @ ControlHandler.HandleClose.
}

// memController is an in-memory DisplayController for tests.
type memController struct {
	mu    sync.Mutex
	frame []int
}

func newMemController() *memController {
	return &memController{frame: grid.NewFlat()}
}

func (c *memController) Frame() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame := grid.NewFlat()
	copy(frame, c.frame)
	return frame
}

func (c *memController) SetFrame(frame []int) error {
	if len(frame) != grid.FlatLen {
		return &grid.SizeMismatchError{Got: len(frame)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.frame, frame)
	return nil
}

func startTestSession(t *testing.T, ctx context.Context, cfg Config) io.ReadWriteCloser {
	t.Helper()

	conn1, conn2 := net.Pipe()

	t.Cleanup(func() {
		t.Log("closing test session pipes")
		conn1.Close()
		conn2.Close()
	})

	logger := slogt.New(t)

	session := &Session{
		ws:     newWebsocketServer(conn1, logger),
		logger: logger,
		opts: ServerOpts{
			Controller: newMemController(),
			Logger:     logger,
			FrameRate:  DefaultFrameRate,
		},
		cfg: cfg,
	}

	ctx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)

	t.Cleanup(func() {
		cancel()
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			t.Error("server session error:", err)
		}
	})

	go func() {
		errCh <- session.Start(ctx)
	}()

	return conn2
}
