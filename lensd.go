// Package lensd serves a lens-shaped LED matrix to clients over websocket.
// Clients exchange protobuf messages to read the display shape, push frames,
// and start generated animations; the server forwards finished frames to a
// DisplayController.
package lensd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gobwas/ws"
	"github.com/lenslight/lensd/anim"
	"github.com/lenslight/lensd/grid"
	"github.com/lenslight/lensd/lensdpb"
	"github.com/lenslight/lensd/raster"
	"golang.org/x/sync/errgroup"
	"gopkg.in/typ.v4/sync2"
)

//go:generate mkdir -p lensdpb
//go:generate protoc -I=. --go_out=paths=source_relative:./lensdpb lensd.proto

// DefaultFrameRate is the animation frame rate used when ServerOpts leaves
// FrameRate zero.
const DefaultFrameRate = 20

// ServerOpts are options for a server.
type ServerOpts struct {
	// Controller is the display controller to use for the server.
	Controller DisplayController
	// Logger is the logger to use for the server.
	Logger *slog.Logger
	// HTTPUpgrader is the HTTP-to-Websocket upgrader to use for the server.
	HTTPUpgrader ws.HTTPUpgrader
	// FrameRate is the playback rate for animations, in frames per second.
	FrameRate int
}

// Config is the runtime-adjustable part of the server configuration.
type Config struct {
	// Secret, when non-empty, must be presented by clients before any
	// other message is accepted.
	Secret string
}

// Server handles all HTTP requests for the server.
type Server struct {
	opts ServerOpts

	cfgMu sync.RWMutex
	cfg   Config

	connections sync2.Map[*Session, sessionControl]
}

type sessionControl struct {
	cancel context.CancelCauseFunc
}

// NewServer creates a new server.
func NewServer(opts ServerOpts) *Server {
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	return &Server{
		opts: opts,
	}
}

// SetConfig replaces the server configuration. Sessions already running keep
// the configuration they started with.
func (s *Server) SetConfig(cfg Config) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// KickAllConnections kicks all connections from the server.
// Optionally, a reason can be provided.
func (s *Server) KickAllConnections(reason string) {
	var err error
	if reason != "" {
		err = fmt.Errorf("kicked: %s", reason)
	} else {
		err = fmt.Errorf("kicked")
	}

	s.connections.Range(func(s *Session, ctrl sessionControl) bool {
		ctrl.cancel(err)
		return true
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, err := SessionUpgrade(w, r, s.opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.cfgMu.RLock()
	session.cfg = s.cfg
	s.cfgMu.RUnlock()

	ctx, cancel := context.WithCancelCause(r.Context())
	s.connections.Store(session, sessionControl{cancel: cancel})

	if err := session.Start(ctx); err != nil {
		s.connections.Delete(session)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Session is a websocket session. It implements handling of messages from a
// single client.
type Session struct {
	ws     *websocketServer
	logger *slog.Logger
	opts   ServerOpts
	cfg    Config

	animMu     sync.Mutex
	animCancel context.CancelFunc
}

// SessionUpgrade upgrades an HTTP request to a websocket session.
func SessionUpgrade(w http.ResponseWriter, r *http.Request, opts ServerOpts) (*Session, error) {
	wsconn, _, _, err := opts.HTTPUpgrader.Upgrade(r, w)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade HTTP: %w", err)
	}

	logger := opts.Logger.With("addr", wsconn.RemoteAddr())

	return &Session{
		ws:     newWebsocketServer(wsconn, logger),
		logger: logger,
		opts:   opts,
	}, nil
}

// Start starts the session.
func (s *Session) Start(ctx context.Context) error {
	errg, ctx := errgroup.WithContext(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.stopAnimation()

	errg.Go(func() error {
		return s.ws.Start(ctx)
	})

	errg.Go(func() error {
		// Treat main loop errors as fatal and kill the connection,
		// but don't return it because it's not the caller's fault.
		if err := s.mainLoop(ctx); err != nil {
			return s.ws.SendError(ctx, err)
		}
		return nil
	})

	return errg.Wait()
}

func (s *Session) mainLoop(ctx context.Context) error {
	authed := s.cfg.Secret == ""

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg := <-s.ws.Messages:
			if auth := msg.GetAuthenticate(); auth != nil {
				ok := auth.GetSecret() == s.cfg.Secret
				s.ws.Send(ctx, &lensdpb.DisplayServerMessage{
					Message: &lensdpb.DisplayServerMessage_Authenticate{
						Authenticate: &lensdpb.AuthenticateResponse{
							Success: ok,
						},
					},
				})
				if !ok {
					return fmt.Errorf("invalid secret")
				}
				authed = true
				continue
			}

			if !authed {
				return fmt.Errorf("not authenticated")
			}

			if err := s.handleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func (s *Session) handleMessage(ctx context.Context, msg *lensdpb.DisplayClientMessage) error {
	switch msg := msg.GetMessage().(type) {
	case *lensdpb.DisplayClientMessage_GetShapeInfo:
		s.ws.Send(ctx, &lensdpb.DisplayServerMessage{
			Message: &lensdpb.DisplayServerMessage_GetShapeInfo{
				GetShapeInfo: shapeInfoResponse(),
			},
		})

	case *lensdpb.DisplayClientMessage_GetFrame:
		frame := s.opts.Controller.Frame()
		pixels := make([]uint32, len(frame))
		for i, v := range frame {
			pixels[i] = uint32(v)
		}
		s.ws.Send(ctx, &lensdpb.DisplayServerMessage{
			Message: &lensdpb.DisplayServerMessage_GetFrame{
				GetFrame: &lensdpb.GetFrameResponse{
					Pixels: pixels,
				},
			},
		})

	case *lensdpb.DisplayClientMessage_SetFrame:
		pixels := msg.SetFrame.GetPixels()
		if len(pixels) != grid.FlatLen {
			return fmt.Errorf("invalid number of pixels: %d", len(pixels))
		}
		frame := grid.NewFlat()
		for i, v := range pixels {
			frame[i] = grid.ClampBrightness(int(v))
		}
		s.stopAnimation()
		if err := s.opts.Controller.SetFrame(frame); err != nil {
			return fmt.Errorf("failed to set frame: %w", err)
		}

	case *lensdpb.DisplayClientMessage_Fill:
		frame := grid.NewFlat()
		raster.Fill(frame, int(msg.Fill.GetBrightness()))
		s.stopAnimation()
		if err := s.opts.Controller.SetFrame(frame); err != nil {
			return fmt.Errorf("failed to set frame: %w", err)
		}

	case *lensdpb.DisplayClientMessage_PlayAnimation:
		req := msg.PlayAnimation
		brightness := int(req.GetBrightness())
		if brightness == 0 {
			brightness = anim.DefaultBrightness
		}
		frames, err := anim.Sequence(req.GetName(), int(req.GetFrameCount()), brightness)
		if err != nil {
			return fmt.Errorf("failed to generate animation: %w", err)
		}
		s.startAnimation(ctx, frames)
	}

	return nil
}

func (s *Session) startAnimation(ctx context.Context, frames [][]int) {
	s.animMu.Lock()
	defer s.animMu.Unlock()

	if s.animCancel != nil {
		s.animCancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	s.animCancel = cancel

	go func() {
		err := PlayFrames(ctx, s.opts.Controller, frames, s.opts.FrameRate)
		if err != nil && ctx.Err() == nil {
			s.logger.Warn(
				"animation playback failed",
				"error", err)
		}
	}()
}

func (s *Session) stopAnimation() {
	s.animMu.Lock()
	defer s.animMu.Unlock()

	if s.animCancel != nil {
		s.animCancel()
		s.animCancel = nil
	}
}

func shapeInfoResponse() *lensdpb.GetShapeInfoResponse {
	widths := make([]uint32, grid.Rows)
	offsets := make([]uint32, grid.Rows)
	for r := 0; r < grid.Rows; r++ {
		width, _ := grid.RowWidth(r)
		offset, _ := grid.RowOffset(r)
		widths[r] = uint32(width)
		offsets[r] = uint32(offset)
	}
	return &lensdpb.GetShapeInfoResponse{
		Rows:       grid.Rows,
		Cols:       grid.Cols,
		RowWidths:  widths,
		RowOffsets: offsets,
	}
}
