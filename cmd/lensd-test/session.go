package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/lenslight/lensd"
	"github.com/lenslight/lensd/grid"
	"gopkg.in/typ.v4/sync2"
)

type sessionsHandler struct {
	logger *slog.Logger

	sessions sync2.Map[string, *sessionInstance]
}

func (m *sessionsHandler) handleNewSession(w http.ResponseWriter, r *http.Request) {
	wflush, ok := w.(writeFlusher)
	if !ok {
		http.Error(w, "server does not support flushing", http.StatusInternalServerError)
		return
	}

	session := &sessionInstance{
		frame: make(chan struct{}, 1),
		pix:   grid.NewFlat(),
		rctx:  r.Context(),
	}

	token := m.addSession(session)

	m.logger.Info(
		"new session created",
		"token", token)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	init := displayEventToSSE(DisplayInit{
		Rows:         grid.Rows,
		Cols:         grid.Cols,
		RowWidths:    rowWidths(),
		RowOffsets:   rowOffsets(),
		SessionToken: token,
	})
	writeSSE(wflush, init)

frameLoop:
	for {
		select {
		case <-r.Context().Done():
			break frameLoop
		case <-session.frame:
			session.pixMu.Lock()
			frame := displayEventToSSE(DisplayFrame{
				Pixels: append([]int(nil), session.pix...),
			})
			session.pixMu.Unlock()
			writeSSE(wflush, frame)

			m.logger.Debug(
				"session frame sent",
				"token", token)
		}
	}

	m.sessions.Delete(token)

	m.logger.Info(
		"session has been closed",
		"token", token)
}

func (m *sessionsHandler) handleSessionWS(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	session, ok := m.sessions.Load(token)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	lensdSession, err := lensd.SessionUpgrade(w, r, lensd.ServerOpts{
		Controller: (*sessionDisplayController)(session),
		Logger:     m.logger.With("token", token),
		FrameRate:  frameRate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	m.logger.Info(
		"session has been connected to a new websocket",
		"token", token)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()

		select {
		case <-ctx.Done():
		case <-session.rctx.Done():
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()

		if err := lensdSession.Start(ctx); err != nil {
			m.logger.Warn(
				"session ended with error",
				"token", token,
				"error", err)
		}
	}()

	wg.Wait()

	m.logger.Info(
		"session has been disconnected from websocket",
		"token", token)
}

func (h *sessionsHandler) addSession(s *sessionInstance) string {
	for {
		uuid, err := uuid.NewV7()
		if err != nil {
			panic(err)
		}

		token := uuid.String()
		if _, collided := h.sessions.LoadOrStore(token, s); !collided {
			return token
		}
	}
}

type sessionInstance struct {
	frame chan struct{}
	pixMu sync.Mutex
	pix   []int
	rctx  context.Context
}

type sessionDisplayController sessionInstance

var _ lensd.DisplayController = (*sessionDisplayController)(nil)

func (c *sessionDisplayController) Frame() []int {
	c.pixMu.Lock()
	defer c.pixMu.Unlock()

	return append([]int(nil), c.pix...)
}

func (c *sessionDisplayController) SetFrame(frame []int) error {
	if len(frame) != grid.FlatLen {
		return &grid.SizeMismatchError{Got: len(frame)}
	}

	c.pixMu.Lock()
	defer c.pixMu.Unlock()

	copy(c.pix, frame)

	c.queueDraw()
	return nil
}

func (c *sessionDisplayController) queueDraw() {
	select {
	case c.frame <- struct{}{}:
	default:
	}
}

func rowWidths() []int {
	widths := make([]int, grid.Rows)
	copy(widths, grid.Widths[:])
	return widths
}

func rowOffsets() []int {
	offsets := make([]int, grid.Rows)
	for r := range offsets {
		offsets[r], _ = grid.RowOffset(r)
	}
	return offsets
}
