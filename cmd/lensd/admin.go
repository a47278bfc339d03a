package main

import (
	"context"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/lenslight/lensd"
	"github.com/lenslight/lensd/anim"
	"github.com/lenslight/lensd/grid"
	"github.com/lenslight/lensd/raster"
	"libdb.so/hrt"
)

type adminHandler struct {
	*chi.Mux
	server     *lensd.Server
	controller lensd.DisplayController
	token      *atomic.Pointer[string]
}

func newAdminHandler(server *lensd.Server, controller lensd.DisplayController, token *atomic.Pointer[string]) *adminHandler {
	h := &adminHandler{
		Mux:        chi.NewRouter(),
		server:     server,
		controller: controller,
		token:      token,
	}

	h.Use(hrt.Use(hrt.Opts{
		Encoder: hrt.CombinedEncoder{
			Encoder: hrt.JSONEncoder,
			Decoder: hrt.URLDecoder,
		},
		ErrorWriter: hrt.TextErrorWriter,
	}))

	h.Patch("/config", hrt.Wrap(h.patchConfig))
	h.Post("/kick-all", hrt.Wrap(h.kickAll))
	h.Get("/frame", hrt.Wrap(h.getFrame))
	h.Put("/frame", hrt.Wrap(h.putFrame))
	h.Post("/fill", hrt.Wrap(h.fill))
	h.Post("/animation", hrt.Wrap(h.playAnimation))

	return h
}

type patchConfigRequest struct {
	Secret string `query:"secret"`
	Token  string `query:"token"`
}

func (h *adminHandler) patchConfig(ctx context.Context, req patchConfigRequest) (hrt.None, error) {
	h.server.SetConfig(lensd.Config{Secret: req.Secret})
	if req.Token != "" {
		h.token.Store(&req.Token)
	}
	return hrt.Empty, nil
}

type kickAllRequest struct {
	Reason string `query:"reason"`
}

func (h *adminHandler) kickAll(ctx context.Context, req kickAllRequest) (hrt.None, error) {
	h.server.KickAllConnections(req.Reason)
	return hrt.Empty, nil
}

type frameResponse struct {
	Pixels string `json:"pixels"`
}

func (h *adminHandler) getFrame(ctx context.Context, _ hrt.None) (frameResponse, error) {
	pixels, err := grid.FormatPixelString(h.controller.Frame())
	if err != nil {
		return frameResponse{}, err
	}
	return frameResponse{Pixels: pixels}, nil
}

type putFrameRequest struct {
	Pixels string `query:"pixels"`
}

func (h *adminHandler) putFrame(ctx context.Context, req putFrameRequest) (hrt.None, error) {
	frame, err := grid.ParsePixelString(req.Pixels)
	if err != nil {
		return hrt.Empty, err
	}
	return hrt.Empty, h.controller.SetFrame(frame)
}

type fillRequest struct {
	Brightness int `query:"brightness"`
}

func (h *adminHandler) fill(ctx context.Context, req fillRequest) (hrt.None, error) {
	frame := grid.NewFlat()
	raster.Fill(frame, req.Brightness)
	return hrt.Empty, h.controller.SetFrame(frame)
}

type playAnimationRequest struct {
	Name       string `query:"name"`
	Frames     int    `query:"frames"`
	Brightness int    `query:"brightness"`
}

// playAnimation renders the named animation and plays it to completion
// before responding. Cancelling the request stops playback.
func (h *adminHandler) playAnimation(ctx context.Context, req playAnimationRequest) (hrt.None, error) {
	if req.Brightness == 0 {
		req.Brightness = anim.DefaultBrightness
	}

	frames, err := anim.Sequence(req.Name, req.Frames, req.Brightness)
	if err != nil {
		return hrt.Empty, err
	}
	return hrt.Empty, lensd.PlayFrames(ctx, h.controller, frames, frameRate)
}
