// Command lensd-test runs a virtual lens display for development. It serves
// the same websocket protocol as lensd, but frames go to a server-sent event
// stream instead of LED hardware, so clients can be exercised without a
// physical display.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"libdb.so/hserve"
)

var (
	httpAddr  = ":9001"
	frameRate = 20
	verbose   = false
)

func init() {
	pflag.StringVarP(&httpAddr, "http-addr", "a", httpAddr, "HTTP server address")
	pflag.IntVar(&frameRate, "frame-rate", frameRate, "animation playback rate in frames per second")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
}

func main() {
	log.SetFlags(0)
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05 PM", // extended time.Kitchen
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	h := &sessionsHandler{
		logger: logger,
	}

	r := chi.NewRouter()
	r.Get("/session", h.handleNewSession)
	r.Get("/ws/{token}", h.handleSessionWS)

	logger.Info(
		"starting HTTP server",
		"addr", httpAddr)

	return hserve.ListenAndServe(ctx, httpAddr, r)
}
