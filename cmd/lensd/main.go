package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/lenslight/lensd"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"libdb.so/hserve"
	"libdb.so/ledctl"
)

var (
	httpAddr      = "0.0.0.0:9000"
	httpAdminAddr = "127.0.0.1:9002"
	frameRate     = 20
	verbose       = false
)

func init() {
	pflag.StringVarP(&httpAddr, "http-addr", "a", httpAddr, "HTTP server address")
	pflag.StringVarP(&httpAdminAddr, "http-admin-addr", "A", httpAdminAddr, "HTTP admin server address")
	pflag.IntVar(&frameRate, "frame-rate", frameRate, "display refresh rate in frames per second")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
}

var ws281xConfig = ledctl.WS281xConfig{
	ColorOrder:   ledctl.BGROrder,
	ColorModel:   ledctl.RGBModel,
	PWMFrequency: 800000,
	DMAChannel:   10,
	GPIOPins:     []int{12},
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
	ws281xCfg := ws281xConfig
	ws281xCfg.NumPixels = ledCount()

	ws281x, err := ledctl.NewWS281x(ws281xCfg)
	if err != nil {
		return fmt.Errorf("failed to create a WS281x controller: %v", err)
	}

	controller := newLEDController(ledControlConfig{
		Controller: ws281x,
		FrameRate:  frameRate,
		Logger:     logger.With("component", "led-controller"),
	})

	server := lensd.NewServer(lensd.ServerOpts{
		Controller: controller,
		Logger:     logger.With("component", "server"),
		FrameRate:  frameRate,
	})

	token := atomic.Pointer[string]{}

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		controller.start(ctx)
		return nil
	})

	errg.Go(func() error {
		r := chi.NewRouter()
		r.Use(httplog.RequestLogger(httplog.NewLogger("lensd", httplog.Options{
			LogLevel: slog.LevelDebug,
			Concise:  true,
		})))

		r.Get("/ws/{token}", func(w http.ResponseWriter, r *http.Request) {
			tokenWant := token.Load()
			token := chi.URLParam(r, "token")
			if tokenWant != nil {
				if token != *tokenWant {
					http.Error(w, "invalid token", http.StatusForbidden)
					return
				}
			}

			server.ServeHTTP(w, r)
		})

		logger.Info(
			"starting public HTTP server",
			"addr", httpAddr)

		return hserve.ListenAndServe(ctx, httpAddr, r)
	})

	errg.Go(func() error {
		admin := newAdminHandler(server, controller, &token)

		logger.Info(
			"starting admin HTTP server",
			"addr", httpAdminAddr)

		return hserve.ListenAndServe(ctx, httpAdminAddr, admin)
	})

	return errg.Wait()
}
