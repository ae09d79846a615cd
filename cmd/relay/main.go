package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"groq-relay/internal/app"
	"groq-relay/internal/httputil"
)

const shutdownTimeout = 10 * time.Second

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Events.Close(); err != nil {
			deps.Log.Warn("failed to close event publisher", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Log.Info("relay listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
	deps.Log.Info("relay stopped")
}

func newRouter(deps app.Deps) *chi.Mux {
	r := httputil.NewRouter(deps.Log, deps.Config.AllowedOrigin, deps.Config.RequestTimeout, "/groq", "/whisper")

	r.Post("/groq", groqHandler(deps))
	r.Post("/whisper", whisperHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	r.Method(http.MethodGet, "/metrics", httputil.MetricsHandler())

	return r
}
