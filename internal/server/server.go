// Package server exposes the analysis pipeline over HTTP: a JSON API, a
// PDF export, and the embedded single-page UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/hyperifyio/wordbubble/internal/app"
)

// Config holds server configuration.
type Config struct {
	Addr string
	// RateLimit is the sustained analyze-requests-per-second the server
	// accepts. Zero means default (2/s, burst 5).
	RateLimit float64
}

// Server serves the UI and API. Exactly one pipeline run is in flight at
// any time; concurrent submissions are answered with 429.
type Server struct {
	app        *app.App
	httpServer *http.Server
	inflight   *semaphore.Weighted
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// New wires routes and middleware around the pipeline.
func New(a *app.App, cfg Config, logger zerolog.Logger) *Server {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 2
	}
	s := &Server{
		app:      a,
		inflight: semaphore.NewWeighted(1),
		limiter:  rate.NewLimiter(rate.Limit(limit), 5),
		log:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/report.pdf", s.handleReportPDF)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	addr := cfg.Addr
	if addr == "" {
		addr = app.DefaultAddr
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.withRequestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start listens until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		s.log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
