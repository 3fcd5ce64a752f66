// Package server exposes the claim-analysis HTTP surface. Requests are
// stateless and independent; the only blocking dependency is the optional AI
// collaborator call inside the adjudicator.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/policyme/cortex/internal/adjudicate"
	"github.com/policyme/cortex/internal/model"
	"github.com/policyme/cortex/internal/score"
)

const serviceVersion = "1.0.0"

// Server wires the scorer and adjudicator behind the HTTP API.
type Server struct {
	cfg         model.ServerConfig
	logger      *slog.Logger
	scorer      *score.Scorer
	adjudicator *adjudicate.Adjudicator
	metrics     *Metrics
	limiter     *clientLimiter
}

// New creates a server around the given core components.
func New(cfg model.ServerConfig, logger *slog.Logger, scorer *score.Scorer, adjudicator *adjudicate.Adjudicator) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:         cfg,
		logger:      logger,
		scorer:      scorer,
		adjudicator: adjudicator,
		metrics:     NewMetrics(),
		limiter:     newClientLimiter(cfg.RateLimit, cfg.RateBurst),
	}
}

// Handler builds the routed and middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/claims/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/dashboard/stats", s.handleDashboardStats)
	mux.Handle("GET /metrics", s.metrics.Handler())

	var handler http.Handler = mux
	handler = s.withMetrics(handler)
	handler = s.withRateLimit(handler)
	handler = s.withLogging(handler)
	handler = withCORS(handler)

	return handler
}

// Run serves until the context is cancelled, then drains within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("server listening",
		"addr", s.cfg.Addr,
		"ai_configured", s.adjudicator.AIConfigured())

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
