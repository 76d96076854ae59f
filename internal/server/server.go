// Package server exposes the extraction core over a small JSON HTTP API. It
// is a thin collaborator: it decodes requests into pipeline options, runs the
// pipeline and maps its error kinds onto HTTP status codes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/w95/linksift/internal/config"
	"github.com/w95/linksift/internal/extract"
)

// ServiceName identifies this service in health responses and logs.
const ServiceName = "linksift"

// Server is the HTTP front end over the extraction pipeline.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	pipeline *extract.Pipeline
	metrics  *metrics
	router   chi.Router
	httpSrv  *http.Server
}

// New creates a server around a freshly built pipeline. The pipeline itself
// is stateless, so one instance serves all requests concurrently.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		pipeline: extract.NewPipeline(cfg.Extract.ReformatThreshold),
		metrics:  newMetrics(),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(metricsMiddleware(s.metrics))
	if s.cfg.Server.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(s.cfg.Server.RateLimit), s.cfg.Server.RateBurst)
		r.Use(rateLimitMiddleware(limiter))
	}

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Post("/analyze", s.handleAnalyze)

	return r
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the listener
// fails or Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	s.logger.Info("http server listening", zap.String("addr", addr))
	if err := s.httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts the listener down, honoring ctx's deadline.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
