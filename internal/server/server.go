// SPDX-License-Identifier: MIT

// Package server exposes the live poet over HTTP.
//
// Routes:
//
//	GET  /healthz             liveness plus the live snapshot ID
//	POST /v1/poem             {"input": "..."} → poem with bridge words
//	GET  /v1/bridge?from=&to= single bridge lookup
//	GET  /v1/graph            affinity graph as JSON, or text with ?format=text
//	GET  /metrics             prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/internal/config"
	"github.com/katalvlaran/graphpoet/internal/observability"
)

// Server wires the router, the snapshot store and the metrics collector.
type Server struct {
	cfg      config.ServerConfig
	store    *Store
	metrics  *observability.Collector
	log      *zap.Logger
	validate *validator.Validate
	router   chi.Router
}

// New builds a Server. metrics and log may be nil.
func New(cfg config.ServerConfig, store *Store, metrics *observability.Collector, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		store:    store,
		metrics:  metrics,
		log:      log,
		validate: validator.New(),
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(s.requireSnapshot)
		r.Post("/poem", s.handlePoem)
		r.Get("/bridge", s.handleBridge)
		r.Get("/graph", s.handleGraph)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on cfg.Addr until ctx is done, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// unmatchedRoute labels requests no route pattern matched, so client-chosen
// paths never become metric label values.
const unmatchedRoute = "unmatched"

// observe records metrics and a debug log line per request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		if s.metrics != nil {
			s.metrics.ObserveHTTP(r.Method, route, status, elapsed)
		}
		s.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// requireSnapshot answers 503 until a corpus has been loaded.
func (s *Server) requireSnapshot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store.Current() == nil {
			writeError(w, http.StatusServiceUnavailable, "no corpus loaded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
