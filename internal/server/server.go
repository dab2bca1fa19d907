// Package server is the development GraphQL backend: it serves the dataset
// query and record mutations over HTTP on top of the SQLite store.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/thenoetrevino/tally/internal/database"
)

// DefaultAddr is used when Config.Addr is empty
const DefaultAddr = "127.0.0.1:8080"

// shutdownTimeout bounds how long in-flight requests may take after ctx ends
const shutdownTimeout = 5 * time.Second

// Config holds server configuration.
type Config struct {
	Addr    string
	Store   database.DataStore
	Logger  *slog.Logger
	Metrics *Metrics
}

// NewHandler builds the router:
//
//	POST /graphql   GraphQL-over-HTTP endpoint
//	GET  /healthz   liveness probe
//	GET  /metrics   prometheus metrics
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("server: store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	schema, err := graphql.ParseSchema(schemaSDL, newResolver(cfg.Store, metrics, logger),
		graphql.MaxDepth(8),
	)
	if err != nil {
		return nil, fmt.Errorf("server: failed to parse schema: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.countRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Method(http.MethodPost, "/graphql", &relay.Handler{Schema: schema})

	return r, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. In-flight requests are drained on shutdown.
func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// requestLogger logs one line per request with slog
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("writeJSON encode error", "error", err)
	}
}
