// Package server exposes the layout pipeline over HTTP.
//
// The server is the backend for interactive viewer surfaces: clients POST a
// graph artifact and get geometry back as JSON, optionally persisting the
// result for later retrieval and rendering. All responses are JSON except
// rendered artifacts, which are served with their native content type.
//
// # Endpoints
//
//	GET    /healthz                    liveness and version
//	POST   /api/layout                 compute a layout, nothing persisted
//	POST   /api/layouts                compute and save a layout document
//	GET    /api/layouts                list saved layouts (summaries)
//	GET    /api/layouts/{id}           fetch one saved layout document
//	DELETE /api/layouts/{id}           delete a saved layout
//	GET    /api/layouts/{id}/render    render a saved layout (?format=svg)
//
// Errors are returned as {"error": "...", "code": "..."} with the code taken
// from the structured error, mapped to 400/404/500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lynxviz/lynxviz/pkg/pipeline"
	"github.com/lynxviz/lynxviz/pkg/store"
)

const shutdownTimeout = 10 * time.Second

// Server handles HTTP requests for layout computation and persistence.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil runner gets a cache-less default, a nil store
// falls back to in-memory, and a nil logger falls back to the default logger.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
}

// Handler builds the routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/layout", s.handleComputeLayout)
		r.Route("/layouts", func(r chi.Router) {
			r.Post("/", s.handleCreateLayout)
			r.Get("/", s.handleListLayouts)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetLayout)
				r.Delete("/", s.handleDeleteLayout)
				r.Get("/render", s.handleRenderLayout)
			})
		})
	})

	return r
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
