// Package api serves the chart pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz                 liveness and build info
//	POST   /v1/plan                 block plan of a chart file
//	POST   /v1/layout               layout JSON of a chart file
//	POST   /v1/render               rendered chart (?format=svg|png|pdf|json)
//	POST   /v1/charts               save a chart
//	GET    /v1/charts               list saved charts
//	GET    /v1/charts/{id}          get a saved chart
//	GET    /v1/charts/{id}/render   render a saved chart
//	DELETE /v1/charts/{id}          delete a saved chart
//
// Chart files are posted as the request body. Their format comes from the
// ?input= parameter, then the Content-Type header, and defaults to JSON.
// Errors are returned as {"code": ..., "message": ...}.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/waffle/pkg/buildinfo"
	"github.com/matzehuels/waffle/pkg/observability"
	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/store"
)

// Server limits.
const (
	MaxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server handles API requests.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// NewServer creates a server. A nil store keeps charts in memory; a nil
// logger discards output.
func NewServer(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/plan", s.handlePlan)
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)

		r.Route("/charts", func(r chi.Router) {
			r.Post("/", s.handleCreateChart)
			r.Get("/", s.handleListCharts)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetChart)
				r.Delete("/", s.handleDeleteChart)
				r.Get("/render", s.handleRenderChart)
			})
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// Close releases the runner cache and the store.
func (s *Server) Close(ctx context.Context) error {
	err := s.runner.Close()
	if serr := s.store.Close(ctx); err == nil {
		err = serr
	}
	return err
}

// observe reports every request to the HTTP hooks and the log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		dur := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, status, dur)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", dur,
			"request_id", middleware.GetReqID(ctx))
	})
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Read()})
}
