// Package server exposes the box engine and renderers over HTTP.
//
//	GET /healthz
//	GET /api/v1/box?count=6&length=3&diameter=1.132&thickness=1/2
//	GET /api/v1/box/schematic.{svg|png|json}
//	GET /api/v1/box/pages/{page}.{svg|png|json}
//	GET /api/v1/box/assembly.{stl|svg|dot}
//	GET /metrics
//
// Every /api/v1/box route takes the same box query: count, length,
// diameter, thickness, rows and machine. Measurements accept fractions
// ("5 3/16"). Page numbers start at 1.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
)

// Options configures a Server.
type Options struct {
	// Gatherer serves /metrics; nil omits the route.
	Gatherer prometheus.Gatherer
	// Render holds the default canvas size and PNG scale.
	Render pipeline.Options
	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration
}

// Server handles HTTP requests.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
}

// New creates a server backed by runner. A nil logger discards output.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	opts.Render.SetDefaults()
	return &Server{runner: runner, logger: logger, opts: opts}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.Timeout))
	r.Use(instrument)

	r.Get("/healthz", s.health)
	if s.opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/box", func(r chi.Router) {
		r.Get("/", s.cutList)
		r.Get("/schematic.{format}", s.schematic)
		r.Get("/pages/{page}.{format}", s.page)
		r.Get("/assembly.{format}", s.assembly)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
