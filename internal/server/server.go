package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusFunc reports process status for GET /v1/status.
type StatusFunc func() (any, error)

// Server provides the HTTP lookup API over the metric registry.
type Server struct {
	addr     string
	server   *http.Server
	registry *metric.Registry
	resolver *unit.Resolver
	status   StatusFunc
}

// Option configures a Server.
type Option func(*serverOptions)

type serverOptions struct {
	status     StatusFunc
	registerer prometheus.Registerer
}

// WithStatus serves fn at GET /v1/status.
func WithStatus(fn StatusFunc) Option {
	return func(o *serverOptions) {
		o.status = fn
	}
}

// WithInstrumentation counts API requests in registerer.
func WithInstrumentation(registerer prometheus.Registerer) Option {
	return func(o *serverOptions) {
		o.registerer = registerer
	}
}

// New creates a new HTTP server.
func New(port int, registry *metric.Registry, resolver *unit.Resolver, opts ...Option) (*Server, error) {
	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		addr:     fmt.Sprintf(":%d", port),
		registry: registry,
		resolver: resolver,
		status:   o.status,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/metrics", s.handleList)
	mux.HandleFunc("GET /v1/metrics/{name}", s.handleLookup)
	mux.HandleFunc("GET /v1/units", s.handleUnits)
	if s.status != nil {
		mux.HandleFunc("GET /v1/status", s.handleStatus)
	}

	var handler http.Handler = mux
	if o.registerer != nil {
		requests := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statmeta_api_requests_total",
			Help: "Total number of lookup API requests",
		}, []string{"code", "method"})
		if err := o.registerer.Register(requests); err != nil {
			return nil, fmt.Errorf("failed to register api metrics: %w", err)
		}
		handler = promhttp.InstrumentHandlerCounter(requests, handler)
	}

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving HTTP requests. It blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		slog.Info("starting api server", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return s.shutdown()
	}
}

// shutdown gracefully stops the server.
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("shutting down api server")
	return s.server.Shutdown(ctx)
}
