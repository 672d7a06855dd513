package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusExporter provides HTTP server for Prometheus metrics.
type PrometheusExporter struct {
	addr         string
	path         string
	server       *http.Server
	promRegistry *prometheus.Registry
}

// NewPrometheusExporter creates a new Prometheus HTTP exporter.
func NewPrometheusExporter(
	cfg *config.PrometheusExportConfig,
	internal config.InternalMetricsConfig,
	reg *metric.Registry,
	events *diag.Counter,
) *PrometheusExporter {
	promRegistry := createPrometheusRegistry(reg, events, internal)
	addr := fmt.Sprintf(":%d", cfg.Port)

	return &PrometheusExporter{
		addr:         addr,
		path:         cfg.Path,
		promRegistry: promRegistry,
		server:       createHTTPServer(addr, cfg.Path, promRegistry, internal.Enabled),
	}
}

// Gatherer returns the underlying Prometheus registry.
func (e *PrometheusExporter) Gatherer() prometheus.Gatherer {
	return e.promRegistry
}

// Registerer allows other components to add collectors to the exporter.
func (e *PrometheusExporter) Registerer() prometheus.Registerer {
	return e.promRegistry
}

// Handler returns the HTTP handler serving the metrics path.
func (e *PrometheusExporter) Handler() http.Handler {
	return e.server.Handler
}

// Start begins serving HTTP requests. It blocks until ctx is cancelled.
func (e *PrometheusExporter) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		slog.Info("starting prometheus exporter", "addr", e.addr, "path", e.path)
		if err := e.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return e.Stop()
	}
}

// Stop gracefully stops the exporter.
func (e *PrometheusExporter) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("shutting down prometheus exporter")
	return e.server.Shutdown(ctx)
}
