package app

import (
	"fmt"
	"log/slog"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/exporter"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/monitor"
	"github.com/neox5/statmeta/internal/server"
	"github.com/neox5/statmeta/internal/unit"
)

// App holds initialized application components.
type App struct {
	Config             *config.Config
	Events             *diag.Counter
	Resolver           *unit.Resolver
	Registry           *metric.Registry
	Server             *server.Server
	PrometheusExporter *exporter.PrometheusExporter
	OTELExporter       *exporter.OTELExporter
	Monitor            *monitor.Monitor
}

// NewRegistry builds the suffix resolver and metric registry from cfg.
// Diagnostics go to sink.
func NewRegistry(cfg *config.Config, sink diag.Sink) (*unit.Resolver, *metric.Registry) {
	resolver := unit.NewResolver(cfg.Units, sink)
	return resolver, metric.Build(resolver, sink, cfg.Metrics...)
}

// New initializes the long-running application from configuration.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	events := diag.NewCounter()
	sink := diag.Multi{diag.NewLogger(logger), events}

	resolver, registry := NewRegistry(cfg, sink)
	slog.Info("metric registry ready",
		"entries", registry.Len(),
		"units", len(resolver.Entries()),
		"extra_metrics", len(cfg.Metrics))

	a := &App{
		Config:   cfg,
		Events:   events,
		Resolver: resolver,
		Registry: registry,
	}

	// Create Prometheus exporter if enabled
	if cfg.Export.Prometheus != nil {
		a.PrometheusExporter = exporter.NewPrometheusExporter(
			cfg.Export.Prometheus,
			cfg.Settings.InternalMetrics,
			registry,
			events,
		)
	}

	// Create OTEL exporter if enabled
	if cfg.Export.OTEL != nil {
		otelExporter, err := exporter.NewOTELExporter(
			cfg.Export.OTEL,
			cfg.Settings.InternalMetrics.Format,
			registry,
			events,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTEL exporter: %w", err)
		}
		a.OTELExporter = otelExporter
	}

	if cfg.Monitor.Enabled {
		mon, err := monitor.New(cfg.Monitor.Interval, logger, events)
		if err != nil {
			return nil, fmt.Errorf("failed to create monitor: %w", err)
		}
		a.Monitor = mon
	}

	if cfg.API.Enabled {
		srv, err := server.New(cfg.API.Port, registry, resolver, a.serverOptions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to create api server: %w", err)
		}
		a.Server = srv
	}

	return a, nil
}

func (a *App) serverOptions() []server.Option {
	var opts []server.Option

	if a.Monitor != nil {
		opts = append(opts, server.WithStatus(func() (any, error) {
			return a.Monitor.Latest()
		}))
	}

	if a.PrometheusExporter != nil && a.Config.Settings.InternalMetrics.Enabled {
		opts = append(opts, server.WithInstrumentation(a.PrometheusExporter.Registerer()))
	}

	return opts
}
