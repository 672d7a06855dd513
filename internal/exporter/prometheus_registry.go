package exporter

import (
	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// createPrometheusRegistry creates and populates a Prometheus registry.
func createPrometheusRegistry(
	reg *metric.Registry,
	events *diag.Counter,
	internal config.InternalMetricsConfig,
) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Create and register collector
	promRegistry.MustRegister(newCollector(reg, events, internal.Format))

	if internal.Enabled {
		promRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return promRegistry
}
