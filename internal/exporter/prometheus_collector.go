package exporter

import (
	"log/slog"
	"slices"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// collector implements prometheus.Collector over the metric registry and
// the diagnostic event counter.
type collector struct {
	entriesDesc *prometheus.Desc
	eventsDesc  *prometheus.Desc
	groups      []entryGroup
	events      *diag.Counter
}

// newCollector creates a collector from the metric registry.
func newCollector(reg *metric.Registry, events *diag.Counter, format config.NamingFormat) *collector {
	entriesName := metricName(format, protocolPrometheus, registryEntriesParts...)
	eventsName := metricName(format, protocolPrometheus, slices.Concat(diagnosticEventsParts, []string{"total"})...)

	c := &collector{
		entriesDesc: prometheus.NewDesc(
			entriesName,
			"Number of known statistics by statistic type and unit",
			[]string{"kind", "unit"},
			nil, // No constant labels
		),
		eventsDesc: prometheus.NewDesc(
			eventsName,
			"Diagnostic events raised by suffix resolution and statistic lookups",
			[]string{"kind"},
			nil,
		),
		groups: groupEntries(reg),
		events: events,
	}

	slog.Info("registered prometheus metrics",
		"entries", entriesName,
		"events", eventsName,
		"groups", len(c.groups))

	return c
}

// Describe sends metric descriptors to the channel.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entriesDesc
	ch <- c.eventsDesc
}

// Collect sends registry and diagnostic metrics to the channel.
// This is called on each Prometheus scrape.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, g := range c.groups {
		ch <- prometheus.MustNewConstMetric(
			c.entriesDesc,
			prometheus.GaugeValue,
			float64(g.count),
			g.kind.String(),
			string(g.unit),
		)
	}

	if c.events == nil {
		return
	}
	snap := c.events.Snapshot()
	for _, kind := range diag.Kinds() {
		ch <- prometheus.MustNewConstMetric(
			c.eventsDesc,
			prometheus.CounterValue,
			float64(snap[kind]),
			string(kind),
		)
	}
}
