package exporter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricName(t *testing.T) {
	tests := []struct {
		format config.NamingFormat
		p      protocol
		want   string
	}{
		{config.NamingFormatNative, protocolPrometheus, "statmeta_registry_entries"},
		{config.NamingFormatNative, protocolOTEL, "statmeta.registry.entries"},
		{config.NamingFormatUnderscore, protocolOTEL, "statmeta_registry_entries"},
		{config.NamingFormatDot, protocolPrometheus, "statmeta.registry.entries"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, metricName(tt.format, tt.p, registryEntriesParts...))
	}
}

func TestGroupEntries(t *testing.T) {
	groups := groupEntries(metric.Build(nil, nil))

	got := make(map[string]int64)
	var total int64
	for _, g := range groups {
		got[g.kind.String()+"/"+string(g.unit)] = g.count
		total += g.count
	}

	assert.NotContains(t, got, "?/?")
	assert.Equal(t, int64(1204), got["counter/bytes"])
	assert.Equal(t, int64(14), got["counter/entries"])
	assert.Equal(t, int64(3), got["gauge/microseconds"])
	assert.Equal(t, int64(16), got["gauge/operations"])
	assert.Equal(t, int64(1597), total)

	assert.Equal(t, metric.KindCounter, groups[0].kind)
}

func TestPrometheusDiagnosticEvents(t *testing.T) {
	events := diag.NewCounter()
	reg := metric.Build(nil, events)
	reg.Lookup("does not exist")
	reg.Lookup("neither does this")

	promRegistry := createPrometheusRegistry(reg, events, config.InternalMetricsConfig{Format: config.NamingFormatNative})

	expected := `
# HELP statmeta_diagnostic_events_total Diagnostic events raised by suffix resolution and statistic lookups
# TYPE statmeta_diagnostic_events_total counter
statmeta_diagnostic_events_total{kind="duplicate_metric"} 0
statmeta_diagnostic_events_total{kind="reserved_metric"} 0
statmeta_diagnostic_events_total{kind="unit_override"} 0
statmeta_diagnostic_events_total{kind="unknown_metric"} 2
statmeta_diagnostic_events_total{kind="unknown_unit"} 0
`
	require.NoError(t, testutil.GatherAndCompare(promRegistry, strings.NewReader(expected), "statmeta_diagnostic_events_total"))
}

func TestPrometheusRegistryEntries(t *testing.T) {
	reg := metric.Build(nil, nil)
	promRegistry := createPrometheusRegistry(reg, nil, config.InternalMetricsConfig{Format: config.NamingFormatNative})

	families, err := promRegistry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1, "events family is omitted without a counter")

	got := make(map[string]float64)
	for _, m := range families[0].GetMetric() {
		var kind, u string
		for _, lp := range m.GetLabel() {
			switch lp.GetName() {
			case "kind":
				kind = lp.GetValue()
			case "unit":
				u = lp.GetValue()
			}
		}
		got[kind+"/"+u] = m.GetGauge().GetValue()
	}

	assert.Equal(t, "statmeta_registry_entries", families[0].GetName())
	assert.Equal(t, float64(1204), got["counter/bytes"])
	assert.Equal(t, float64(2), got["counter/context switches"])
	assert.NotContains(t, got, "?/?")
}

func TestPrometheusInternalMetrics(t *testing.T) {
	reg := metric.Build(nil, nil)
	promRegistry := createPrometheusRegistry(reg, diag.NewCounter(), config.InternalMetricsConfig{
		Enabled: true,
		Format:  config.NamingFormatNative,
	})

	count, err := testutil.GatherAndCount(promRegistry, "go_goroutines")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusExporterHandler(t *testing.T) {
	events := diag.NewCounter()
	reg := metric.Build(nil, events)

	e := NewPrometheusExporter(
		&config.PrometheusExportConfig{Port: config.DefaultPrometheusPort, Path: "/metrics"},
		config.InternalMetricsConfig{Format: config.NamingFormatNative},
		reg,
		events,
	)

	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `statmeta_registry_entries{kind="gauge",unit="tasks"} 32`)

	rec = httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
