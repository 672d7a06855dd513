package exporter

import (
	"context"
	"testing"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func testOTELConfig() *config.OTELExportConfig {
	return &config.OTELExportConfig{
		Transport: "grpc",
		Host:      "localhost",
		Port:      config.DefaultOTELPortGRPC,
		Interval:  config.IntervalConfig{Read: config.DefaultOTELReadInterval, Push: config.DefaultOTELPushInterval},
		Resource:  map[string]string{"service.name": "statmeta-test"},
	}
}

func collectOTEL(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	name, ok := rm.Resource.Set().Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, "statmeta-test", name.AsString())

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func attr(t *testing.T, set attribute.Set, key string) string {
	t.Helper()
	v, ok := set.Value(attribute.Key(key))
	require.True(t, ok, "missing attribute %s", key)
	return v.AsString()
}

func TestOTELExporterObservesRegistry(t *testing.T) {
	events := diag.NewCounter()
	reg := metric.Build(nil, events)
	reader := sdkmetric.NewManualReader()

	e, err := newOTELExporter(testOTELConfig(), config.NamingFormatNative, reg, events, reader)
	require.NoError(t, err)
	defer e.Stop()

	metrics := collectOTEL(t, reader)

	entries, ok := metrics["statmeta.registry.entries"]
	require.True(t, ok)
	gauge, ok := entries.Data.(metricdata.Gauge[int64])
	require.True(t, ok)

	got := make(map[string]int64)
	for _, dp := range gauge.DataPoints {
		got[attr(t, dp.Attributes, "kind")+"/"+attr(t, dp.Attributes, "unit")] = dp.Value
	}
	assert.Equal(t, int64(1204), got["counter/bytes"])
	assert.Equal(t, int64(3), got["gauge/microseconds"])

	_, ok = metrics["statmeta.diagnostic.events"]
	assert.True(t, ok)
}

func TestOTELExporterSamplesEvents(t *testing.T) {
	events := diag.NewCounter()
	reg := metric.Build(nil, events)
	reader := sdkmetric.NewManualReader()

	e, err := newOTELExporter(testOTELConfig(), config.NamingFormatUnderscore, reg, events, reader)
	require.NoError(t, err)
	defer e.Stop()

	reg.Lookup("missing_one")
	reg.Lookup("missing_two")

	unknownMetrics := func() int64 {
		m, ok := collectOTEL(t, reader)["statmeta_diagnostic_events"]
		require.True(t, ok)
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		assert.True(t, sum.IsMonotonic)
		for _, dp := range sum.DataPoints {
			if attr(t, dp.Attributes, "kind") == string(diag.KindUnknownMetric) {
				return dp.Value
			}
		}
		t.Fatal("unknown_metric data point missing")
		return 0
	}

	// not sampled yet
	assert.Equal(t, int64(0), unknownMetrics())

	e.sample()
	assert.Equal(t, int64(2), unknownMetrics())
}

func TestOTELExporterStartStops(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	e, err := newOTELExporter(testOTELConfig(), config.NamingFormatNative, metric.Build(nil, nil), nil, reader)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, e.Start(ctx))
}
