package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRegistryWithConfig(t *testing.T) {
	raw, err := config.ParseBytes([]byte(`
units:
  furlongs: fur
metrics:
  distance_travelled: furlongs/counter
  block_cache_usage: bytes/gauge
`))
	require.NoError(t, err)
	cfg, err := config.Resolve(raw)
	require.NoError(t, err)

	var rec diag.Recorder
	resolver, reg := NewRegistry(cfg, &rec)

	assert.Equal(t, "fur", resolver.Suffix("furlongs"))
	assert.Equal(t, metric.Descriptor{Unit: unit.Name("furlongs"), UnitSuffix: "fur", Kind: metric.KindCounter}, reg.Lookup("distance_travelled"))
	assert.Equal(t, 1, rec.Count(diag.KindDuplicateMetric))
	assert.Equal(t, 0, rec.Count(diag.KindUnknownUnit))
}

func TestNewDefault(t *testing.T) {
	a, err := New(config.Default(), discardLogger())
	require.NoError(t, err)

	require.NotNil(t, a.Server)
	assert.Nil(t, a.PrometheusExporter)
	assert.Nil(t, a.OTELExporter)
	assert.Nil(t, a.Monitor)
	assert.Equal(t, 1598, a.Registry.Len())

	a.Registry.Lookup("missing")
	assert.Equal(t, uint64(1), a.Events.Get(diag.KindUnknownMetric))
}

func TestNewWiresInstrumentation(t *testing.T) {
	raw, err := config.ParseBytes([]byte(`
settings:
  internal_metrics:
    enabled: true
export:
  prometheus:
    enabled: true
monitor:
  enabled: true
`))
	require.NoError(t, err)
	cfg, err := config.Resolve(raw)
	require.NoError(t, err)

	a, err := New(cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, a.PrometheusExporter)
	require.NotNil(t, a.Monitor)

	rec := httptest.NewRecorder()
	a.Server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/metrics/does_not_exist", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	count, err := testutil.GatherAndCount(a.PrometheusExporter.Gatherer(), "statmeta_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// monitor has not run yet
	rec = httptest.NewRecorder()
	a.Server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
