package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) (*Server, *diag.Recorder) {
	t.Helper()

	var rec diag.Recorder
	resolver := unit.NewResolver(nil, &rec)
	reg := metric.Build(resolver, &rec)
	rec.Reset()

	s, err := New(0, reg, resolver, opts...)
	require.NoError(t, err)
	return s, &rec
}

func get(t *testing.T, h http.Handler, path string, v any) int {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if v != nil && rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}
	return rec.Code
}

func TestLookupKnown(t *testing.T) {
	s, rec := newTestServer(t)

	var got descriptorResponse
	code := get(t, s.Handler(), "/v1/metrics/hybrid_clock_skew", &got)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, descriptorResponse{
		Name:       "hybrid_clock_skew",
		Unit:       "microseconds",
		UnitSuffix: "us",
		StatType:   metric.KindGauge,
		Known:      true,
	}, got)
	assert.Empty(t, rec.Events())
}

func TestLookupUnknown(t *testing.T) {
	s, rec := newTestServer(t)

	var got descriptorResponse
	code := get(t, s.Handler(), "/v1/metrics/does%20not%20exist", &got)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "does not exist", got.Name)
	assert.Equal(t, "?", got.Unit)
	assert.Equal(t, "?", got.UnitSuffix)
	assert.Equal(t, metric.KindUnknown, got.StatType)
	assert.False(t, got.Known)
	assert.Equal(t, 1, rec.Count(diag.KindUnknownMetric))
}

func TestLookupFallbackName(t *testing.T) {
	s, _ := newTestServer(t)

	var got descriptorResponse
	get(t, s.Handler(), "/v1/metrics/%3F", &got)

	assert.Equal(t, "?", got.Name)
	assert.True(t, got.Known)
}

func TestList(t *testing.T) {
	s, _ := newTestServer(t)

	var got []descriptorResponse
	code := get(t, s.Handler(), "/v1/metrics", &got)

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, got, 1598)
	assert.Equal(t, "?", got[0].Name)
}

func TestUnits(t *testing.T) {
	s, _ := newTestServer(t)

	var got []unitResponse
	get(t, s.Handler(), "/v1/units", &got)

	require.Len(t, got, 37)
	assert.Contains(t, got, unitResponse{Unit: "context switches", Suffix: "csws"})
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	var got map[string]any
	code := get(t, s.Handler(), "/healthz", &got)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, float64(1598), got["entries"])
}

func TestStatus(t *testing.T) {
	s, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/v1/status", nil))

	s, _ = newTestServer(t, WithStatus(func() (any, error) {
		return map[string]int{"goroutines": 3}, nil
	}))
	var got map[string]int
	assert.Equal(t, http.StatusOK, get(t, s.Handler(), "/v1/status", &got))
	assert.Equal(t, 3, got["goroutines"])

	s, _ = newTestServer(t, WithStatus(func() (any, error) {
		return nil, errors.New("warming up")
	}))
	var errResp errorResponse
	assert.Equal(t, http.StatusServiceUnavailable, get(t, s.Handler(), "/v1/status", &errResp))
	assert.Equal(t, "warming up", errResp.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/units", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInstrumentation(t *testing.T) {
	promRegistry := prometheus.NewRegistry()
	s, _ := newTestServer(t, WithInstrumentation(promRegistry))

	get(t, s.Handler(), "/healthz", new(map[string]any))
	get(t, s.Handler(), "/v1/metrics/block_cache_usage", new(descriptorResponse))

	count, err := testutil.GatherAndCount(promRegistry, "statmeta_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "both requests share code=200,method=get")

	// a second server on the same registerer cannot register twice
	_, err = New(0, metric.Build(nil, nil), unit.NewResolver(nil, nil), WithInstrumentation(promRegistry))
	assert.Error(t, err)
}
