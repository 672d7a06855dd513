package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, slog.LevelInfo, cfg.Settings.LogLevel)
	assert.Equal(t, LogFormatText, cfg.Settings.LogFormat)
	assert.Equal(t, NamingFormatNative, cfg.Settings.InternalMetrics.Format)
	assert.True(t, cfg.API.Enabled)
	assert.Equal(t, DefaultAPIPort, cfg.API.Port)
	assert.Nil(t, cfg.Export.Prometheus)
	assert.Nil(t, cfg.Export.OTEL)
	assert.False(t, cfg.Monitor.Enabled)
	assert.Equal(t, DefaultMonitorInterval, cfg.Monitor.Interval)
	assert.Empty(t, cfg.Metrics)
}

func TestParseBytesFull(t *testing.T) {
	raw, err := ParseBytes([]byte(`
settings:
  log_level: debug
  log_format: json
  internal_metrics:
    enabled: true
    format: dot
units:
  furlongs: fur
metrics:
  distance_travelled: furlongs/counter
  custom_queue_depth:
    unit: tasks
    type: gauge
api:
  enabled: false
  port: 9000
export:
  prometheus:
    enabled: true
  otel:
    enabled: true
    transport: http
    interval:
      read: 2s
      push: 30s
    resource:
      service.name: ybstats
monitor:
  enabled: true
  interval: 1m
`))
	require.NoError(t, err)

	cfg, err := Resolve(raw)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Settings.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.Settings.LogFormat)
	assert.Equal(t, NamingFormatDot, cfg.Settings.InternalMetrics.Format)
	assert.True(t, cfg.Settings.InternalMetrics.Enabled)

	assert.Equal(t, map[unit.Name]string{"furlongs": "fur"}, cfg.Units)
	assert.Equal(t, []metric.Definition{
		{Name: "custom_queue_depth", Unit: "tasks", Kind: metric.KindGauge},
		{Name: "distance_travelled", Unit: "furlongs", Kind: metric.KindCounter},
	}, cfg.Metrics)

	assert.False(t, cfg.API.Enabled)
	assert.Equal(t, 9000, cfg.API.Port)

	require.NotNil(t, cfg.Export.Prometheus)
	assert.Equal(t, DefaultPrometheusPort, cfg.Export.Prometheus.Port)
	assert.Equal(t, DefaultPrometheusPath, cfg.Export.Prometheus.Path)

	require.NotNil(t, cfg.Export.OTEL)
	assert.Equal(t, "http", cfg.Export.OTEL.Transport)
	assert.Equal(t, "localhost:4318", cfg.Export.OTEL.GetEndpoint())
	assert.Equal(t, 2*time.Second, cfg.Export.OTEL.Interval.Read)
	assert.Equal(t, 30*time.Second, cfg.Export.OTEL.Interval.Push)
	assert.Equal(t, "ybstats", cfg.Export.OTEL.Resource["service.name"])
	assert.Equal(t, DefaultServiceVersion, cfg.Export.OTEL.Resource["service.version"])

	assert.True(t, cfg.Monitor.Enabled)
	assert.Equal(t, time.Minute, cfg.Monitor.Interval)
}

func TestOTELSimpleInterval(t *testing.T) {
	raw, err := ParseBytes([]byte(`
export:
  otel:
    enabled: true
    interval: 15s
`))
	require.NoError(t, err)

	cfg, err := Resolve(raw)
	require.NoError(t, err)

	assert.Equal(t, "grpc", cfg.Export.OTEL.Transport)
	assert.Equal(t, DefaultOTELPortGRPC, cfg.Export.OTEL.Port)
	assert.Equal(t, 15*time.Second, cfg.Export.OTEL.Interval.Read)
	assert.Equal(t, 15*time.Second, cfg.Export.OTEL.Interval.Push)
}

func TestDisabledExportersAreNil(t *testing.T) {
	raw, err := ParseBytes([]byte(`
export:
  prometheus:
    enabled: false
    port: 99999
`))
	require.NoError(t, err)

	cfg, err := Resolve(raw)
	require.NoError(t, err)
	assert.Nil(t, cfg.Export.Prometheus)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad short form", "metrics:\n  x: bytes\n"},
		{"trailing slash", "metrics:\n  x: bytes/\n"},
		{"reserved name", "metrics:\n  \"?\": bytes/counter\n"},
		{"empty unit", "metrics:\n  x:\n    type: gauge\n"},
		{"empty type", "metrics:\n  x:\n    unit: bytes\n"},
		{"empty suffix", "units:\n  furlongs: \"\"\n"},
		{"catch-all unit", "units:\n  \"?\": unk\n"},
		{"not yaml", "settings: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown type", "metrics:\n  x: bytes/histogram\n"},
		{"unknown kind marker", "metrics:\n  x: bytes/?\n"},
		{"unit without suffix", "metrics:\n  x: furlongs/counter\n"},
		{"log level", "settings:\n  log_level: loud\n"},
		{"log format", "settings:\n  log_format: xml\n"},
		{"naming format", "settings:\n  internal_metrics:\n    format: camel\n"},
		{"prometheus port", "export:\n  prometheus:\n    enabled: true\n    port: 70000\n"},
		{"prometheus path", "export:\n  prometheus:\n    enabled: true\n    path: metrics\n"},
		{"otel transport", "export:\n  otel:\n    enabled: true\n    transport: udp\n"},
		{"api port", "api:\n  port: -1\n"},
		{"monitor interval", "monitor:\n  interval: -5s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseBytes([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = Resolve(raw)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statmeta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  ysql_conn_mgr_active: connections/gauge\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Metrics, 1)
	assert.Equal(t, unit.Name("connections"), cfg.Metrics[0].Unit)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units:\n  \"?\": unk\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "catch-all")
}
