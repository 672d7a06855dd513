package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Prometheus defaults
	DefaultPrometheusPort = 9090
	DefaultPrometheusPath = "/metrics"

	// OTEL defaults
	DefaultOTELReadInterval = 10 * time.Second
	DefaultOTELPushInterval = 10 * time.Second
	DefaultOTELTransport    = "grpc"
	DefaultOTELHost         = "localhost"
	DefaultOTELPortGRPC     = 4317
	DefaultOTELPortHTTP     = 4318
	DefaultServiceName      = "statmeta"
	DefaultServiceVersion   = "dev"
)

// ExportConfig defines how registry statistics are exposed.
// Nil exporters are disabled.
type ExportConfig struct {
	Prometheus *PrometheusExportConfig
	OTEL       *OTELExportConfig
}

// PrometheusExportConfig defines Prometheus pull endpoint settings.
type PrometheusExportConfig struct {
	Port int
	Path string
}

// OTELExportConfig defines OTEL push settings.
type OTELExportConfig struct {
	Transport string
	Host      string
	Port      int
	Interval  IntervalConfig
	Resource  map[string]string
	Headers   map[string]string
}

// IntervalConfig defines read and push intervals for OTEL.
type IntervalConfig struct {
	Read time.Duration
	Push time.Duration
}

// GetEndpoint returns the full endpoint address.
func (c *OTELExportConfig) GetEndpoint() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// resolveExport applies defaults and validates export configuration.
func resolveExport(raw *RawExportConfig) (ExportConfig, error) {
	var e ExportConfig

	if raw.Prometheus != nil && raw.Prometheus.Enabled {
		prom, err := resolvePrometheus(raw.Prometheus)
		if err != nil {
			return e, fmt.Errorf("export.prometheus: %w", err)
		}
		e.Prometheus = prom
	}

	if raw.OTEL != nil && raw.OTEL.Enabled {
		otel, err := resolveOTEL(raw.OTEL)
		if err != nil {
			return e, fmt.Errorf("export.otel: %w", err)
		}
		e.OTEL = otel
	}

	return e, nil
}

func resolvePrometheus(raw *RawPrometheusExportConfig) (*PrometheusExportConfig, error) {
	c := &PrometheusExportConfig{
		Port: raw.Port,
		Path: raw.Path,
	}

	// Apply defaults
	if c.Port == 0 {
		c.Port = DefaultPrometheusPort
	}
	if c.Path == "" {
		c.Path = DefaultPrometheusPath
	}

	if err := validatePort(c.Port); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(c.Path, "/") {
		return nil, fmt.Errorf("path must start with '/': %s", c.Path)
	}

	return c, nil
}

func resolveOTEL(raw *RawOTELExportConfig) (*OTELExportConfig, error) {
	c := &OTELExportConfig{
		Transport: raw.Transport,
		Host:      raw.Host,
		Port:      raw.Port,
		Interval:  IntervalConfig{Read: raw.Interval.Read, Push: raw.Interval.Push},
		Resource:  make(map[string]string, len(raw.Resource)+2),
		Headers:   raw.Headers,
	}

	// Apply transport default
	if c.Transport == "" {
		c.Transport = DefaultOTELTransport
	}
	if c.Transport != "grpc" && c.Transport != "http" {
		return nil, fmt.Errorf("invalid transport: %s (must be grpc or http)", c.Transport)
	}

	if c.Host == "" {
		c.Host = DefaultOTELHost
	}

	// Apply port default based on transport
	if c.Port == 0 {
		if c.Transport == "grpc" {
			c.Port = DefaultOTELPortGRPC
		} else {
			c.Port = DefaultOTELPortHTTP
		}
	}
	if err := validatePort(c.Port); err != nil {
		return nil, err
	}

	if c.Interval.Read == 0 {
		c.Interval.Read = DefaultOTELReadInterval
	}
	if c.Interval.Push == 0 {
		c.Interval.Push = DefaultOTELPushInterval
	}
	if c.Interval.Read < 0 || c.Interval.Push < 0 {
		return nil, fmt.Errorf("intervals must be positive")
	}

	for k, v := range raw.Resource {
		c.Resource[k] = v
	}
	if _, exists := c.Resource["service.name"]; !exists {
		c.Resource["service.name"] = DefaultServiceName
	}
	if _, exists := c.Resource["service.version"]; !exists {
		c.Resource["service.version"] = DefaultServiceVersion
	}

	return c, nil
}

func validatePort(port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	return nil
}
