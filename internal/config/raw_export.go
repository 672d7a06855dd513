package config

import (
	"time"

	"go.yaml.in/yaml/v4"
)

// RawExportConfig lists the optional exporters. A nil block or enabled: false
// leaves that exporter off.
type RawExportConfig struct {
	Prometheus *RawPrometheusExportConfig `yaml:"prometheus,omitempty"`
	OTEL       *RawOTELExportConfig       `yaml:"otel,omitempty"`
}

// RawPrometheusExportConfig is the scrape endpoint serving registry gauges
type RawPrometheusExportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// RawOTELExportConfig configures OTLP push of registry gauges and diagnostic counts
type RawOTELExportConfig struct {
	Enabled   bool              `yaml:"enabled"`
	Transport string            `yaml:"transport"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	Interval  RawIntervalConfig `yaml:"interval"`
	Resource  map[string]string `yaml:"resource,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty"`
}

// RawIntervalConfig holds the diagnostic sampling (read) and OTLP push intervals
type RawIntervalConfig struct {
	Read time.Duration
	Push time.Duration
}

// UnmarshalYAML accepts a single duration for both intervals or a read/push mapping
func (i *RawIntervalConfig) UnmarshalYAML(value *yaml.Node) error {
	var both time.Duration
	if err := value.Decode(&both); err == nil {
		i.Read, i.Push = both, both
		return nil
	}

	// read/push mapping
	type intervalConfig struct {
		Read time.Duration `yaml:"read"`
		Push time.Duration `yaml:"push"`
	}
	var detailed intervalConfig
	if err := value.Decode(&detailed); err != nil {
		return err
	}
	i.Read = detailed.Read
	i.Push = detailed.Push
	return nil
}
