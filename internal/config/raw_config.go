package config

import "time"

// RawConfig represents unparsed YAML structure
type RawConfig struct {
	Settings RawSettingsConfig          `yaml:"settings"`
	Units    map[string]string          `yaml:"units,omitempty"`
	Metrics  map[string]RawMetricConfig `yaml:"metrics,omitempty"`
	API      RawAPIConfig               `yaml:"api"`
	Export   RawExportConfig            `yaml:"export"`
	Monitor  RawMonitorConfig           `yaml:"monitor"`
}

// RawAPIConfig defines the lookup HTTP service
type RawAPIConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Port    int   `yaml:"port"`
}

// RawMonitorConfig defines process resource sampling
type RawMonitorConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}
