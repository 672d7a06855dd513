package config

import (
	"time"

	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
)

const (
	// API defaults
	DefaultAPIPort = 8080

	// Monitor defaults
	DefaultMonitorInterval = 5 * time.Second
)

// Config holds the complete application configuration.
type Config struct {
	Settings SettingsConfig
	Units    map[unit.Name]string
	Metrics  []metric.Definition
	API      APIConfig
	Export   ExportConfig
	Monitor  MonitorConfig
}

// APIConfig defines the lookup HTTP service.
type APIConfig struct {
	Enabled bool
	Port    int
}

// MonitorConfig defines process resource sampling.
type MonitorConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg, err := Resolve(&RawConfig{})
	if err != nil {
		// an empty raw config always resolves
		panic(err)
	}
	return cfg
}
