package config

// RawSettingsConfig holds general application settings
type RawSettingsConfig struct {
	LogLevel        string                   `yaml:"log_level"`
	LogFormat       string                   `yaml:"log_format"`
	InternalMetrics RawInternalMetricsConfig `yaml:"internal_metrics"`
}

// RawInternalMetricsConfig controls statmeta's self-monitoring metrics
type RawInternalMetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
}
