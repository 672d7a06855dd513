package config

import (
	"fmt"
	"log/slog"
)

// SettingsConfig holds general application settings.
type SettingsConfig struct {
	LogLevel        slog.Level
	LogFormat       LogFormat
	InternalMetrics InternalMetricsConfig
}

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// InternalMetricsConfig controls statmeta's self-monitoring metrics.
type InternalMetricsConfig struct {
	Enabled bool
	Format  NamingFormat
}

// NamingFormat defines the naming convention for internal metrics.
type NamingFormat string

const (
	// NamingFormatNative uses each exporter's native convention
	// (underscore for Prometheus, dot for OTEL)
	NamingFormatNative NamingFormat = "native"

	// NamingFormatUnderscore forces underscore-separated names
	NamingFormatUnderscore NamingFormat = "underscore"

	// NamingFormatDot forces dot-separated names
	NamingFormatDot NamingFormat = "dot"
)

// resolveSettings applies defaults and validates settings configuration.
func resolveSettings(raw *RawSettingsConfig) (SettingsConfig, error) {
	var s SettingsConfig

	level := raw.LogLevel
	if level == "" {
		level = "info"
	}
	if err := s.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return s, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", raw.LogLevel)
	}

	switch LogFormat(raw.LogFormat) {
	case "", LogFormatText:
		s.LogFormat = LogFormatText
	case LogFormatJSON:
		s.LogFormat = LogFormatJSON
	default:
		return s, fmt.Errorf("invalid log format: %s (must be text or json)", raw.LogFormat)
	}

	s.InternalMetrics.Enabled = raw.InternalMetrics.Enabled
	s.InternalMetrics.Format = NamingFormat(raw.InternalMetrics.Format)
	if s.InternalMetrics.Format == "" {
		s.InternalMetrics.Format = NamingFormatNative
	}

	switch s.InternalMetrics.Format {
	case NamingFormatNative, NamingFormatUnderscore, NamingFormatDot:
		return s, nil
	default:
		return s, fmt.Errorf("invalid naming format: %s (must be native, underscore, or dot)", s.InternalMetrics.Format)
	}
}
