package config

import (
	"fmt"
	"sort"

	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
)

// Resolve applies defaults, performs semantic validation and builds the final config
func Resolve(raw *RawConfig) (*Config, error) {
	settings, err := resolveSettings(&raw.Settings)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	units := make(map[unit.Name]string, len(raw.Units))
	for name, suffix := range raw.Units {
		units[unit.Name(name)] = suffix
	}

	metrics, err := resolveMetrics(raw.Metrics, units)
	if err != nil {
		return nil, err
	}

	export, err := resolveExport(&raw.Export)
	if err != nil {
		return nil, err
	}

	api := APIConfig{Enabled: true, Port: raw.API.Port}
	if raw.API.Enabled != nil {
		api.Enabled = *raw.API.Enabled
	}
	if api.Port == 0 {
		api.Port = DefaultAPIPort
	}
	if err := validatePort(api.Port); err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	mon := MonitorConfig{Enabled: raw.Monitor.Enabled, Interval: raw.Monitor.Interval}
	if mon.Interval == 0 {
		mon.Interval = DefaultMonitorInterval
	}
	if mon.Interval < 0 {
		return nil, fmt.Errorf("monitor: interval must be positive")
	}

	return &Config{
		Settings: settings,
		Units:    units,
		Metrics:  metrics,
		API:      api,
		Export:   export,
		Monitor:  mon,
	}, nil
}

// resolveMetrics converts extra metric entries to definitions in name order.
func resolveMetrics(raw map[string]RawMetricConfig, units map[unit.Name]string) ([]metric.Definition, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]metric.Definition, 0, len(names))
	for _, name := range names {
		m := raw[name]

		kind, err := metric.ParseKind(m.Type)
		if err != nil || kind == metric.KindUnknown {
			return nil, fmt.Errorf("metric %q: invalid type %q (must be counter or gauge)", name, m.Type)
		}

		u := unit.Name(m.Unit)
		if !unit.IsBuiltin(u) {
			if _, ok := units[u]; !ok {
				return nil, fmt.Errorf("metric %q: unit %q has no suffix, add it under units", name, m.Unit)
			}
		}

		defs = append(defs, metric.Definition{Name: name, Unit: u, Kind: kind})
	}

	return defs, nil
}
