package config

import (
	"fmt"
	"log/slog"
)

// Load parses the statmeta configuration at path and applies defaults.
// Errors name the file so a bad --config flag is easy to spot.
func Load(path string) (*Config, error) {
	raw, err := Parse(path)
	if err != nil {
		return nil, fmt.Errorf("statmeta config %s: %w", path, err)
	}

	cfg, err := Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("statmeta config %s: invalid settings: %w", path, err)
	}

	slog.Debug("configuration resolved",
		"path", path,
		"units", len(cfg.Units),
		"metrics", len(cfg.Metrics))

	return cfg, nil
}
