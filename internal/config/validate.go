package config

import (
	"fmt"
	"strings"
)

// Validate performs syntactic validation on raw config
func Validate(raw *RawConfig) error {
	return validateRawSyntax(raw)
}

// validateRawSyntax performs basic syntactic validation on raw config
func validateRawSyntax(raw *RawConfig) error {
	for name, suffix := range raw.Units {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("unit name cannot be empty")
		}
		if name == "?" {
			return fmt.Errorf("unit %q: the catch-all unit cannot be redefined", name)
		}
		if suffix == "" {
			return fmt.Errorf("unit %q: suffix cannot be empty", name)
		}
	}

	for name, m := range raw.Metrics {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("metric name cannot be empty")
		}
		if name == "?" {
			return fmt.Errorf("metric %q: name is reserved for the fallback entry", name)
		}
		if m.Unit == "" {
			return fmt.Errorf("metric %q: unit cannot be empty", name)
		}
		if m.Type == "" {
			return fmt.Errorf("metric %q: type cannot be empty", name)
		}
	}

	return nil
}
