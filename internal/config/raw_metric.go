package config

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// RawMetricConfig describes an extra statistic.
// Short form: "bytes/counter". Full form: {unit: bytes, type: counter}.
type RawMetricConfig struct {
	Unit string `yaml:"unit"`
	Type string `yaml:"type"`
}

// UnmarshalYAML handles both string and object forms for metric entries.
func (m *RawMetricConfig) UnmarshalYAML(value *yaml.Node) error {
	// Try string form first (short form)
	var short string
	if err := value.Decode(&short); err == nil {
		idx := strings.LastIndex(short, "/")
		if idx <= 0 || idx == len(short)-1 {
			return fmt.Errorf("invalid metric short form %q (expected unit/type)", short)
		}
		m.Unit = strings.TrimSpace(short[:idx])
		m.Type = strings.TrimSpace(short[idx+1:])
		return nil
	}

	// Fall back to full form (object)
	type rawMetricConfig RawMetricConfig // Avoid recursion
	var full rawMetricConfig
	if err := value.Decode(&full); err != nil {
		return err
	}
	*m = RawMetricConfig(full)
	return nil
}
