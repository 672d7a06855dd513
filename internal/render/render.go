// Package render formats raw metric samples with the unit metadata held by
// the metric registry.
package render

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/neox5/statmeta/internal/metric"
)

// Sample is a raw metric value as scraped from the monitored system.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Line is a sample annotated with its descriptor.
type Line struct {
	Name       string
	Labels     map[string]string
	Value      float64
	Display    string
	Descriptor metric.Descriptor
}

// Renderer annotates samples through a registry.
type Renderer struct {
	registry *metric.Registry
	compact  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompact toggles SI compaction of values >= 1000.
func WithCompact(compact bool) Option {
	return func(r *Renderer) {
		r.compact = compact
	}
}

// New creates a renderer over registry. Compaction is on by default.
func New(registry *metric.Registry, opts ...Option) *Renderer {
	r := &Renderer{registry: registry, compact: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render looks s up and formats its value with the unit suffix.
func (r *Renderer) Render(s Sample) Line {
	d := r.registry.Lookup(s.Name)
	return Line{
		Name:       s.Name,
		Labels:     s.Labels,
		Value:      s.Value,
		Display:    r.FormatValue(s.Value, d.UnitSuffix),
		Descriptor: d,
	}
}

// RenderAll renders every sample in order.
func (r *Renderer) RenderAll(samples []Sample) []Line {
	lines := make([]Line, len(samples))
	for i, s := range samples {
		lines[i] = r.Render(s)
	}
	return lines
}

// FormatValue renders v followed by suffix, e.g. "1.50 K reqs".
func (r *Renderer) FormatValue(v float64, suffix string) string {
	return strings.TrimSpace(r.formatNumber(v) + " " + suffix)
}

func (r *Renderer) formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if !r.compact || math.Abs(v) < 1000 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	scaled, prefix := humanize.ComputeSI(v)

	// 999.999k prints as 1000.00 unless carried into the next prefix
	scaled = math.Round(scaled*100) / 100
	if math.Abs(scaled) >= 1000 {
		if i := slices.Index(siPrefixes, prefix); i >= 0 && i+1 < len(siPrefixes) {
			scaled /= 1000
			prefix = siPrefixes[i+1]
		}
	}
	return fmt.Sprintf("%.2f %s", scaled, strings.ToUpper(prefix))
}

// siPrefixes lists the prefixes humanize.ComputeSI returns above one.
var siPrefixes = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}
