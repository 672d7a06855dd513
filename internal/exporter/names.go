package exporter

import (
	"sort"
	"strings"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
)

// Exported metric name parts, joined per naming format.
var (
	registryEntriesParts  = []string{"statmeta", "registry", "entries"}
	diagnosticEventsParts = []string{"statmeta", "diagnostic", "events"}
)

// protocol selects the native separator of an exporter.
type protocol int

const (
	protocolPrometheus protocol = iota
	protocolOTEL
)

// metricName joins parts using the separator selected by format.
// Native format uses underscore for Prometheus and dot for OTEL.
func metricName(format config.NamingFormat, p protocol, parts ...string) string {
	sep := "_"
	switch format {
	case config.NamingFormatDot:
		sep = "."
	case config.NamingFormatUnderscore:
		sep = "_"
	default:
		if p == protocolOTEL {
			sep = "."
		}
	}
	return strings.Join(parts, sep)
}

// entryGroup counts registry entries sharing a kind and unit.
type entryGroup struct {
	kind  metric.Kind
	unit  unit.Name
	count int64
}

// groupEntries summarizes reg by kind and unit, sorted for stable output.
// The fallback entry is not a statistic and is left out.
func groupEntries(reg *metric.Registry) []entryGroup {
	type key struct {
		kind metric.Kind
		unit unit.Name
	}
	counts := make(map[key]int64)
	for name, d := range reg.All() {
		if name == metric.FallbackName {
			continue
		}
		counts[key{d.Kind, d.Unit}]++
	}

	groups := make([]entryGroup, 0, len(counts))
	for k, n := range counts {
		groups = append(groups, entryGroup{kind: k.kind, unit: k.unit, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].kind != groups[j].kind {
			return groups[i].kind < groups[j].kind
		}
		return groups[i].unit < groups[j].unit
	})
	return groups
}
