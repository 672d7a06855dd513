package metric

import (
	"iter"
	"log/slog"
	"sort"

	"github.com/neox5/statmeta/internal/diag"
)

// Registry maps metric names to descriptors. It is immutable once built and
// safe for concurrent lookups.
type Registry struct {
	entries map[string]Descriptor
	sink    diag.Sink
}

// Lookup returns the descriptor registered for name. Unrecognized names emit
// an unknown_metric event and yield the fallback descriptor.
func (r *Registry) Lookup(name string) Descriptor {
	if d, ok := r.entries[name]; ok {
		return d
	}

	r.sink.Emit(diag.Event{
		Kind:    diag.KindUnknownMetric,
		Level:   slog.LevelInfo,
		Subject: name,
		Message: "statistic not found, add it to the metric table",
	})
	return r.entries[FallbackName]
}

// Has reports whether name is registered, without emitting diagnostics.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Len returns the number of entries, including the fallback entry.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns all registered names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All iterates over every entry in name order.
func (r *Registry) All() iter.Seq2[string, Descriptor] {
	return func(yield func(string, Descriptor) bool) {
		for _, name := range r.Names() {
			if !yield(name, r.entries[name]) {
				return
			}
		}
	}
}
