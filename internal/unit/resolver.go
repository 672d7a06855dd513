package unit

import (
	"fmt"
	"log/slog"

	"github.com/neox5/statmeta/internal/diag"
)

// Resolver translates unit names to display suffixes.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	table map[Name]string
	sink  diag.Sink
}

// NewResolver creates a resolver over the built-in table extended with extra.
// Extra entries that replace a built-in suffix are applied and reported.
// The catch-all unit always keeps UnknownSuffix.
func NewResolver(extra map[Name]string, sink diag.Sink) *Resolver {
	if sink == nil {
		sink = diag.Discard
	}

	table := Builtin()
	for name, suffix := range extra {
		if name == Unknown {
			sink.Emit(diag.Event{
				Kind:    diag.KindUnitOverride,
				Level:   slog.LevelWarn,
				Subject: string(name),
				Message: fmt.Sprintf("catch-all unit suffix is fixed, ignoring %q", suffix),
			})
			continue
		}
		if current, exists := table[name]; exists && current != suffix {
			sink.Emit(diag.Event{
				Kind:    diag.KindUnitOverride,
				Level:   slog.LevelWarn,
				Subject: string(name),
				Message: fmt.Sprintf("unit suffix overridden: %q -> %q", current, suffix),
			})
		}
		table[name] = suffix
	}

	return &Resolver{table: table, sink: sink}
}

// Suffix returns the display suffix for name. Unrecognized units yield
// UnknownSuffix and emit an unknown_unit event.
func (r *Resolver) Suffix(name Name) string {
	if suffix, ok := r.table[name]; ok {
		return suffix
	}

	r.sink.Emit(diag.Event{
		Kind:    diag.KindUnknownUnit,
		Level:   slog.LevelInfo,
		Subject: string(name),
		Message: "unit suffix not found, add it to the suffix table",
	})
	return UnknownSuffix
}

// Known reports whether name has a suffix entry.
func (r *Resolver) Known(name Name) bool {
	_, ok := r.table[name]
	return ok
}

// Entries returns every unit and suffix, sorted by unit.
func (r *Resolver) Entries() []Entry {
	return sortedEntries(r.table)
}
