package metric

import (
	"fmt"
	"log/slog"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/unit"
)

// Builder populates a Registry. A Builder must not be used after Build.
type Builder struct {
	resolver *unit.Resolver
	sink     diag.Sink
	entries  map[string]Descriptor
}

// NewBuilder creates a builder holding only the fallback entry.
func NewBuilder(resolver *unit.Resolver, sink diag.Sink) *Builder {
	if sink == nil {
		sink = diag.Discard
	}
	if resolver == nil {
		resolver = unit.NewResolver(nil, sink)
	}

	return &Builder{
		resolver: resolver,
		sink:     sink,
		entries: map[string]Descriptor{
			FallbackName: Fallback,
		},
	}
}

// Insert registers name with the suffix resolved from u. A repeated name
// replaces the earlier descriptor and emits a duplicate_metric event. The
// fallback name cannot be redefined.
func (b *Builder) Insert(name string, u unit.Name, kind Kind) {
	if name == FallbackName {
		b.sink.Emit(diag.Event{
			Kind:    diag.KindReservedMetric,
			Level:   slog.LevelWarn,
			Subject: name,
			Message: "fallback entry is reserved, insert ignored",
		})
		return
	}

	d := Descriptor{
		Unit:       u,
		UnitSuffix: b.resolver.Suffix(u),
		Kind:       kind,
	}

	if prev, exists := b.entries[name]; exists {
		b.sink.Emit(diag.Event{
			Kind:    diag.KindDuplicateMetric,
			Level:   slog.LevelWarn,
			Subject: name,
			Message: fmt.Sprintf("duplicate statistic replaced: %s/%s -> %s/%s", prev.Unit, prev.Kind, d.Unit, d.Kind),
		})
	}

	b.entries[name] = d
}

// InsertAll inserts every definition in order.
func (b *Builder) InsertAll(defs ...Definition) {
	for _, def := range defs {
		b.Insert(def.Name, def.Unit, def.Kind)
	}
}

// Build hands the collected entries over to a new Registry.
func (b *Builder) Build() *Registry {
	r := &Registry{
		entries: b.entries,
		sink:    b.sink,
	}
	b.entries = nil
	return r
}

// Build creates the registry of all compiled-in statistics followed by extra.
func Build(resolver *unit.Resolver, sink diag.Sink, extra ...Definition) *Registry {
	b := NewBuilder(resolver, sink)
	b.InsertAll(Builtin()...)
	b.InsertAll(extra...)

	r := b.Build()
	slog.Debug("metric registry built",
		"builtin", len(builtin),
		"extra", len(extra),
		"entries", r.Len())
	return r
}

// Builtin returns the compiled-in definitions in table order.
func Builtin() []Definition {
	defs := make([]Definition, len(builtin))
	for i, e := range builtin {
		defs[i] = Definition{Name: e.name, Unit: unit.Name(e.unit), Kind: e.kind}
	}
	return defs
}
