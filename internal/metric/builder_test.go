package metric

import (
	"testing"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderHoldsFallback(t *testing.T) {
	r := NewBuilder(nil, nil).Build()

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, Fallback, r.Lookup("anything"))
}

func TestInsertResolvesSuffix(t *testing.T) {
	b := NewBuilder(unit.NewResolver(nil, nil), nil)
	b.Insert("reads_total", "reads", KindCounter)

	assert.Equal(t, Descriptor{Unit: "reads", UnitSuffix: "reads", Kind: KindCounter}, b.Build().Lookup("reads_total"))
}

func TestInsertUnknownUnit(t *testing.T) {
	var rec diag.Recorder
	b := NewBuilder(unit.NewResolver(nil, &rec), &rec)
	b.Insert("distance", "furlongs", KindGauge)

	d := b.Build().Lookup("distance")
	assert.Equal(t, unit.Name("furlongs"), d.Unit)
	assert.Equal(t, "?", d.UnitSuffix)
	assert.Equal(t, KindGauge, d.Kind)
	assert.Equal(t, 1, rec.Count(diag.KindUnknownUnit))
}

func TestInsertDuplicateLastWins(t *testing.T) {
	var rec diag.Recorder
	b := NewBuilder(nil, &rec)
	b.Insert("num_entries_with_type_6_loaded", "entries", KindCounter)
	b.Insert("num_entries_with_type_6_loaded", "keys", KindGauge)

	d := b.Build().Lookup("num_entries_with_type_6_loaded")
	assert.Equal(t, Descriptor{Unit: "keys", UnitSuffix: "keys", Kind: KindGauge}, d)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, diag.KindDuplicateMetric, events[0].Kind)
	assert.Equal(t, "num_entries_with_type_6_loaded", events[0].Subject)
}

func TestInsertFallbackIsRefused(t *testing.T) {
	var rec diag.Recorder
	b := NewBuilder(nil, &rec)
	b.Insert(FallbackName, "bytes", KindCounter)

	assert.Equal(t, Fallback, b.Build().Lookup(FallbackName))
	assert.Equal(t, 1, rec.Count(diag.KindReservedMetric))
}

func TestBuildWithExtra(t *testing.T) {
	var rec diag.Recorder
	r := Build(nil, &rec,
		Definition{Name: "custom_requests", Unit: "requests", Kind: KindCounter},
		Definition{Name: "block_cache_usage", Unit: "bytes", Kind: KindCounter},
	)

	assert.Equal(t, Descriptor{Unit: "requests", UnitSuffix: "reqs", Kind: KindCounter}, r.Lookup("custom_requests"))
	assert.Equal(t, KindCounter, r.Lookup("block_cache_usage").Kind)
	assert.Equal(t, 1, rec.Count(diag.KindDuplicateMetric))
	assert.Equal(t, len(Builtin())+2, r.Len())
}

func TestBuiltinHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Builtin() {
		assert.False(t, seen[def.Name], "duplicate builtin %q", def.Name)
		assert.NotEqual(t, FallbackName, def.Name)
		seen[def.Name] = true
	}
}
