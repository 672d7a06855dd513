package metric

import (
	"sync"
	"testing"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnown(t *testing.T) {
	r := Build(nil, nil)

	tests := []struct {
		name string
		want Descriptor
	}{
		{"all_operations_inflight", Descriptor{Unit: "operations", UnitSuffix: "ops", Kind: KindGauge}},
		{"rocksdb_block_cache_hit", Descriptor{Unit: "blocks", UnitSuffix: "blocks", Kind: KindCounter}},
		{"hybrid_clock_skew", Descriptor{Unit: "microseconds", UnitSuffix: "us", Kind: KindGauge}},
		{"voluntary_context_switches", Descriptor{Unit: "context switches", UnitSuffix: "csws", Kind: KindCounter}},
		{"transaction_pool_cache_queries", Descriptor{Unit: "queries", UnitSuffix: "qry", Kind: KindCounter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Lookup(tt.name))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	var rec diag.Recorder
	r := Build(nil, &rec)
	rec.Reset()

	for _, name := range []string{"does not exist", "", "rocksdb_block_cache_hit ", "\x00garbage"} {
		d := r.Lookup(name)
		assert.Equal(t, unit.Unknown, d.Unit)
		assert.Equal(t, "?", d.UnitSuffix)
		assert.Equal(t, "?", d.Kind.String())
	}

	assert.Equal(t, 4, rec.Count(diag.KindUnknownMetric))
	assert.Equal(t, "does not exist", rec.Events()[0].Subject)
}

func TestLookupFallbackEntry(t *testing.T) {
	var rec diag.Recorder
	r := Build(nil, &rec)
	rec.Reset()

	assert.Equal(t, Fallback, r.Lookup(FallbackName))
	assert.True(t, r.Has(FallbackName))
	assert.Empty(t, rec.Events(), "the fallback entry is a regular hit")
}

func TestLookupIdempotent(t *testing.T) {
	r := Build(nil, nil)

	first := r.Lookup("block_cache_usage")
	for range 10 {
		assert.Equal(t, first, r.Lookup("block_cache_usage"))
	}
}

func TestLookupConcurrent(t *testing.T) {
	var rec diag.Recorder
	r := Build(nil, &rec)
	rec.Reset()

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			for _, name := range r.Names() {
				_ = r.Lookup(name)
			}
			_ = r.Lookup("missing")
		})
	}
	wg.Wait()

	assert.Equal(t, 32, rec.Count(diag.KindUnknownMetric))
}

func TestBuiltinDataIsConsistent(t *testing.T) {
	var rec diag.Recorder
	resolver := unit.NewResolver(nil, &rec)
	r := Build(resolver, &rec)

	assert.Empty(t, rec.Events(), "builtin table must build without diagnostics")
	assert.Equal(t, len(Builtin())+1, r.Len())

	for _, def := range Builtin() {
		d := r.Lookup(def.Name)
		assert.NotEqual(t, unit.UnknownSuffix, d.UnitSuffix, "unit %q of %q has no suffix", def.Unit, def.Name)
		assert.Equal(t, resolver.Suffix(def.Unit), d.UnitSuffix)
		assert.Contains(t, []Kind{KindCounter, KindGauge}, d.Kind, def.Name)
	}
}

func TestNamesSorted(t *testing.T) {
	r := Build(nil, nil)
	names := r.Names()

	require.Len(t, names, r.Len())
	assert.Equal(t, FallbackName, names[0])
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestAllStopsEarly(t *testing.T) {
	r := Build(nil, nil)

	n := 0
	for name, d := range r.All() {
		assert.Equal(t, r.Lookup(name), d)
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
