package unit

import (
	"testing"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffix(t *testing.T) {
	r := NewResolver(nil, nil)

	tests := []struct {
		unit Name
		want string
	}{
		{"context switches", "csws"},
		{"microseconds", "us"},
		{"milliseconds", "ms"},
		{"operations", "ops"},
		{"bytes", "bytes"},
		{"blocks", "blocks"},
		{"indicator", "y/n"},
		{"transactions", "txns"},
		{Unknown, UnknownSuffix},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			assert.Equal(t, tt.want, r.Suffix(tt.unit))
		})
	}
}

func TestSuffixUnknownUnit(t *testing.T) {
	var rec diag.Recorder
	r := NewResolver(nil, &rec)

	assert.Equal(t, "?", r.Suffix("furlongs"))

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, diag.KindUnknownUnit, events[0].Kind)
	assert.Equal(t, "furlongs", events[0].Subject)
}

func TestSuffixHitEmitsNothing(t *testing.T) {
	var rec diag.Recorder
	r := NewResolver(nil, &rec)

	r.Suffix("bytes")
	r.Suffix(Unknown)

	assert.Empty(t, rec.Events())
}

func TestNewResolverExtra(t *testing.T) {
	var rec diag.Recorder
	r := NewResolver(map[Name]string{
		"furlongs": "fur",
		"bytes":    "B",
		"rows":     "rows",
	}, &rec)

	assert.Equal(t, "fur", r.Suffix("furlongs"))
	assert.Equal(t, "B", r.Suffix("bytes"))
	assert.True(t, r.Known("furlongs"))

	// only the changed built-in is reported
	assert.Equal(t, 1, rec.Count(diag.KindUnitOverride))
	assert.Equal(t, 0, rec.Count(diag.KindUnknownUnit))

	// the package table stays untouched
	assert.Equal(t, "bytes", NewResolver(nil, nil).Suffix("bytes"))
}

func TestBuiltinIsACopy(t *testing.T) {
	b := Builtin()
	b["bytes"] = "changed"

	assert.Equal(t, "bytes", Builtin()["bytes"])
	assert.Len(t, Builtin(), 37)
}

func TestEntriesSorted(t *testing.T) {
	entries := NewResolver(nil, nil).Entries()

	require.Len(t, entries, 37)
	assert.Equal(t, Entry{Unit: Unknown, Suffix: UnknownSuffix}, entries[0])
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Unit, entries[i].Unit)
	}
}

func TestNewResolverKeepsCatchAll(t *testing.T) {
	var rec diag.Recorder
	r := NewResolver(map[Name]string{Unknown: "unk", "furlongs": "fur"}, &rec)

	assert.Equal(t, UnknownSuffix, r.Suffix(Unknown))
	assert.Equal(t, "fur", r.Suffix("furlongs"))

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, diag.KindUnitOverride, events[0].Kind)
	assert.Equal(t, string(Unknown), events[0].Subject)
}
