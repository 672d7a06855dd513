package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard
	cmd.Reader = strings.NewReader(stdin)

	err := cmd.Run(context.Background(), append([]string{"statmeta"}, args...))
	return out.String(), err
}

func TestLookupJSON(t *testing.T) {
	out, err := run(t, "", "lookup", "--json", "rocksdb_block_cache_hit", "furlongs_per_fortnight")
	require.NoError(t, err)

	var rows []descriptorRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "rocksdb_block_cache_hit", rows[0].Name)
	assert.Equal(t, "blocks", rows[0].UnitSuffix)
	assert.Equal(t, "counter", rows[0].StatType.String())
	assert.True(t, rows[0].Known)

	assert.Equal(t, "?", rows[1].UnitSuffix)
	assert.Equal(t, "?", rows[1].StatType.String())
	assert.False(t, rows[1].Known)
}

func TestLookupRequiresName(t *testing.T) {
	_, err := run(t, "", "lookup")
	require.Error(t, err)
}

func TestListFilters(t *testing.T) {
	out, err := run(t, "", "list", "--json", "--type", "gauge", "--unit", "tasks")
	require.NoError(t, err)

	var rows []descriptorRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 32)
	for _, r := range rows {
		assert.Equal(t, "tasks", r.UnitSuffix)
	}

	_, err = run(t, "", "list", "--type", "histogram")
	require.Error(t, err)
}

func TestUnitsTable(t *testing.T) {
	out, err := run(t, "", "units")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 38) // header plus 37 units
	assert.Contains(t, out, "csws")
	assert.Contains(t, out, "y/n")
}

func TestCheckBuiltin(t *testing.T) {
	out, err := run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "entries: 1598")
	assert.True(t, strings.HasSuffix(out, "ok\n"))
}

func TestRenderStdin(t *testing.T) {
	exposition := `# TYPE rocksdb_block_cache_hit counter
rocksdb_block_cache_hit{table_id="t1"} 12500
# TYPE mystery gauge
mystery 3
`
	out, err := run(t, exposition, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "12.50 K blocks")
	assert.Contains(t, out, "3 ?")

	out, err = run(t, exposition, "render", "--no-compact")
	require.NoError(t, err)
	assert.Contains(t, out, "12500 blocks")
}

func TestConfigExtraUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statmeta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
units:
  furlongs: fur
metrics:
  distance_travelled: furlongs/counter
`), 0o644))

	out, err := run(t, "", "--config", path, "lookup", "--json", "distance_travelled")
	require.NoError(t, err)

	var rows []descriptorRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "fur", rows[0].UnitSuffix)
	assert.True(t, rows[0].Known)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "units")
	require.Error(t, err)
}
