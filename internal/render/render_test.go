package render

import (
	"math"
	"strings"
	"testing"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	r := New(metric.Build(nil, nil))

	tests := []struct {
		value  float64
		suffix string
		want   string
	}{
		{0, "ops", "0 ops"},
		{999, "reqs", "999 reqs"},
		{12.5, "ms", "12.5 ms"},
		{1500, "reqs", "1.50 K reqs"},
		{2000000, "bytes", "2.00 M bytes"},
		{999999, "bytes", "1.00 M bytes"},
		{999994, "bytes", "999.99 K bytes"},
		{7, "", "7"},
		{math.NaN(), "?", "NaN ?"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.FormatValue(tt.value, tt.suffix))
	}
}

func TestFormatValueNotCompact(t *testing.T) {
	r := New(metric.Build(nil, nil), WithCompact(false))

	assert.Equal(t, "1500000 bytes", r.FormatValue(1500000, "bytes"))
}

func TestRender(t *testing.T) {
	var rec diag.Recorder
	reg := metric.Build(nil, &rec)
	rec.Reset()
	r := New(reg)

	line := r.Render(Sample{Name: "hybrid_clock_skew", Value: 42})
	assert.Equal(t, "42 us", line.Display)
	assert.Equal(t, metric.KindGauge, line.Descriptor.Kind)

	line = r.Render(Sample{Name: "not_a_known_statistic", Value: 3})
	assert.Equal(t, "3 ?", line.Display)
	assert.Equal(t, metric.Fallback, line.Descriptor)
	assert.Equal(t, 1, rec.Count(diag.KindUnknownMetric))
}

func TestDecodeAndRender(t *testing.T) {
	input := `# TYPE rocksdb_block_cache_hit counter
rocksdb_block_cache_hit{table_id="abc",metric_type="tablet"} 12500 1700000000000
# TYPE all_operations_inflight gauge
all_operations_inflight{metric_type="server"} 3
handler_latency_yb_tserver_TabletServerService_Read_sum 7
# TYPE rpc_latency summary
rpc_latency{quantile="0.5"} 1
rpc_latency_sum 100
rpc_latency_count 4
`
	samples, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, samples, 5)

	assert.Equal(t, Sample{
		Name:   "rocksdb_block_cache_hit",
		Labels: map[string]string{"table_id": "abc", "metric_type": "tablet"},
		Value:  12500,
	}, samples[2])

	lines := New(metric.Build(nil, nil)).RenderAll(samples)
	assert.Equal(t, "3 ops", lines[0].Display)
	assert.Equal(t, "handler_latency_yb_tserver_TabletServerService_Read_sum", lines[1].Name)
	assert.Equal(t, "12.50 K blocks", lines[2].Display)
	assert.Equal(t, "4 ?", lines[3].Display)
	assert.Equal(t, "rpc_latency_sum", lines[4].Name)
	assert.Equal(t, "100 ?", lines[4].Display)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("metric{ 1\n"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	samples, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "", LabelString(nil))
	assert.Equal(t, `{a="1",b="x y"}`, LabelString(map[string]string{"b": "x y", "a": "1"}))
}
