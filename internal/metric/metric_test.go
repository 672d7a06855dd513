package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "counter", KindCounter.String())
	assert.Equal(t, "gauge", KindGauge.String())
	assert.Equal(t, "?", KindUnknown.String())
	assert.Equal(t, "?", Kind(42).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"counter", KindCounter, false},
		{"gauge", KindGauge, false},
		{"?", KindUnknown, false},
		{"histogram", KindUnknown, true},
		{"", KindUnknown, true},
		{"Counter", KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindText(t *testing.T) {
	text, err := KindGauge.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "gauge", string(text))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("counter")))
	assert.Equal(t, KindCounter, k)
	assert.Error(t, k.UnmarshalText([]byte("summary")))
}
