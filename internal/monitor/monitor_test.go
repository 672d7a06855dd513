package monitor

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInterval(t *testing.T) {
	_, err := New(0, nil, nil)
	assert.Error(t, err)
}

func TestLatestBeforeRun(t *testing.T) {
	m, err := New(time.Second, slog.New(slog.NewTextHandler(os.Stderr, nil)), nil)
	require.NoError(t, err)

	_, err = m.Latest()
	assert.ErrorIs(t, err, ErrNoSample)
}

func TestRunCollects(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	events := diag.NewCounter()
	events.Emit(diag.Event{Kind: diag.KindUnknownMetric})

	m, err := New(time.Hour, logger, events)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	m.Run(ctx)

	require.Eventually(t, func() bool {
		_, err := m.Latest()
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	m.Wait()

	s, err := m.Latest()
	require.NoError(t, err)
	assert.Positive(t, s.Goroutines)
	assert.Positive(t, s.HeapBytes)
	assert.Equal(t, uint64(1), s.Diagnostics["unknown_metric"])
	assert.Contains(t, buf.String(), "msg=resource")
	assert.Contains(t, buf.String(), "unknown_metrics=1")
}
