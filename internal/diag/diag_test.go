package diag

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerEmit(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewLogger(logger).Emit(Event{
		Kind:    KindUnknownMetric,
		Level:   slog.LevelInfo,
		Subject: "does not exist",
		Message: "metric not found",
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="metric not found"`)
	assert.Contains(t, out, "kind=unknown_metric")
	assert.Contains(t, out, `subject="does not exist"`)
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	NewLogger(logger).Emit(Event{Kind: KindUnknownUnit, Level: slog.LevelInfo, Subject: "furlongs"})

	assert.Empty(t, buf.String())
}

func TestMultiFansOut(t *testing.T) {
	var a, b Recorder
	m := Multi{&a, nil, &b}

	m.Emit(Event{Kind: KindDuplicateMetric, Subject: "x"})

	assert.Equal(t, 1, a.Count(KindDuplicateMetric))
	assert.Equal(t, 1, b.Count(KindDuplicateMetric))
}

func TestRecorderConcurrentEmit(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			r.Emit(Event{Kind: KindUnknownMetric})
		})
	}
	wg.Wait()

	require.Len(t, r.Events(), 50)
	r.Reset()
	assert.Empty(t, r.Events())
}

func TestSinkFunc(t *testing.T) {
	var got Event
	SinkFunc(func(ev Event) { got = ev }).Emit(Event{Subject: "s"})
	assert.Equal(t, "s", got.Subject)

	Discard.Emit(Event{}) // must not panic
}
