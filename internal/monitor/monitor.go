package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/neox5/statmeta/internal/diag"
	"github.com/shirou/gopsutil/v4/process"
)

// Sample is one resource usage reading.
type Sample struct {
	Time        time.Time         `json:"time"`
	CPUPercent  float64           `json:"cpu_percent"`
	RSSBytes    uint64            `json:"rss_bytes"`
	HeapBytes   uint64            `json:"heap_bytes"`
	Goroutines  int               `json:"goroutines"`
	NumGC       uint32            `json:"num_gc"`
	Diagnostics map[string]uint64 `json:"diagnostics,omitempty"`
}

// Monitor samples process resource usage and diagnostic event counts.
type Monitor struct {
	interval time.Duration
	logger   *slog.Logger
	proc     *process.Process
	events   *diag.Counter
	wg       sync.WaitGroup

	mu     sync.RWMutex
	latest *Sample
}

// New creates a monitor for the current process.
func New(interval time.Duration, logger *slog.Logger, events *diag.Counter) (*Monitor, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("monitor interval must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to get process handle: %w", err)
	}

	return &Monitor{
		interval: interval,
		logger:   logger,
		proc:     proc,
		events:   events,
	}, nil
}

// Run starts the monitoring loop in a background goroutine.
// The loop exits when ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	m.wg.Go(func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		// Immediate first collection
		m.collect()

		for {
			select {
			case <-ctx.Done():
				m.logger.Info("monitor shutdown complete")
				return
			case <-ticker.C:
				m.collect()
			}
		}
	})
}

// Wait blocks until the monitor goroutine exits.
func (m *Monitor) Wait() {
	m.wg.Wait()
}

// ErrNoSample is returned by Latest before the first collection.
var ErrNoSample = errors.New("no sample collected yet")

// Latest returns a copy of the most recent sample.
func (m *Monitor) Latest() (Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latest == nil {
		return Sample{}, ErrNoSample
	}
	return *m.latest, nil
}

// collect reads current usage, stores it and logs a compact line.
func (m *Monitor) collect() {
	s := m.read()

	m.mu.Lock()
	m.latest = &s
	m.mu.Unlock()

	mb := func(b uint64) float64 {
		return float64(b) / (1024 * 1024)
	}

	m.logger.LogAttrs(
		context.Background(),
		slog.LevelInfo,
		"resource",
		slog.String("cpu", fmt.Sprintf("%.2f%%", s.CPUPercent)),
		slog.String("rss", fmt.Sprintf("%.2fMB", mb(s.RSSBytes))),
		slog.String("heap", fmt.Sprintf("%.2fMB", mb(s.HeapBytes))),
		slog.Int("gor", s.Goroutines),
		slog.Uint64("gc", uint64(s.NumGC)),
		slog.Uint64("unknown_metrics", s.Diagnostics[string(diag.KindUnknownMetric)]),
	)
}

// read gathers one sample; failed probes are logged and left at zero.
func (m *Monitor) read() Sample {
	s := Sample{
		Time:       time.Now(),
		Goroutines: runtime.NumGoroutine(),
	}

	cpu, err := m.proc.CPUPercent()
	if err != nil {
		m.logger.Warn("failed to get CPU percent", "error", err)
	}
	s.CPUPercent = cpu

	mem, err := m.proc.MemoryInfo()
	if err != nil {
		m.logger.Warn("failed to get memory info", "error", err)
	} else {
		s.RSSBytes = mem.RSS
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.HeapBytes = ms.HeapAlloc
	s.NumGC = ms.NumGC

	if m.events != nil {
		snap := m.events.Snapshot()
		s.Diagnostics = make(map[string]uint64, len(snap))
		for k, v := range snap {
			s.Diagnostics[string(k)] = v
		}
	}

	return s
}
