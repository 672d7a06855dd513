package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTELExporter pushes registry statistics to an OTEL collector.
// Diagnostic counts are sampled every read interval and pushed every push interval.
type OTELExporter struct {
	config        *config.OTELExportConfig
	format        config.NamingFormat
	meterProvider *sdkmetric.MeterProvider
	meter         otelmetric.Meter
	groups        []entryGroup
	events        *diag.Counter

	mu     sync.RWMutex
	latest map[diag.Kind]uint64
}

// NewOTELExporter creates a new OTEL exporter.
func NewOTELExporter(
	cfg *config.OTELExportConfig,
	format config.NamingFormat,
	reg *metric.Registry,
	events *diag.Counter,
) (*OTELExporter, error) {
	reader, err := createPeriodicReader(cfg)
	if err != nil {
		return nil, err
	}
	return newOTELExporter(cfg, format, reg, events, reader)
}

// newOTELExporter wires the exporter to an arbitrary reader.
func newOTELExporter(
	cfg *config.OTELExportConfig,
	format config.NamingFormat,
	reg *metric.Registry,
	events *diag.Counter,
	reader sdkmetric.Reader,
) (*OTELExporter, error) {
	res, err := createOTELResource(cfg.Resource)
	if err != nil {
		return nil, err
	}

	meterProvider := createMeterProvider(res, reader)

	e := &OTELExporter{
		config:        cfg,
		format:        format,
		meterProvider: meterProvider,
		meter:         meterProvider.Meter("statmeta"),
		groups:        groupEntries(reg),
		events:        events,
	}
	e.sample()

	if err := registerOTELInstruments(e); err != nil {
		_ = meterProvider.Shutdown(context.Background())
		return nil, err
	}

	return e, nil
}

// sample copies the current diagnostic counts for the next push.
func (e *OTELExporter) sample() {
	var snap map[diag.Kind]uint64
	if e.events != nil {
		snap = e.events.Snapshot()
	}

	e.mu.Lock()
	e.latest = snap
	e.mu.Unlock()
}

// snapshot returns the last sampled diagnostic counts.
func (e *OTELExporter) snapshot() map[diag.Kind]uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

// Start samples diagnostic counts until ctx is cancelled, then stops the exporter.
func (e *OTELExporter) Start(ctx context.Context) error {
	slog.Info("starting otel exporter",
		"transport", e.config.Transport,
		"endpoint", e.config.GetEndpoint(),
		"read_interval", e.config.Interval.Read,
		"push_interval", e.config.Interval.Push,
	)

	ticker := time.NewTicker(e.config.Interval.Read)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return e.Stop()
		case <-ticker.C:
			e.sample()
		}
	}
}

// Stop flushes pending data and shuts the meter provider down.
func (e *OTELExporter) Stop() error {
	slog.Info("shutting down otel exporter")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down meter provider: %w", err)
	}
	return nil
}
