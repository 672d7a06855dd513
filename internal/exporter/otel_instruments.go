package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neox5/statmeta/internal/diag"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// registerOTELInstruments creates the observable instruments and their callback.
func registerOTELInstruments(e *OTELExporter) error {
	entriesName := metricName(e.format, protocolOTEL, registryEntriesParts...)
	eventsName := metricName(e.format, protocolOTEL, diagnosticEventsParts...)

	entries, err := e.meter.Int64ObservableGauge(
		entriesName,
		otelmetric.WithDescription("Number of known statistics by statistic type and unit"),
		otelmetric.WithUnit("{statistic}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create gauge %q: %w", entriesName, err)
	}

	events, err := e.meter.Int64ObservableCounter(
		eventsName,
		otelmetric.WithDescription("Diagnostic events raised by suffix resolution and statistic lookups"),
		otelmetric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create counter %q: %w", eventsName, err)
	}

	// Attribute sets are fixed for the registry lifetime
	groupAttrs := make([]otelmetric.ObserveOption, len(e.groups))
	for i, g := range e.groups {
		groupAttrs[i] = otelmetric.WithAttributes(
			attribute.String("kind", g.kind.String()),
			attribute.String("unit", string(g.unit)),
		)
	}

	_, err = e.meter.RegisterCallback(
		func(ctx context.Context, observer otelmetric.Observer) error {
			slog.Debug("otel push", "groups", len(e.groups))

			for i, g := range e.groups {
				observer.ObserveInt64(entries, g.count, groupAttrs[i])
			}

			snap := e.snapshot()
			for _, kind := range diag.Kinds() {
				observer.ObserveInt64(events, int64(snap[kind]),
					otelmetric.WithAttributes(attribute.String("kind", string(kind))))
			}
			return nil
		},
		entries, events,
	)
	if err != nil {
		return fmt.Errorf("failed to register callback: %w", err)
	}

	slog.Info("registered otel metrics",
		"entries", entriesName,
		"events", eventsName,
		"groups", len(e.groups))

	return nil
}
