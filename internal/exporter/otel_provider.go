package exporter

import (
	"context"
	"fmt"

	"github.com/neox5/statmeta/internal/config"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// createOTLPExporter creates the OTLP metric exporter for the configured transport.
func createOTLPExporter(ctx context.Context, cfg *config.OTELExportConfig) (sdkmetric.Exporter, error) {
	switch cfg.Transport {
	case "grpc":
		opts := []otlpmetricgrpc.Option{
			otlpmetricgrpc.WithEndpoint(cfg.GetEndpoint()),
			otlpmetricgrpc.WithInsecure(),
		}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlpmetricgrpc.WithHeaders(cfg.Headers))
		}
		return otlpmetricgrpc.New(ctx, opts...)

	case "http":
		opts := []otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(cfg.GetEndpoint()),
			otlpmetrichttp.WithInsecure(),
		}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlpmetrichttp.WithHeaders(cfg.Headers))
		}
		return otlpmetrichttp.New(ctx, opts...)

	default:
		return nil, fmt.Errorf("unsupported transport: %s", cfg.Transport)
	}
}

// createMeterProvider creates an OTEL meter provider pushing through reader.
func createMeterProvider(res *resource.Resource, reader sdkmetric.Reader) *sdkmetric.MeterProvider {
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
}

// createPeriodicReader wraps an OTLP exporter in a reader with the push interval.
func createPeriodicReader(cfg *config.OTELExportConfig) (sdkmetric.Reader, error) {
	exporter, err := createOTLPExporter(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	return sdkmetric.NewPeriodicReader(
		exporter,
		sdkmetric.WithInterval(cfg.Interval.Push),
	), nil
}
