package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/neox5/statmeta/internal/app"
	"github.com/neox5/statmeta/internal/version"
	"github.com/urfave/cli/v3"
)

func serveCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the lookup API and metadata exporters",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return serve(ctx, st)
		},
	}
}

func serve(ctx context.Context, st *state) error {
	slog.Info("starting statmeta", "version", version.String())

	slog.Debug("--- Registry Creation ---")
	application, err := app.New(st.cfg, st.logger)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	// Setup graceful shutdown
	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if application.Monitor != nil {
		application.Monitor.Run(shutdownCtx)
		defer application.Monitor.Wait()
	}

	slog.Debug("--- Service Initialization ---")
	var wg sync.WaitGroup
	errChan := make(chan error, 3)

	if application.Server != nil {
		wg.Go(func() {
			if err := application.Server.Start(shutdownCtx); err != nil {
				errChan <- fmt.Errorf("api server: %w", err)
			}
		})
	}

	if application.PrometheusExporter != nil {
		wg.Go(func() {
			if err := application.PrometheusExporter.Start(shutdownCtx); err != nil {
				errChan <- fmt.Errorf("prometheus exporter: %w", err)
			}
		})
	}

	if application.OTELExporter != nil {
		wg.Go(func() {
			if err := application.OTELExporter.Start(shutdownCtx); err != nil {
				errChan <- fmt.Errorf("otel exporter: %w", err)
			}
		})
	}

	slog.Debug("--- Application Running ---")

	var runErr error
	select {
	case runErr = <-errChan:
		slog.Error("service error", "error", runErr)
		stop()
	case <-shutdownCtx.Done():
	}

	slog.Debug("--- Shutdown Initiated ---")
	wg.Wait()

	slog.Info("shutdown complete")
	return runErr
}
