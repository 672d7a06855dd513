package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/neox5/statmeta/internal/config"
	"github.com/neox5/statmeta/internal/version"
	"github.com/urfave/cli/v3"
)

// state is shared by all subcommands once the root Before hook ran.
type state struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	st := &state{}

	return &cli.Command{
		Name:    "statmeta",
		Usage:   "Unit and type metadata for YugabyteDB statistics",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to configuration file (built-in defaults when empty)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: st.before,
		Commands: []*cli.Command{
			lookupCommand(st),
			listCommand(st),
			unitsCommand(st),
			checkCommand(st),
			renderCommand(st),
			serveCommand(st),
		},
	}
}

func (st *state) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	configPath := cmd.String("config")

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return ctx, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Bool("debug") {
		cfg.Settings.LogLevel = slog.LevelDebug
	}

	st.cfg = cfg
	st.logger = newLogger(cmd.Root().ErrWriter, cfg.Settings)
	slog.SetDefault(st.logger)

	slog.Debug("configuration loaded", "config", configPath, "extra_units", len(cfg.Units), "extra_metrics", len(cfg.Metrics))
	return ctx, nil
}

func newLogger(w io.Writer, settings config.SettingsConfig) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: settings.LogLevel}
	if settings.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
