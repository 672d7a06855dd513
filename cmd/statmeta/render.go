package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/neox5/statmeta/internal/app"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/render"
	"github.com/urfave/cli/v3"
)

func renderCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "annotate a Prometheus text exposition with unit suffixes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "exposition file to read (stdin when empty)",
			},
			&cli.BoolFlag{
				Name:  "no-compact",
				Usage: "print raw numbers instead of SI prefixed values",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, closeFn, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			samples, err := render.Decode(in)
			if err != nil {
				return err
			}

			_, reg := app.NewRegistry(st.cfg, diag.NewLogger(st.logger))
			r := render.New(reg, render.WithCompact(!cmd.Bool("no-compact")))

			tw := tabwriter.NewWriter(stdout(cmd), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tLABELS\tVALUE\tTYPE")
			for _, line := range r.RenderAll(samples) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", line.Name, render.LabelString(line.Labels), line.Display, line.Descriptor.Kind)
			}
			return tw.Flush()
		},
	}
}

func openInput(cmd *cli.Command) (io.Reader, func(), error) {
	path := cmd.String("file")
	if path == "" {
		if r := cmd.Root().Reader; r != nil {
			return r, func() {}, nil
		}
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open exposition: %w", err)
	}
	return f, func() { f.Close() }, nil
}
