package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/neox5/statmeta/internal/app"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/urfave/cli/v3"
)

type descriptorRow struct {
	Name       string      `json:"name"`
	Unit       unit.Name   `json:"unit"`
	UnitSuffix string      `json:"unit_suffix"`
	StatType   metric.Kind `json:"stat_type"`
	Known      bool        `json:"known"`
}

func lookupCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "print the descriptor of one or more statistics",
		ArgsUsage: "NAME...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of a table"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return fmt.Errorf("at least one metric name is required")
			}

			_, reg := app.NewRegistry(st.cfg, diag.NewLogger(st.logger))
			rows := make([]descriptorRow, 0, len(names))
			for _, name := range names {
				d := reg.Lookup(name)
				rows = append(rows, descriptorRow{
					Name:       name,
					Unit:       d.Unit,
					UnitSuffix: d.UnitSuffix,
					StatType:   d.Kind,
					Known:      reg.Has(name),
				})
			}
			return writeRows(stdout(cmd), rows, cmd.Bool("json"))
		},
	}
}

func listCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list registered statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "only show counter or gauge statistics"},
			&cli.StringFlag{Name: "unit", Usage: "only show statistics measured in this unit"},
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of a table"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var kind *metric.Kind
			if s := cmd.String("type"); s != "" {
				k, err := metric.ParseKind(s)
				if err != nil {
					return err
				}
				kind = &k
			}
			unitFilter := unit.Name(cmd.String("unit"))

			_, reg := app.NewRegistry(st.cfg, diag.NewLogger(st.logger))
			var rows []descriptorRow
			for name, d := range reg.All() {
				if name == metric.FallbackName {
					continue
				}
				if kind != nil && d.Kind != *kind {
					continue
				}
				if unitFilter != "" && d.Unit != unitFilter {
					continue
				}
				rows = append(rows, descriptorRow{
					Name:       name,
					Unit:       d.Unit,
					UnitSuffix: d.UnitSuffix,
					StatType:   d.Kind,
					Known:      true,
				})
			}
			return writeRows(stdout(cmd), rows, cmd.Bool("json"))
		},
	}
}

func writeRows(w io.Writer, rows []descriptorRow, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUNIT\tSUFFIX\tTYPE\tKNOWN")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", r.Name, r.Unit, r.UnitSuffix, r.StatType, r.Known)
	}
	return tw.Flush()
}

func unitsCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "units",
		Usage: "print the unit suffix table",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			resolver := unit.NewResolver(st.cfg.Units, diag.NewLogger(st.logger))

			tw := tabwriter.NewWriter(stdout(cmd), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "UNIT\tSUFFIX\tBUILTIN")
			for _, e := range resolver.Entries() {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", e.Unit, e.Suffix, unit.IsBuiltin(e.Unit))
			}
			return tw.Flush()
		},
	}
}
