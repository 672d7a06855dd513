package main

import (
	"context"
	"fmt"

	"github.com/neox5/statmeta/internal/app"
	"github.com/neox5/statmeta/internal/diag"
	"github.com/neox5/statmeta/internal/metric"
	"github.com/neox5/statmeta/internal/unit"
	"github.com/urfave/cli/v3"
)

// coverage summarizes how well the suffix table covers the registry.
type coverage struct {
	Entries    int
	Gaps       []string // metrics whose unit has no suffix
	Diagnostic map[diag.Kind]int
}

func (c coverage) ok() bool {
	return len(c.Gaps) == 0 && c.Diagnostic[diag.KindUnknownUnit] == 0 && c.Diagnostic[diag.KindReservedMetric] == 0
}

func checkCoverage(st *state) coverage {
	var rec diag.Recorder
	_, reg := app.NewRegistry(st.cfg, &rec)

	c := coverage{Entries: reg.Len(), Diagnostic: make(map[diag.Kind]int)}
	for name, d := range reg.All() {
		if name == metric.FallbackName {
			continue
		}
		if d.Unit != unit.Unknown && d.UnitSuffix == unit.UnknownSuffix {
			c.Gaps = append(c.Gaps, name)
		}
	}
	for _, kind := range diag.Kinds() {
		c.Diagnostic[kind] = rec.Count(kind)
	}
	return c
}

func checkCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "verify every registered unit has a suffix",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c := checkCoverage(st)
			w := stdout(cmd)

			fmt.Fprintf(w, "entries: %d\n", c.Entries)
			for _, kind := range diag.Kinds() {
				if n := c.Diagnostic[kind]; n > 0 {
					fmt.Fprintf(w, "%s: %d\n", kind, n)
				}
			}
			for _, name := range c.Gaps {
				fmt.Fprintf(w, "missing suffix: %s\n", name)
			}

			if !c.ok() {
				return fmt.Errorf("suffix coverage incomplete: %d gaps", len(c.Gaps))
			}
			fmt.Fprintln(w, "ok")
			return nil
		},
	}
}
