package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/springs/aggregate"
	"github.com/katalvlaran/springs/internal/report"
)

// newCountCmd counts one file at one multiplicity.
func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Count arrangements per record and in total",
		Long: `Reads condition records from FILE ("-" for stdin) and prints the total
number of arrangements. With --multiplicity N every record is unfolded N times
(copies joined by '?') before counting.

Example:
  springs count input.txt --multiplicity 5 --per-record`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.v.GetInt("multiplicity")
			if m < 1 {
				return fmt.Errorf("multiplicity must be >= 1, got %d", m)
			}

			return a.runParts(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args[0],
				[]namedRun{{name: "total", multiplicity: m}})
		},
	}
	a.bindRunFlags(cmd)
	cmd.Flags().IntP("multiplicity", "m", 1, "unfold every record this many times")
	_ = a.v.BindPFlag("multiplicity", cmd.Flags().Lookup("multiplicity"))

	return cmd
}

// namedRun is one aggregation pass over the input.
type namedRun struct {
	name         string
	multiplicity int
}

// runParts solves the input once per run and writes a single report.
func (a *app) runParts(ctx context.Context, out io.Writer, stdin io.Reader, path string, runs []namedRun) error {
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := readInput(path, stdin)
	if err != nil {
		return err
	}

	alpha, err := a.cfg.Alphabet.Alphabet()
	if err != nil {
		return err
	}
	var summary report.Summary
	for i, r := range runs {
		opts, err := a.options(r.multiplicity)
		if err != nil {
			return err
		}
		res, err := aggregate.Solve(ctx, bytes.NewReader(data), opts...)
		if err != nil {
			return err
		}
		summary.Parts = append(summary.Parts,
			report.NewPart(r.name, r.multiplicity, res, a.cfg.Output.PerRecord, alpha))
		if i == 0 {
			summary.Invalid = report.Invalid(res.Errors)
		}
	}

	if err = report.Write(out, a.cfg.Output.Format, summary); err != nil {
		return err
	}

	return a.writeMetrics()
}

// readInput loads the whole line source so that several passes can share it.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return data, nil
}
