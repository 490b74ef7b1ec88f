package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSolveCmd prints the folded and unfolded totals in one go.
func newSolveCmd(a *app) *cobra.Command {
	var unfold int
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the folded (part1) and unfolded (part2) totals",
		Long: `Counts FILE twice: once as written (part1) and once with every record
unfolded --unfold times (part2, default 5).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if unfold < 1 {
				return fmt.Errorf("unfold must be >= 1, got %d", unfold)
			}

			return a.runParts(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args[0], []namedRun{
				{name: "part1", multiplicity: 1},
				{name: "part2", multiplicity: unfold},
			})
		},
	}
	a.bindRunFlags(cmd)
	cmd.Flags().IntVar(&unfold, "unfold", 5, "multiplicity of the second pass")

	return cmd
}
