package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/springs/record"
)

// newExpandCmd prints the unfolded form of a single record line.
func newExpandCmd(a *app) *cobra.Command {
	var multiplicity int
	cmd := &cobra.Command{
		Use:   "expand LINE",
		Short: "Print a record unfolded N times",
		Example: `  springs expand "???.### 1,1,3" -m 5
  ???.###????.###????.###????.###????.### 1,1,3,1,1,3,1,1,3,1,1,3,1,1,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if multiplicity < 1 {
				return fmt.Errorf("multiplicity must be >= 1, got %d", multiplicity)
			}
			if err := a.load(); err != nil {
				return err
			}
			alpha, err := a.cfg.Alphabet.Alphabet()
			if err != nil {
				return err
			}
			rec, err := record.ParseWith(args[0], alpha)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), record.Expand(rec, multiplicity).Format(alpha))

			return err
		},
	}
	cmd.Flags().IntVarP(&multiplicity, "multiplicity", "m", 5, "number of copies")

	return cmd
}
