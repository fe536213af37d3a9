package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"joltage/internal/domain"
)

// lines [file]: print each line's contribution, then the total.
func linesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lines [file]",
		Short: "Print every line's contribution and the total",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rep, err := opts.app.Scan(pathArg(args), func(l domain.Line) {
				fmt.Fprintf(out, "%d\t%d\n", l.Number, l.Contribution)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "total\t%d\n", rep.Total)
			return nil
		},
	}
}
