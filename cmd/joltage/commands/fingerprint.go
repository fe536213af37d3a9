package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [file]",
		Short: "Print input fingerprint and total",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := opts.app.Fingerprint(pathArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\nTotal: %d\n", rep.Fingerprint, rep.Total)
			return nil
		},
	}
}
