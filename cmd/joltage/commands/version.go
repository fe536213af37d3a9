package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set with -ldflags "-X joltage/cmd/joltage/commands.Version=...".
var Version string

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of this executable",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := Version
			if v == "" {
				if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
					v = info.Main.Version
				} else {
					v = "(unknown version)"
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "joltage %s\n", v)
		},
	}
}
