package commands

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"joltage/internal/app"
	"joltage/internal/scan"
)

// rootOptions carries flag values and the app built from them.
type rootOptions struct {
	configPath string
	terminator string
	mode       string
	verbose    bool

	app *app.App
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "joltage [file]",
		Short:        "Sum a two-digit value taken from every line of input",
		Long:         "Read a file (or stdin when none is given) line by line and print the sum\nof each line's two-digit value, built from its two largest characters.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := opts.app.Scan(pathArg(args), nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.Total)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVarP(&opts.terminator, "terminator", "t", `\n`, "line terminator byte, literal or Go escape")
	pf.StringVarP(&opts.mode, "mode", "m", string(scan.ModeTop2), "pair selection: "+modeNames())
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "increase logging verbosity")

	root.AddCommand(linesCmd(opts), fingerprintCmd(opts), versionCmd())
	return root
}

// resolve layers defaults, the config file and explicitly set flags.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg := app.DefaultConfig()
	var err error

	if o.configPath != "" {
		if cfg, err = app.LoadConfig(o.configPath, cfg); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("terminator") {
		if cfg.Terminator, err = app.ParseTerminator(o.terminator); err != nil {
			return err
		}
	}
	if flags.Changed("mode") {
		if cfg.Mode, err = scan.ParseMode(o.mode); err != nil {
			return err
		}
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}

	log.SetOutput(cmd.ErrOrStderr())
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.Debugf("terminator %q, mode %s", cfg.Terminator, cfg.Mode)

	o.app = app.New(cfg)
	return nil
}

// modeNames lists the accepted --mode values, e.g. "top2|ordered".
func modeNames() string {
	names := make([]string, len(scan.Modes))
	for i, m := range scan.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
