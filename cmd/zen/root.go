package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ava12/zen/config"
	"github.com/ava12/zen/internal/logging"
)

// app holds flags and options shared by commands.
type app struct {
	configFile string
	verbosity  int
	opts       *config.Options
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "zen",
		Short: "Expand emmet-like templates",
		Long: `zen expands compact templates like ul#menu>li.item{one}+li.item{two}
into markup or element trees.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, e := config.Load(a.configFile)
			if e != nil {
				return e
			}

			a.opts = opts
			logging.Setup(cmd.ErrOrStderr(), logging.Level(a.verbosity, opts.Level()))
			log.Debug().Str("command", cmd.Name()).Str("config", a.configFile).Msg("command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML or TOML options file")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newExpandCmd(a), newConfigCmd(a))
	return rootCmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print effective options as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Dump(cmd.OutOrStdout(), a.opts)
		},
	}
}
