package main

import (
	"natal-position-service/internal/config"
	"natal-position-service/internal/platform/obs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliState is filled by the root command before any subcommand runs.
type cliState struct {
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	var verbose bool

	cmd := &cobra.Command{
		Use:          "natalctl",
		Short:        "Natal chart positions from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			logger, err := obs.NewLogger(level, true)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)

			st.cfg, st.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every ephemeris and cache operation")

	cmd.AddCommand(chartCmd(st), compatCmd(), initDBCmd(st))
	return cmd
}
