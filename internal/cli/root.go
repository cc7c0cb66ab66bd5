package cli

import (
	"context"
	"ctchen222/noughts-and-crosses/internal/config"
	"ctchen222/noughts-and-crosses/internal/logger"
	"ctchen222/noughts-and-crosses/internal/telemetry"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// options holds values shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	shutdown   telemetry.Shutdown
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Noughts and crosses against a heuristic computer player",
		Long: `tictactoe plays noughts and crosses in the terminal.

The computer wins when it can, blocks when it must, and otherwise picks
the cell whose lines are most contested.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			opts.cfg = cfg

			shutdown, err := telemetry.Init(cmd.Context(), cfg.Telemetry.Endpoint)
			if err != nil {
				return err
			}
			opts.shutdown = shutdown

			logger.Init(cmd.ErrOrStderr(), cfg.SlogLevel())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.close(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: TTT_LOG_LEVEL)")

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newAdviseCmd())

	return rootCmd
}

func (o *options) close(ctx context.Context) error {
	if o.shutdown == nil {
		return nil
	}
	err := o.shutdown(ctx)
	o.shutdown = nil
	if err != nil {
		slog.WarnContext(ctx, "telemetry shutdown failed", "error", err)
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
