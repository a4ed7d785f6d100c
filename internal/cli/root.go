package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/monads/internal/config"
	"github.com/ib-77/monads/internal/logger"
	"github.com/ib-77/monads/pkg/monads"
)

// NewRootCommand builds the monads command tree. Each call returns a fresh
// tree so tests can run commands independently.
func NewRootCommand() *cobra.Command {
	var (
		configFile string
		log        *zap.Logger
		undo       = func() {}
	)

	rootCmd := &cobra.Command{
		Use:           "monads",
		Short:         "Work with weightings, probabilities and factors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfiguration(cmd, configFile); err != nil {
				return err
			}

			l, err := logger.New(config.GetLogLevel())
			if err != nil {
				return fmt.Errorf("fail to build logger: %w", err)
			}
			log = l
			undo = zap.ReplaceGlobals(log)

			zap.S().Debugw("configuration loaded",
				"command", cmd.CommandPath(),
				"output", config.GetOutput(),
				"precision", config.GetPrecision())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
			undo()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().String("output", config.DefaultOutput, "output format: text or json")
	rootCmd.PersistentFlags().Int32("precision", config.DefaultPrecision, "decimal places of printed ratios")

	rootCmd.AddCommand(
		newWeightingCommand(),
		newProbabilityCommand(),
		newFactorCommand(),
	)

	return rootCmd
}

func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// check turns a failed outcome into an error naming what was being done.
func check(d monads.Diagnostic, what string) error {
	if d.IsSuccess() {
		return nil
	}
	zap.S().Debugw("operation failed", "what", what, "message", d.Message(), "fields", d.ErrorMessages())
	return fmt.Errorf("%s: %w", what, d.Err())
}
