package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nof-sh/textkit/config"
	"github.com/nof-sh/textkit/console"
	"github.com/nof-sh/textkit/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "Caesar cipher and arithmetic expression evaluator",
	Long: `textkit encrypts and decrypts text with a Caesar cipher over the Latin
and Cyrillic alphabets, recovers unknown shifts by brute force, and evaluates
arithmetic expressions with + - * / and parentheses.

Run without arguments to start the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "textkit.yaml", "Path to the YAML configuration file")

	rootCmd.AddCommand(encryptCmd, decryptCmd, bruteForceCmd, evalCmd, batchCmd)
}

// runMenu starts the interactive console menu on stdin/stdout.
func runMenu(cmd *cobra.Command, args []string) error {
	menu := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Menu, logger)
	return menu.Run(commandContext(cmd))
}

// commandContext returns the context the command was executed with.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, console.DescribeError(err))
		stop()
		os.Exit(1)
	}
}
