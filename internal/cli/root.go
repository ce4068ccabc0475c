// Package cli provides the command-line interface for tabmark.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabmark-labs/tabmark/internal/cli/commands"
	"github.com/tabmark-labs/tabmark/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabmark",
		Short: "tabmark - delimited text to Markdown tables",
		Long: `tabmark converts delimited text (CSV and friends) into Markdown tables.

Comment lines (leading '#') and empty lines are skipped, cell values are
coerced to numbers where possible, and malformed records are dropped rather
than failing the whole conversion.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Verbose mode gets a real logger on stderr; otherwise logs
			// are discarded so data output stays clean.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			cmd.SetContext(context.WithValue(cmd.Context(), config.LoggerKey(), logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabmark.yaml)")
	rootCmd.PersistentFlags().StringP("delimiter", "d", "", "Column separator (default \",\")")
	rootCmd.PersistentFlags().StringSlice("headers", nil, "Explicit column names (every input line becomes data)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|table|markdown|json|csv)")
	rootCmd.PersistentFlags().Bool("lenient", false, "Log parse failures instead of failing the command")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "table", "markdown", "json", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
