package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tabmark-labs/tabmark/internal/cli/config"
	"github.com/tabmark-labs/tabmark/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext wired to the command's streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, falling back to defaults
// when the root command's config loading did not run (e.g. direct command
// construction in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Delimiter: config.DefaultDelimiter,
		Output:    config.DefaultOutput,
	}
}
