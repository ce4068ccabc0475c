package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabmark-labs/tabmark/pkg/tabular"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert delimited text to a Markdown table",
		Long: `Convert delimited text into a table.

Reads from the given file, or from stdin when no file (or "-") is given.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: Markdown format

Use --output to override: auto, table, markdown, json, csv`,
		Example: `  # Convert a CSV file to Markdown
  tabmark convert data.csv

  # Convert stdin, semicolon-separated
  cat data.txt | tabmark convert -d ';'

  # Supply column names for headerless input
  tabmark convert --headers id,name,score data.csv

  # Emit JSON instead
  tabmark convert -o json data.csv

  # Keep going on unparseable input (logs with -v, exits 0)
  tabmark convert --lenient noisy.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
	}

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	opts := tabular.ParseOptions{
		Delimiter: cfg.Delimiter,
		Headers:   cfg.Headers,
	}

	if cfg.Lenient {
		tbl, ok := tabular.TryParse(text, opts, tabular.NewSlogSink(cmdCtx.Logger))
		if !ok {
			return nil
		}
		return cmdCtx.Renderer.Render(tbl)
	}

	tbl, err := tabular.Parse(text, opts)
	if err != nil {
		return fmt.Errorf("failed to convert input: %w", err)
	}
	return cmdCtx.Renderer.Render(tbl)
}

// readInput reads the conversion source: a file argument, or stdin when the
// argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
