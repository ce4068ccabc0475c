// Package config provides configuration management for the tabmark CLI.
//
// Settings layer in the usual precedence order: built-in defaults, then a
// tabmark.yaml config file, then TABMARK_* environment variables, then
// explicitly-set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Delimiter string   `koanf:"delimiter"`
	Headers   []string `koanf:"headers"`
	Output    string   `koanf:"output"`
	Lenient   bool     `koanf:"lenient"`
	Verbose   bool     `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDelimiter = ","
	DefaultOutput    = "auto" // Auto-detect: TTY=table, non-TTY=markdown
)
