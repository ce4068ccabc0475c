// Package main provides the tabmark CLI entry point.
package main

import (
	"os"

	"github.com/tabmark-labs/tabmark/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
