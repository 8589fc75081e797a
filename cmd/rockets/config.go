package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rockets/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in rockets config as YAML. Save it to
~/.rockets/configs/rockets.yaml or pass it with --config to customize
physics, fuel cells, the arena and difficulty.

Examples:
  rockets config > ~/.rockets/configs/rockets.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML("rockets")
	if data == nil {
		fmt.Fprintln(os.Stderr, "Error: no built-in config")
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck
}
