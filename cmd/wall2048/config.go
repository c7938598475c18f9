package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.wall2048/config.yaml and edit to taste.

Examples:
  wall2048 config > ~/.wall2048/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
