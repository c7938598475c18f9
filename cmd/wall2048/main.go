// wall2048 plays 2048 on your desktop background.
//
// Usage:
//
//	wall2048 play              - Play; the terminal reads keys, the wallpaper shows the board
//	wall2048 play --script ... - Replay a fixed list of moves without a terminal
//	wall2048 backends          - List wallpaper backends
//	wall2048 config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.wall2048/config.yaml, ./configs/wall2048.yaml)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wall2048",
	Short: "Play 2048 on your desktop background",
	Long: `wall2048 renders a 2048 board to an image and sets it as your desktop
background. Moves are read from the terminal; your original background is
restored when you quit.

Available commands:
  play      - Start a game
  backends  - Show wallpaper backends
  config    - Print the default configuration

Examples:
  wall2048 play
  wall2048 play --backend file --output ./board.png
  wall2048 play --script "left,up,up,right" --backend file
  wall2048 backends`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive play defaults to <temp dir>/wall2048.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
