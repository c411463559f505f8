// fifteen is the sliding fifteen puzzle for the terminal.
//
// Usage:
//
//	fifteen list              - List available puzzle variants
//	fifteen play [variant]    - Play a variant (default: fifteen)
//	fifteen menu              - Pick a variant interactively
//	fifteen config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible shuffle
//	--config <path>       - Use a custom config YAML
//	--speed <preset>      - Slide speed: slow, normal, fast, instant
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSpeed    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	// A missing .env is fine; values already in the environment win
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "Fifteen - the sliding tile puzzle in your terminal",
	Long: `Fifteen is the classic 4x4 sliding puzzle. Click a tile next to the
empty cell, then click the empty cell to slide it. Put the tiles in order
1 to 15 with the gap in the bottom-right corner to win.

Available commands:
  list     - Show all puzzle variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  config   - Print the effective configuration

Examples:
  fifteen play
  fifteen play fifteen_solvable --speed fast
  fifteen menu --seed 42
  fifteen config --config ./my-fifteen.yaml`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (or $"+envConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Slide speed preset: slow, normal, fast, instant")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (or $"+envLogLevel+")")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
