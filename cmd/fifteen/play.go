package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
	"github.com/vovakirdan/tui-fifteen/internal/platform/tui"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the puzzle",
	Long: `Start playing the puzzle. Without an argument the classic variant is used.

Variants:
  fifteen           - Plain random shuffle (may be unsolvable)
  fifteen_solvable  - Shuffle that can always be solved

Controls:
  Left click       - Pick a tile, then click the gap to slide it
  Right click, X   - Drop the picked tile
  Arrows/hjkl      - Move the keyboard cursor
  Enter/Space      - Start, or pick the cell under the cursor
  R                - New board
  ?                - More keys
  Q/Ctrl+C         - Quit

Examples:
  fifteen play
  fifteen play fifteen_solvable
  fifteen play --seed 7 --speed slow
  fifteen play --config ./my-fifteen.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(fifteen.VariantClassic)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'fifteen list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
