package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

// DefaultFifteenConfig returns the hardcoded default configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Board: BoardConfig{
			Edge:      32,
			Aspect:    2.0,
			HUDHeight: 3,
		},
		Animation: AnimationConfig{
			Frames: 8, // ~133ms at 60fps
			Easing: EasingLinear,
		},
		GameOver: GameOverConfig{
			FreezeInput: true,
		},
		Colors: ColorConfig{
			Tile:     "bright_blue",
			Blank:    "gray",
			Selected: "bright_yellow",
			Sliding:  "bright_cyan",
			Cursor:   "bright_white",
			Text:     "bright_white",
			Border:   "blue",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFifteenYAML
}
