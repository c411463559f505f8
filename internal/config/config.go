// Package config provides YAML-based configuration loading for the puzzle:
// board layout, slide animation, game-over policy and colours.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// FifteenConfig contains all configuration for the sliding puzzle.
type FifteenConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	GameOver  GameOverConfig  `yaml:"game_over"`
	Colors    ColorConfig     `yaml:"colors"`
}

// BoardConfig defines where and how large the board is drawn.
type BoardConfig struct {
	Edge      int     `yaml:"edge"`       // Board edge length in terminal columns
	Aspect    float64 `yaml:"aspect"`     // Height of a terminal cell relative to its width
	HUDHeight int     `yaml:"hud_height"` // Rows reserved above the board
}

// AnimationConfig defines how a tile slides into the blank.
type AnimationConfig struct {
	Frames int    `yaml:"frames"` // Ticks needed for one slide
	Easing string `yaml:"easing"` // "linear" or "ease_out"
}

// GameOverConfig defines input handling once the puzzle is solved.
type GameOverConfig struct {
	FreezeInput bool `yaml:"freeze_input"`
}

// ColorConfig names the colours used by the view (see core.ParseColor).
type ColorConfig struct {
	Tile     string `yaml:"tile"`
	Blank    string `yaml:"blank"`
	Selected string `yaml:"selected"`
	Sliding  string `yaml:"sliding"`
	Cursor   string `yaml:"cursor"`
	Text     string `yaml:"text"`
	Border   string `yaml:"border"`
}

// Palette is a resolved ColorConfig.
type Palette struct {
	Tile     core.Color
	Blank    core.Color
	Selected core.Color
	Sliding  core.Color
	Cursor   core.Color
	Text     core.Color
	Border   core.Color
}

// Easing names accepted in AnimationConfig.
const (
	EasingLinear  = "linear"
	EasingEaseOut = "ease_out"
)

// Palette resolves colour names. Unknown names are an error.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"tile", c.Tile, &p.Tile},
		{"blank", c.Blank, &p.Blank},
		{"selected", c.Selected, &p.Selected},
		{"sliding", c.Sliding, &p.Sliding},
		{"cursor", c.Cursor, &p.Cursor},
		{"text", c.Text, &p.Text},
		{"border", c.Border, &p.Border},
	}
	for _, f := range fields {
		if f.src == "" {
			*f.dst = core.ColorDefault
			continue
		}
		col, ok := core.ParseColor(f.src)
		if !ok {
			return p, fmt.Errorf("unknown %s color %q", f.name, f.src)
		}
		*f.dst = col
	}
	return p, nil
}

// Validate checks the config for a board with the given number of cells per side.
func (c FifteenConfig) Validate(side int) error {
	if c.Board.Edge <= 0 {
		return fmt.Errorf("board.edge must be positive, got %d", c.Board.Edge)
	}
	if c.Board.Edge%side != 0 {
		return fmt.Errorf("board.edge must be a multiple of %d, got %d", side, c.Board.Edge)
	}
	if c.Board.Aspect <= 0 {
		return fmt.Errorf("board.aspect must be positive, got %g", c.Board.Aspect)
	}
	if c.Board.HUDHeight < 0 {
		return fmt.Errorf("board.hud_height must not be negative, got %d", c.Board.HUDHeight)
	}
	if c.Animation.Frames <= 0 {
		return fmt.Errorf("animation.frames must be positive, got %d", c.Animation.Frames)
	}
	switch c.Animation.Easing {
	case "", EasingLinear, EasingEaseOut:
	default:
		return fmt.Errorf("unknown animation.easing %q", c.Animation.Easing)
	}
	if _, err := c.Colors.Palette(); err != nil {
		return err
	}
	return nil
}

// SpeedPreset represents a named slide speed.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// FramesForPreset returns the slide length in ticks for a speed preset.
// Unknown presets return 0.
func FramesForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 16
	case SpeedNormal:
		return 8
	case SpeedFast:
		return 4
	case SpeedInstant:
		return 1
	default:
		return 0
	}
}

// ApplySpeedPreset modifies the animation length based on a speed preset.
// An empty preset leaves the config untouched.
func ApplySpeedPreset(cfg *FifteenConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	frames := FramesForPreset(preset)
	if frames == 0 {
		return fmt.Errorf("unknown speed preset %q", preset)
	}
	cfg.Animation.Frames = frames
	return nil
}
