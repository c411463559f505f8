package fifteen

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

// Variant selects how a new board is shuffled.
type Variant string

const (
	VariantClassic  Variant = "fifteen"          // Raw shuffle, may be unsolvable
	VariantSolvable Variant = "fifteen_solvable" // Shuffle with parity repair
)

// Package-level variables for config
var (
	activeConfig = config.DefaultFifteenConfig()
)

// SetConfig sets the settings used by games created afterwards.
func SetConfig(cfg config.FifteenConfig) {
	activeConfig = cfg
}

// GetConfig returns the settings new games are created with.
func GetConfig() config.FifteenConfig {
	return activeConfig
}

// layout is the board position in terminal cells.
type layout struct {
	boardX, boardY int // Top-left terminal cell of the grid
	cellW, cellH   int // Terminal cells per board cell
	minW, minH     int // Smallest screen the board fits on
}

// Game implements the sliding puzzle on top of a Controller.
type Game struct {
	variant  Variant
	settings config.FifteenConfig
	palette  config.Palette

	rng  *rand.Rand
	tick uint64

	ctrl      *Controller
	geom      Geometry
	layout    layout
	keyCursor Cell

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
}

// New creates a game with the raw shuffle.
func New() *Game {
	return NewWithConfig(VariantClassic, activeConfig)
}

// NewSolvable creates a game whose boards are always solvable.
func NewSolvable() *Game {
	return NewWithConfig(VariantSolvable, activeConfig)
}

// NewWithConfig creates a game with explicit settings.
// Invalid settings fall back to the defaults.
func NewWithConfig(variant Variant, cfg config.FifteenConfig) *Game {
	if cfg.Validate(Size) != nil {
		cfg = config.DefaultFifteenConfig()
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		palette, _ = config.DefaultFifteenConfig().Colors.Palette()
	}
	return &Game{
		variant:  variant,
		settings: cfg,
		palette:  palette,
	}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantSolvable), func() registry.Game {
		return NewSolvable()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantSolvable {
		return "Fifteen (Solvable)"
	}
	return "Fifteen"
}

// Reset shuffles a new board and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	var board Board
	if g.variant == VariantSolvable {
		board = NewSolvableBoard(g.rng)
	} else {
		board = NewBoard(g.rng)
	}

	g.ctrl = NewController(board, g.newAnimator(),
		WithFreezeOnGameOver(g.settings.GameOver.FreezeInput))
	g.keyCursor = board.Blank()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// newAnimator builds an animator whose slide covers one cell in the configured frames.
func (g *Game) newAnimator() Animator {
	cell := float64(g.settings.Board.Edge) / Size
	step := cell / float64(g.settings.Animation.Frames)
	if g.settings.Animation.Easing == config.EasingEaseOut {
		return NewEasedAnimator(cell, step)
	}
	return NewPlainAnimator(cell, step)
}

// Resize recomputes the layout for a new screen size. The board is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	aspect := g.settings.Board.Aspect
	edge := g.settings.Board.Edge

	l := layout{
		cellW: edge / Size,
		cellH: max(1, int(math.Round(float64(edge)/Size/aspect))),
	}
	boardW := l.cellW * Size
	boardH := l.cellH * Size
	l.boardX = (width - boardW) / 2
	l.boardY = g.settings.Board.HUDHeight + 1
	// Frame around the board plus the line below it
	l.minW = boardW + 2
	l.minH = l.boardY + boardH + 2
	g.layout = l

	g.geom = Geometry{
		Origin: core.Vec2{X: float64(l.boardX), Y: float64(l.boardY) * g.rowScale()},
		Edge:   float64(edge),
	}
	g.tooSmall = width < l.minW || height < l.minH
}

// PointerAt converts a terminal cell to pointer space.
// The pointer sits at the middle of the terminal cell. Rows are scaled by the
// drawn cell proportions so a tile is square in pointer space.
func (g *Game) PointerAt(col, row int) core.Vec2 {
	return core.Vec2{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * g.rowScale()}
}

// rowScale is the pointer-space height of one terminal row.
// It comes from the rounded cell height, not the configured aspect.
func (g *Game) rowScale() float64 {
	return float64(g.layout.cellW) / float64(g.layout.cellH)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	ev := in.Clone()

	// The mouse and the keyboard share one cursor
	if p, ok := in.Pointer(); ok {
		if c, ok := g.geom.CellAt(p); ok {
			g.keyCursor = c
		}
	}
	if g.moveKeyCursor(in) {
		ev.SetPointer(g.geom.CellCenter(g.keyCursor))
	}
	if in.Has(core.ActionSelect) {
		ev.SetPointer(g.geom.CellCenter(g.keyCursor))
		ev.Set(core.ActionPrimary)
	}

	moved := g.ctrl.Handle(g.geom, ev)
	g.ctrl.Animate()

	return core.StepResult{State: g.State(), Moved: moved}
}

// moveKeyCursor applies arrow actions to the keyboard cursor.
func (g *Game) moveKeyCursor(in core.InputFrame) bool {
	var d Cell
	switch {
	case in.Has(core.ActionUp):
		d = DirUp.Delta()
	case in.Has(core.ActionDown):
		d = DirDown.Delta()
	case in.Has(core.ActionLeft):
		d = DirLeft.Delta()
	case in.Has(core.ActionRight):
		d = DirRight.Delta()
	default:
		return false
	}
	next := g.keyCursor.Add(d)
	next.X = core.Clamp(next.X, 0, Size-1)
	next.Y = core.Clamp(next.Y, 0, Size-1)
	g.keyCursor = next
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Moves:    g.ctrl.Board().Moves(),
		Started:  g.ctrl.Phase() != PhasePrepare,
		GameOver: g.ctrl.Phase() == PhaseGameOver,
	}
}

// Phase returns the controller phase.
func (g *Game) Phase() Phase {
	return g.ctrl.Phase()
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Click tile, then blank | Arrows+Enter: Keyboard | Right click/X: Cancel | R: New board | Q: Quit"
}
