package fifteen

import (
	"math"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// Phase is the stage of a game.
type Phase int

const (
	PhasePrepare   Phase = iota // Waiting for the start action
	PhaseInProcess              // Playing
	PhaseGameOver               // Board solved
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePrepare:
		return "prepare"
	case PhaseInProcess:
		return "in_process"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventSource is one tick of positioned input.
// core.InputFrame satisfies it.
type EventSource interface {
	// Pointer returns the latest absolute pointer position, if any arrived.
	Pointer() (core.Vec2, bool)
	// Has reports whether the action was triggered this tick.
	Has(a core.Action) bool
}

// Geometry places the board in pointer space.
type Geometry struct {
	Origin core.Vec2 // Top-left corner of the board
	Edge   float64   // Length of a board side
}

// CellSize returns the length of one cell side.
func (g Geometry) CellSize() float64 {
	return g.Edge / Size
}

// CellAt maps a pointer position to a board cell.
// The boolean is false when the position is off the board.
func (g Geometry) CellAt(p core.Vec2) (Cell, bool) {
	local := p.Sub(g.Origin)
	if local.X < 0 || local.X >= g.Edge || local.Y < 0 || local.Y >= g.Edge {
		return Cell{}, false
	}
	size := g.CellSize()
	c := Cell{
		X: int(math.Floor(local.X / size)),
		Y: int(math.Floor(local.Y / size)),
	}
	// Guard against rounding at the far edge
	c.X = core.Clamp(c.X, 0, Size-1)
	c.Y = core.Clamp(c.Y, 0, Size-1)
	return c, true
}

// CellOrigin returns the top-left corner of c.
func (g Geometry) CellOrigin(c Cell) core.Vec2 {
	size := g.CellSize()
	return g.Origin.Add(core.Vec2{X: float64(c.X) * size, Y: float64(c.Y) * size})
}

// CellCenter returns the centre of c.
func (g Geometry) CellCenter(c Cell) core.Vec2 {
	half := g.CellSize() / 2
	return g.CellOrigin(c).Add(core.Vec2{X: half, Y: half})
}

// Controller turns input into board moves. It owns the board and the animator.
type Controller struct {
	board    Board
	animator Animator
	phase    Phase

	selected    Cell
	hasSelected bool

	cursor core.Vec2

	animDir  Direction
	animCell Cell
	offset   core.Vec2

	freezeOnGameOver bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithFreezeOnGameOver makes primary presses do nothing once the board is solved.
func WithFreezeOnGameOver(freeze bool) Option {
	return func(c *Controller) {
		c.freezeOnGameOver = freeze
	}
}

// NewController creates a controller in the prepare phase.
func NewController(board Board, animator Animator, opts ...Option) *Controller {
	c := &Controller{
		board:    board,
		animator: animator,
		phase:    PhasePrepare,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle processes one tick of input. It returns true if a tile started sliding.
// Clicks off the board, on the blank or on a distant tile are ignored.
func (c *Controller) Handle(geom Geometry, ev EventSource) bool {
	if p, ok := ev.Pointer(); ok {
		c.cursor = p
	}

	moved := c.dispatch(geom, ev)

	if ev.Has(core.ActionSecondary) {
		c.ClearSelection()
	}
	return moved
}

func (c *Controller) dispatch(geom Geometry, ev EventSource) bool {
	switch c.phase {
	case PhasePrepare:
		if ev.Has(core.ActionStart) {
			c.phase = PhaseInProcess
		}
		return false
	case PhaseGameOver:
		if c.freezeOnGameOver {
			return false
		}
	}

	if !ev.Has(core.ActionPrimary) {
		return false
	}

	clicked, ok := geom.CellAt(c.cursor)
	if !ok {
		return false
	}

	if !c.hasSelected {
		if clicked != c.board.Blank() {
			c.selected = clicked
			c.hasSelected = true
		}
		return false
	}

	moved := c.swapOrCancel(clicked, c.selected)
	c.ClearSelection()
	return moved
}

// swapOrCancel slides selected into the blank when clicked is the blank.
// Nothing happens while a slide is still running.
func (c *Controller) swapOrCancel(clicked, selected Cell) bool {
	if !c.animator.IsOver() {
		return false
	}
	if clicked != c.board.Blank() {
		return false
	}
	if !c.board.SwapWithBlank(selected) {
		return false
	}

	c.animCell = selected
	c.animDir = directionBetween(selected, clicked)
	c.offset = core.Vec2{}
	c.animator.Start()

	if c.board.IsSolved() {
		c.phase = PhaseGameOver
	}
	return true
}

// directionBetween returns the way a tile at from slides to reach to.
// A column difference wins over a row difference.
func directionBetween(from, to Cell) Direction {
	switch {
	case to.X > from.X:
		return DirRight
	case to.X < from.X:
		return DirLeft
	case to.Y > from.Y:
		return DirDown
	default:
		return DirUp
	}
}

// Animate advances the running slide once and caches the displacement.
// Call it once per tick.
func (c *Controller) Animate() core.Vec2 {
	c.offset = c.animator.Animate(c.animDir)
	return c.offset
}

// Offset returns the displacement computed by the last Animate call.
func (c *Controller) Offset() core.Vec2 {
	return c.offset
}

// Sliding reports the tile in flight: the cell it left and its direction.
// The tile now sits at from.Add(dir.Delta()).
func (c *Controller) Sliding() (from Cell, dir Direction, ok bool) {
	if c.animator.IsOver() {
		return Cell{}, 0, false
	}
	return c.animCell, c.animDir, true
}

// AnimationDone reports whether no slide is running.
func (c *Controller) AnimationDone() bool {
	return c.animator.IsOver()
}

// ClearSelection drops the armed tile, if any.
func (c *Controller) ClearSelection() {
	c.selected = Cell{}
	c.hasSelected = false
}

// Selected returns the armed tile.
func (c *Controller) Selected() (Cell, bool) {
	return c.selected, c.hasSelected
}

// Board returns a copy of the controller's board.
func (c *Controller) Board() Board {
	return c.board
}

// Phase returns the current game phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Cursor returns the last pointer position seen.
func (c *Controller) Cursor() core.Vec2 {
	return c.cursor
}
