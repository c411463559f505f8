package fifteen

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

func newTestGame(t *testing.T, variant Variant, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(variant, config.DefaultFifteenConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// terminalClick presses the left button over the middle of a board cell.
func terminalClick(g *Game, c Cell) core.InputFrame {
	r := g.cellRect(c)
	f := frame(core.ActionPrimary)
	f.SetPointer(g.PointerAt(r.X+r.W/2, r.Y+r.H/2))
	return f
}

// neighbourOfBlank returns some tile that can slide into the blank.
func neighbourOfBlank(t *testing.T, b Board) Cell {
	t.Helper()
	blank := b.Blank()
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		if c := blank.Add(d.Delta()); c.InBounds() {
			return c
		}
	}
	t.Fatal("blank has no neighbours")
	return Cell{}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"fifteen", "fifteen_solvable"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		require.Equal(t, id, g.ID())
	}
}

func TestLayout(t *testing.T) {
	g := newTestGame(t, VariantClassic, 1)

	require.Equal(t, 24, g.layout.boardX)
	require.Equal(t, 4, g.layout.boardY)
	require.Equal(t, 8, g.layout.cellW)
	require.Equal(t, 4, g.layout.cellH)
	require.Equal(t, core.Vec2{X: 24, Y: 8}, g.geom.Origin)
	require.Equal(t, 32.0, g.geom.Edge)
	requireTilesMapBack(t, g)
}

// requireTilesMapBack checks that every terminal cell of a drawn tile maps back to that tile.
func requireTilesMapBack(t *testing.T, g *Game) {
	t.Helper()
	for x := range Size {
		for y := range Size {
			c := Cell{X: x, Y: y}
			r := g.cellRect(c)
			for row := r.Y; row < r.Bottom(); row++ {
				for col := r.X; col < r.Right(); col++ {
					got, ok := g.geom.CellAt(g.PointerAt(col, row))
					require.True(t, ok, "terminal cell %d,%d", col, row)
					require.Equal(t, c, got, "terminal cell %d,%d", col, row)
				}
			}
		}
	}
}

func TestLayoutNonIntegerAspect(t *testing.T) {
	tests := []struct {
		name   string
		aspect float64
		cellH  int
	}{
		{"aspect 1.5", 1.5, 5},
		{"aspect 2.5", 2.5, 3},
		{"aspect 3", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFifteenConfig()
			cfg.Board.Aspect = tt.aspect
			g := NewWithConfig(VariantClassic, cfg)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 1})

			require.Equal(t, tt.aspect, g.settings.Board.Aspect)
			require.False(t, g.tooSmall)
			require.Equal(t, 8, g.layout.cellW)
			require.Equal(t, tt.cellH, g.layout.cellH)
			requireTilesMapBack(t, g)

			// A finished slide lands exactly one drawn cell away
			cell := g.geom.CellSize()
			require.Equal(t, g.layout.cellW, int(cell))
			require.Equal(t, g.layout.cellH, int(math.Round(cell/g.rowScale())))
		})
	}
}

func TestStartAndMouseMove(t *testing.T) {
	g := newTestGame(t, VariantClassic, 3)
	require.False(t, g.State().Started)

	g.Step(frame(core.ActionStart))
	require.True(t, g.State().Started)

	board := g.ctrl.Board()
	tile := neighbourOfBlank(t, board)
	blank := board.Blank()

	res := g.Step(terminalClick(g, tile))
	require.False(t, res.Moved)
	require.NotNil(t, g.Snapshot().Selected)

	res = g.Step(terminalClick(g, blank))
	require.True(t, res.Moved)
	require.Equal(t, 1, res.State.Moves)
	require.True(t, g.Snapshot().Sliding)

	// The first frame already ran in the same tick
	frames := config.DefaultFifteenConfig().Animation.Frames
	for range frames - 1 {
		g.Step(frame())
	}
	require.False(t, g.Snapshot().Sliding)
	require.Equal(t, board.Value(tile), g.ctrl.Board().Value(blank))
}

func TestKeyboardMove(t *testing.T) {
	g := newTestGame(t, VariantClassic, 5)
	g.Step(frame(core.ActionStart, core.ActionSelect))

	board := g.ctrl.Board()
	blank := board.Blank()
	require.Equal(t, blank, g.keyCursor)
	// Select on the blank with nothing armed does nothing
	require.Nil(t, g.Snapshot().Selected)

	tile := neighbourOfBlank(t, board)
	var toTile, toBlank core.Action
	switch tile.Sub(blank) {
	case DirUp.Delta():
		toTile, toBlank = core.ActionUp, core.ActionDown
	case DirDown.Delta():
		toTile, toBlank = core.ActionDown, core.ActionUp
	case DirLeft.Delta():
		toTile, toBlank = core.ActionLeft, core.ActionRight
	default:
		toTile, toBlank = core.ActionRight, core.ActionLeft
	}

	g.Step(frame(toTile))
	require.Equal(t, tile, g.keyCursor)
	g.Step(frame(core.ActionSelect))
	require.NotNil(t, g.Snapshot().Selected)

	g.Step(frame(toBlank))
	res := g.Step(frame(core.ActionSelect))
	require.True(t, res.Moved)
	require.Equal(t, tile, g.ctrl.Board().Blank())
}

func TestKeyCursorStaysOnBoard(t *testing.T) {
	g := newTestGame(t, VariantClassic, 9)
	g.Step(frame(core.ActionStart))
	for range Size + 2 {
		g.Step(frame(core.ActionLeft))
		g.Step(frame(core.ActionUp))
	}
	require.Equal(t, Cell{X: 0, Y: 0}, g.keyCursor)
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g := newTestGame(t, VariantSolvable, 12345)
		inputs := []core.InputFrame{
			frame(core.ActionStart),
			frame(core.ActionRight),
			frame(core.ActionSelect),
			frame(core.ActionDown),
			frame(core.ActionSelect),
			frame(),
			frame(core.ActionSecondary),
		}
		var out []Snapshot
		for _, in := range inputs {
			g.Step(in)
			out = append(out, g.Snapshot())
		}
		return out
	}

	require.Equal(t, run(), run())
}

func TestSolvableVariant(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := newTestGame(t, VariantSolvable, seed)
		require.True(t, g.ctrl.Board().IsSolvable(), "seed %d", seed)
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultFifteenConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	require.True(t, g.Snapshot().WindowSmall)

	g.Step(frame(core.ActionStart))
	require.False(t, g.State().Started)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	require.Contains(t, screen.String(), "Window too small")

	rows := g.ctrl.Board().Rows()
	g.Resize(80, 24)
	require.False(t, g.Snapshot().WindowSmall)
	require.Equal(t, rows, g.ctrl.Board().Rows())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, VariantClassic, 2)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	require.Contains(t, out, "FIFTEEN")
	require.Contains(t, out, "Press Enter to start")

	g.Step(frame(core.ActionStart))
	g.Render(screen)
	out = screen.String()
	require.NotContains(t, out, "Press Enter to start")
	require.Contains(t, out, "Moves: 0")
	require.Contains(t, out, "Classic")

	board := g.ctrl.Board()
	for x := range Size {
		for y := range Size {
			c := Cell{X: x, Y: y}
			if board.Value(c) == Blank {
				continue
			}
			r := g.cellRect(c)
			label := board.Label(c)
			lx := r.X + (r.W-len(label))/2
			ly := r.Y + r.H/2
			got := string([]rune{screen.Get(lx, ly), screen.Get(lx+1, ly)})
			require.Equal(t, label, got, "cell %v", c)
			require.Equal(t, '┌', screen.Get(r.X, r.Y))
		}
	}
}

func TestRenderDoesNotAdvanceSlide(t *testing.T) {
	g := newTestGame(t, VariantClassic, 4)
	screen := core.NewScreen(80, 24)
	g.Step(frame(core.ActionStart))

	board := g.ctrl.Board()
	g.Step(terminalClick(g, neighbourOfBlank(t, board)))
	g.Step(terminalClick(g, board.Blank()))
	require.True(t, g.Snapshot().Sliding)

	anim, ok := g.ctrl.animator.(*PlainAnimator)
	require.True(t, ok)
	step := g.geom.CellSize() / float64(g.settings.Animation.Frames)
	require.Equal(t, step, anim.Progress())

	offset := g.ctrl.Offset()
	g.Render(screen)
	first := screen.String()
	for range 5 {
		g.Render(screen)
		require.Equal(t, first, screen.String())
	}
	require.Equal(t, step, anim.Progress())
	require.Equal(t, offset, g.ctrl.Offset())

	// Only a tick moves the tile
	g.Step(frame())
	require.Equal(t, 2*step, anim.Progress())
	off := g.ctrl.Offset()
	require.Equal(t, 2*step, math.Abs(off.X)+math.Abs(off.Y))
}

func TestRenderSolved(t *testing.T) {
	g := newTestGame(t, VariantClassic, 2)
	g.ctrl = NewController(mustBoard(t, fixture), g.newAnimator(), WithFreezeOnGameOver(true))
	g.Step(frame(core.ActionStart))

	g.Step(terminalClick(g, Cell{X: 2, Y: 3}))
	g.Step(terminalClick(g, Cell{X: 2, Y: 2}))
	for !g.ctrl.AnimationDone() {
		g.Step(frame())
	}
	g.Step(terminalClick(g, Cell{X: 3, Y: 3}))
	res := g.Step(terminalClick(g, Cell{X: 2, Y: 3}))
	require.True(t, res.State.GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	require.NotContains(t, screen.String(), "SOLVED!")

	for !g.ctrl.AnimationDone() {
		g.Step(frame())
	}
	g.Render(screen)
	out := screen.String()
	require.Contains(t, out, "SOLVED!")
	require.True(t, strings.Contains(out, "Solved in 2 moves"))
}

func TestInvalidConfigFallsBack(t *testing.T) {
	cfg := config.DefaultFifteenConfig()
	cfg.Board.Edge = 30
	g := NewWithConfig(VariantClassic, cfg)
	require.Equal(t, config.DefaultFifteenConfig(), g.settings)
}
