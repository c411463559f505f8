package fifteen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// testGeom is a 400x400 board at the origin, so every cell is 100 wide.
var testGeom = Geometry{Edge: 400}

func center(c Cell) core.Vec2 {
	return testGeom.CellCenter(c)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func clickAt(p core.Vec2) core.InputFrame {
	f := frame(core.ActionPrimary)
	f.SetPointer(p)
	return f
}

func click(c Cell) core.InputFrame {
	return clickAt(center(c))
}

func newStarted(t *testing.T, rows [Size][Size]int, opts ...Option) (*Controller, *PlainAnimator) {
	t.Helper()
	anim := NewPlainAnimator(100, 10)
	c := NewController(mustBoard(t, rows), anim, opts...)
	c.Handle(testGeom, frame(core.ActionStart))
	require.Equal(t, PhaseInProcess, c.Phase())
	return c, anim
}

func finishSlide(c *Controller) {
	for !c.AnimationDone() {
		c.Animate()
	}
}

func TestGeometryCellAt(t *testing.T) {
	g := Geometry{Origin: core.Vec2{X: 10, Y: 20}, Edge: 40}

	tests := []struct {
		name string
		p    core.Vec2
		want Cell
		ok   bool
	}{
		{"top left", core.Vec2{X: 10, Y: 20}, Cell{0, 0}, true},
		{"inside second column", core.Vec2{X: 21, Y: 29.9}, Cell{1, 0}, true},
		{"last cell", core.Vec2{X: 49.99, Y: 59.99}, Cell{3, 3}, true},
		{"right edge excluded", core.Vec2{X: 50, Y: 30}, Cell{}, false},
		{"bottom edge excluded", core.Vec2{X: 30, Y: 60}, Cell{}, false},
		{"left of board", core.Vec2{X: 9.5, Y: 30}, Cell{}, false},
		{"above board", core.Vec2{X: 30, Y: 19}, Cell{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.CellAt(tt.p)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGeometryCellCenterRoundTrip(t *testing.T) {
	g := Geometry{Origin: core.Vec2{X: 24, Y: 8}, Edge: 32}
	for x := range Size {
		for y := range Size {
			c := Cell{X: x, Y: y}
			got, ok := g.CellAt(g.CellCenter(c))
			require.True(t, ok)
			require.Equal(t, c, got)
		}
	}
}

func TestPrepareIgnoresClicks(t *testing.T) {
	c := NewController(mustBoard(t, fixture), NewPlainAnimator(100, 10))
	require.Equal(t, PhasePrepare, c.Phase())

	require.False(t, c.Handle(testGeom, click(Cell{X: 2, Y: 3})))
	_, selected := c.Selected()
	require.False(t, selected)
	require.Equal(t, PhasePrepare, c.Phase())

	// The pointer is still tracked
	require.Equal(t, center(Cell{X: 2, Y: 3}), c.Cursor())

	c.Handle(testGeom, frame(core.ActionStart))
	require.Equal(t, PhaseInProcess, c.Phase())
}

func TestSelectThenMove(t *testing.T) {
	c, anim := newStarted(t, fixture)

	require.False(t, c.Handle(testGeom, click(Cell{X: 2, Y: 3})))
	sel, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, Cell{X: 2, Y: 3}, sel)

	require.True(t, c.Handle(testGeom, click(Cell{X: 2, Y: 2})))
	_, ok = c.Selected()
	require.False(t, ok)

	b := c.Board()
	require.Equal(t, Cell{X: 2, Y: 3}, b.Blank())
	require.Equal(t, 11, b.Value(Cell{X: 2, Y: 2}))
	require.Equal(t, 1, b.Moves())

	from, dir, sliding := c.Sliding()
	require.True(t, sliding)
	require.Equal(t, Cell{X: 2, Y: 3}, from)
	require.Equal(t, DirUp, dir)
	require.Zero(t, anim.Progress())

	require.Equal(t, core.Vec2{Y: -10}, c.Animate())
	require.Equal(t, core.Vec2{Y: -10}, c.Offset())
}

func TestSlideDirections(t *testing.T) {
	tests := []struct {
		name string
		tile Cell
		want Direction
	}{
		{"from above", Cell{X: 2, Y: 1}, DirDown},
		{"from below", Cell{X: 2, Y: 3}, DirUp},
		{"from left", Cell{X: 1, Y: 2}, DirRight},
		{"from right", Cell{X: 3, Y: 2}, DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newStarted(t, fixture)
			c.Handle(testGeom, click(tt.tile))
			require.True(t, c.Handle(testGeom, click(Cell{X: 2, Y: 2})))
			from, dir, ok := c.Sliding()
			require.True(t, ok)
			require.Equal(t, tt.tile, from)
			require.Equal(t, tt.want, dir)
			require.Equal(t, Cell{X: 2, Y: 2}, from.Add(dir.Delta()))
		})
	}
}

func TestBlankCannotBeSelected(t *testing.T) {
	c, _ := newStarted(t, fixture)
	require.False(t, c.Handle(testGeom, click(Cell{X: 2, Y: 2})))
	_, ok := c.Selected()
	require.False(t, ok)
}

func TestDistantTileCancelsSelection(t *testing.T) {
	c, _ := newStarted(t, fixture)
	c.Handle(testGeom, click(Cell{X: 0, Y: 0}))

	require.False(t, c.Handle(testGeom, click(Cell{X: 2, Y: 2})))
	_, ok := c.Selected()
	require.False(t, ok)
	require.Equal(t, fixture, c.Board().Rows())
}

func TestSecondTileClickCancels(t *testing.T) {
	c, _ := newStarted(t, fixture)
	c.Handle(testGeom, click(Cell{X: 2, Y: 3}))

	// Clicking another tile drops the selection instead of re-selecting
	require.False(t, c.Handle(testGeom, click(Cell{X: 1, Y: 2})))
	_, ok := c.Selected()
	require.False(t, ok)
	require.Zero(t, c.Board().Moves())
}

func TestOffBoardClickIsIgnored(t *testing.T) {
	c, _ := newStarted(t, fixture)
	c.Handle(testGeom, click(Cell{X: 2, Y: 3}))

	require.False(t, c.Handle(testGeom, clickAt(core.Vec2{X: 450, Y: 50})))
	require.False(t, c.Handle(testGeom, clickAt(core.Vec2{X: -1, Y: 50})))
	sel, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, Cell{X: 2, Y: 3}, sel)
}

func TestSecondaryClearsSelection(t *testing.T) {
	c, _ := newStarted(t, fixture)
	c.Handle(testGeom, click(Cell{X: 2, Y: 3}))

	c.Handle(testGeom, frame(core.ActionSecondary))
	_, ok := c.Selected()
	require.False(t, ok)
	require.Zero(t, c.Board().Moves())
}

func TestPointerMotionUpdatesCursor(t *testing.T) {
	c, _ := newStarted(t, fixture)
	f := frame()
	f.SetPointer(core.Vec2{X: 123, Y: 45})

	require.False(t, c.Handle(testGeom, f))
	require.Equal(t, core.Vec2{X: 123, Y: 45}, c.Cursor())
	_, ok := c.Selected()
	require.False(t, ok)
}

func TestMoveBlockedWhileSliding(t *testing.T) {
	c, anim := newStarted(t, fixture)
	c.Handle(testGeom, click(Cell{X: 2, Y: 3}))
	require.True(t, c.Handle(testGeom, click(Cell{X: 2, Y: 2})))
	c.Animate()

	// 11 sits at (2, 2) now and the blank at (2, 3)
	c.Handle(testGeom, click(Cell{X: 2, Y: 2}))
	require.False(t, c.Handle(testGeom, click(Cell{X: 2, Y: 3})))
	_, ok := c.Selected()
	require.False(t, ok)
	require.Equal(t, 1, c.Board().Moves())

	finishSlide(c)
	require.True(t, anim.IsOver())
	_, _, sliding := c.Sliding()
	require.False(t, sliding)
	require.Equal(t, core.Vec2{}, c.Animate())

	c.Handle(testGeom, click(Cell{X: 2, Y: 2}))
	require.True(t, c.Handle(testGeom, click(Cell{X: 2, Y: 3})))
	require.Equal(t, fixture, c.Board().Rows())
	require.Equal(t, 2, c.Board().Moves())
}

func solve(t *testing.T, c *Controller) {
	t.Helper()
	c.Handle(testGeom, click(Cell{X: 2, Y: 3}))
	require.True(t, c.Handle(testGeom, click(Cell{X: 2, Y: 2})))
	finishSlide(c)
	require.Equal(t, PhaseInProcess, c.Phase())

	c.Handle(testGeom, click(Cell{X: 3, Y: 3}))
	require.True(t, c.Handle(testGeom, click(Cell{X: 2, Y: 3})))
	require.Equal(t, PhaseGameOver, c.Phase())
	require.True(t, c.Board().IsSolved())
	finishSlide(c)
}

func TestSolveEntersGameOver(t *testing.T) {
	c, _ := newStarted(t, fixture, WithFreezeOnGameOver(true))
	solve(t, c)

	// Frozen: nothing can be selected any more
	require.False(t, c.Handle(testGeom, click(Cell{X: 3, Y: 2})))
	_, ok := c.Selected()
	require.False(t, ok)
	require.Equal(t, PhaseGameOver, c.Phase())
}

func TestGameOverWithoutFreeze(t *testing.T) {
	c, _ := newStarted(t, fixture, WithFreezeOnGameOver(false))
	solve(t, c)

	// 12 slides down into the blank; the phase never goes back
	c.Handle(testGeom, click(Cell{X: 3, Y: 2}))
	_, ok := c.Selected()
	require.True(t, ok)
	require.True(t, c.Handle(testGeom, click(Cell{X: 3, Y: 3})))
	require.False(t, c.Board().IsSolved())
	require.Equal(t, PhaseGameOver, c.Phase())
}

func TestStartIgnoredAfterPrepare(t *testing.T) {
	c, _ := newStarted(t, fixture)
	c.Handle(testGeom, frame(core.ActionStart))
	require.Equal(t, PhaseInProcess, c.Phase())
}
