package fifteen

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Phase       string
	Moves       int
	Rows        [Size][Size]int // Values row by row, as drawn
	Selected    *Cell
	KeyCursor   Cell
	Sliding     bool
	Solved      bool
	WindowSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	board := g.ctrl.Board()
	s := Snapshot{
		Tick:        g.tick,
		Variant:     string(g.variant),
		Phase:       g.ctrl.Phase().String(),
		Moves:       board.Moves(),
		Rows:        board.Rows(),
		KeyCursor:   g.keyCursor,
		Sliding:     !g.ctrl.AnimationDone(),
		Solved:      board.IsSolved(),
		WindowSmall: g.tooSmall,
	}
	if sel, ok := g.ctrl.Selected(); ok {
		s.Selected = &sel
	}
	return s
}
