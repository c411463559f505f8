package fifteen

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.layout.cellW * Size
	boardH := g.layout.cellH * Size

	g.renderHUD(dst, g.layout.boardX, boardW)
	g.renderBoard(dst)
	g.renderOverlays(dst, g.layout.boardX, g.layout.boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH))
}

// renderHUD draws the title, move counter and selection.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	text := g.palette.Text

	title := "FIFTEEN"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, text)

	board := g.ctrl.Board()
	dst.DrawTextColor(boardX, 1, fmt.Sprintf("Moves: %d", board.Moves()), text)

	mode := "Classic"
	if g.variant == VariantSolvable {
		mode = "Solvable"
	}
	dst.DrawTextColor(max(boardX, boardX+boardW-len(mode)), 1, mode, text)

	if sel, ok := g.ctrl.Selected(); ok {
		msg := fmt.Sprintf("Selected %d", board.Value(sel))
		dst.DrawTextColor(boardX+(boardW-len(msg))/2, 2, msg, g.palette.Selected)
	}
}

// cellRect returns the terminal rectangle of a board cell.
func (g *Game) cellRect(c Cell) core.Rect {
	return core.Rect{
		X: g.layout.boardX + c.X*g.layout.cellW,
		Y: g.layout.boardY + c.Y*g.layout.cellH,
		W: g.layout.cellW,
		H: g.layout.cellH,
	}
}

// renderBoard draws the frame, the resting tiles and the tile in flight.
func (g *Game) renderBoard(dst *core.Screen) {
	l := g.layout
	frame := core.Rect{X: l.boardX - 1, Y: l.boardY - 1, W: l.cellW*Size + 2, H: l.cellH*Size + 2}
	dst.DrawBoxColor(frame, g.palette.Border)

	board := g.ctrl.Board()
	selected, hasSelected := g.ctrl.Selected()
	from, dir, sliding := g.ctrl.Sliding()
	dest := from.Add(dir.Delta())
	showCursor := g.ctrl.Phase() == PhaseInProcess

	for y := range Size {
		for x := range Size {
			c := Cell{X: x, Y: y}
			if sliding && c == dest {
				continue
			}
			r := g.cellRect(c)
			if board.Value(c) == Blank {
				g.drawBlank(dst, r, showCursor && c == g.keyCursor)
				continue
			}

			border := g.palette.Tile
			switch {
			case hasSelected && c == selected:
				border = g.palette.Selected
			case showCursor && c == g.keyCursor:
				border = g.palette.Cursor
			}
			g.drawTile(dst, r, board.Label(c), border)
		}
	}

	// The sliding tile is drawn last so it passes over the blank
	if sliding {
		off := g.ctrl.Offset()
		dx := int(math.Round(off.X))
		dy := int(math.Round(off.Y / g.rowScale()))
		r := g.cellRect(from).Translate(dx, dy)
		g.drawTile(dst, r, board.Label(dest), g.palette.Sliding)
	}
}

// drawTile draws one numbered tile.
func (g *Game) drawTile(dst *core.Screen, r core.Rect, label string, border core.Color) {
	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, border)
	x := r.X + (r.W-len(label))/2
	y := r.Y + r.H/2
	dst.DrawTextColor(x, y, label, g.palette.Text)
}

// drawBlank draws the empty cell, marking it when the keyboard cursor is on it.
func (g *Game) drawBlank(dst *core.Screen, r core.Rect, cursor bool) {
	dst.DrawRectColor(r, ' ', g.palette.Blank)
	cx, cy := r.Center()
	if cursor {
		dst.SetColor(cx, cy, '+', g.palette.Cursor)
		return
	}
	dst.SetColor(cx, cy, '·', g.palette.Blank)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch g.ctrl.Phase() {
	case PhasePrepare:
		g.drawOverlay(dst, centerX, centerY, "FIFTEEN", "Slide the tiles into order", "Press Enter to start")
	case PhaseGameOver:
		if !g.ctrl.AnimationDone() {
			return
		}
		moves := fmt.Sprintf("Solved in %d moves", g.ctrl.Board().Moves())
		g.drawOverlay(dst, centerX, centerY, "SOLVED!", moves, "Press R for a new board")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.Rect{X: centerX - boxW/2, Y: centerY - boxH/2, W: boxW, H: boxH}

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, g.palette.Border)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawTextColor(x, box.Y+1+i, line, g.palette.Text)
	}
}
