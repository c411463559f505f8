// Package fifteen implements the sliding fifteen puzzle: the board model,
// the slide animator and the interaction controller, plus the registry.Game
// wrapper the terminal platform runs.
package fifteen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// Size is the number of cells on each side of the board.
const Size = 4

// Blank is the value marking the empty cell. It is the largest value on the board.
const Blank = Size * Size

// labelWidth is the fixed width of a cell label.
const labelWidth = 2

// Cell addresses a board position: X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the offset from o to c.
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// InBounds reports whether c lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Board holds a permutation of 1..Size*Size, with Blank marking the empty cell.
// Cells are stored column first: cells[x][y].
type Board struct {
	cells [Size][Size]int
	moves int
}

// NewBoard returns a board filled with a uniformly random permutation.
// The permutation is not checked for solvability.
func NewBoard(rng *rand.Rand) Board {
	perm := rng.Perm(Size * Size)

	var b Board
	for x := range Size {
		for y := range Size {
			b.cells[x][y] = perm[x*Size+y] + 1
		}
	}
	return b
}

// NewSolvableBoard returns a random board that can be solved by sliding.
// Boards with the wrong parity get their first two tiles exchanged.
func NewSolvableBoard(rng *rand.Rand) Board {
	b := NewBoard(rng)
	if !b.IsSolvable() {
		a, c := b.firstTwoTiles()
		b.cells[a.X][a.Y], b.cells[c.X][c.Y] = b.cells[c.X][c.Y], b.cells[a.X][a.Y]
	}
	return b
}

// SolvedBoard returns the board in its winning arrangement.
func SolvedBoard() Board {
	var b Board
	for y := range Size {
		for x := range Size {
			b.cells[x][y] = y*Size + x + 1
		}
	}
	return b
}

// BoardFromRows builds a board from values listed row by row, as they appear
// on screen. It returns an error unless every value 1..Size*Size occurs once.
func BoardFromRows(rows [Size][Size]int) (Board, error) {
	var b Board
	var seen [Blank + 1]bool
	for y := range Size {
		for x := range Size {
			v := rows[y][x]
			if v < 1 || v > Blank {
				return Board{}, fmt.Errorf("fifteen: value %d at (%d, %d) out of range", v, x, y)
			}
			if seen[v] {
				return Board{}, fmt.Errorf("fifteen: value %d appears twice", v)
			}
			seen[v] = true
			b.cells[x][y] = v
		}
	}
	return b, nil
}

// Rows returns the values row by row, as they appear on screen.
func (b Board) Rows() [Size][Size]int {
	var rows [Size][Size]int
	for y := range Size {
		for x := range Size {
			rows[y][x] = b.cells[x][y]
		}
	}
	return rows
}

// Value returns the value at c. c must be on the board.
func (b Board) Value(c Cell) int {
	return b.cells[c.X][c.Y]
}

// Moves returns the number of successful swaps.
func (b Board) Moves() int {
	return b.moves
}

// Blank returns the position of the empty cell.
// It panics if the board has no empty cell, which means the board is corrupt.
func (b Board) Blank() Cell {
	for x := range Size {
		for y := range Size {
			if b.cells[x][y] == Blank {
				return Cell{X: x, Y: y}
			}
		}
	}
	panic("fifteen: board has no blank cell")
}

// IsNeighbours reports whether a and b share a row or column and are one step apart.
func IsNeighbours(a, b Cell) bool {
	return core.Abs(a.X-b.X)+core.Abs(a.Y-b.Y) == 1
}

// SwapWithBlank moves the tile at c into the blank if they are neighbours.
// It returns false and leaves the board unchanged otherwise.
func (b *Board) SwapWithBlank(c Cell) bool {
	if !c.InBounds() {
		return false
	}
	blank := b.Blank()
	if !IsNeighbours(c, blank) {
		return false
	}
	b.cells[blank.X][blank.Y], b.cells[c.X][c.Y] = b.cells[c.X][c.Y], Blank
	b.moves++
	return true
}

// IsSolved reports whether the tiles read 1..Size*Size-1 row by row with the
// blank in the bottom-right corner.
func (b Board) IsSolved() bool {
	want := 1
	for y := range Size {
		for x := range Size {
			if b.cells[x][y] != want {
				return false
			}
			want++
		}
	}
	return true
}

// IsSolvable reports whether the board can reach the solved arrangement by
// sliding tiles. The permutation parity must match the parity of the blank's
// distance from its home corner.
func (b Board) IsSolvable() bool {
	var seq [Size * Size]int
	i := 0
	for y := range Size {
		for x := range Size {
			seq[i] = b.cells[x][y]
			i++
		}
	}

	inversions := 0
	for i := range seq {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inversions++
			}
		}
	}

	blank := b.Blank()
	distance := (Size - 1 - blank.X) + (Size - 1 - blank.Y)
	return inversions%2 == distance%2
}

// Label returns the fixed-width text for the tile at c; the blank is spaces.
func (b Board) Label(c Cell) string {
	v := b.Value(c)
	if v == Blank {
		return fmt.Sprintf("%*s", labelWidth, "")
	}
	return fmt.Sprintf("%*d", labelWidth, v)
}

// String renders the board row by row, for logs and debugging.
func (b Board) String() string {
	var sb strings.Builder
	for y := range Size {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range Size {
			if x > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(b.Label(Cell{X: x, Y: y}))
		}
	}
	return sb.String()
}

// firstTwoTiles returns the first two non-blank cells in reading order.
func (b Board) firstTwoTiles() (Cell, Cell) {
	var found []Cell
	for y := range Size {
		for x := range Size {
			if b.cells[x][y] != Blank {
				found = append(found, Cell{X: x, Y: y})
				if len(found) == 2 {
					return found[0], found[1]
				}
			}
		}
	}
	panic("fifteen: board has fewer than two tiles")
}
