// Package logicgrid implements the deduction-grid puzzle: a square of
// ternary cells the player toggles while working through the clues.
package logicgrid

import "github.com/nandinis/edudeck/internal/catalog"

// Cell is the player's marking for one row/column combination.
type Cell int

const (
	Unknown Cell = iota
	Possible
	Impossible
)

// Cycle advances the marking: unknown → possible → impossible → unknown.
func (c Cell) Cycle() Cell {
	switch c {
	case Unknown:
		return Possible
	case Possible:
		return Impossible
	default:
		return Unknown
	}
}

// Symbol renders the marking for display.
func (c Cell) Symbol() string {
	switch c {
	case Possible:
		return "O"
	case Impossible:
		return "X"
	default:
		return "·"
	}
}

// Grid is the state of one puzzle attempt. Rows are the first
// category's items and columns the second's.
type Grid struct {
	Puzzle catalog.Puzzle
	cells  [][]Cell
}

// NewGrid opens a fresh attempt at the puzzle.
func NewGrid(p catalog.Puzzle) *Grid {
	cells := make([][]Cell, p.Size)
	for i := range cells {
		cells[i] = make([]Cell, p.Size)
	}
	return &Grid{Puzzle: p, cells: cells}
}

// Cell returns the marking at row, col. Out-of-range reads are Unknown.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.Puzzle.Size || col < 0 || col >= g.Puzzle.Size {
		return Unknown
	}
	return g.cells[row][col]
}

// Toggle cycles the marking at row, col. Out-of-range toggles are
// ignored.
func (g *Grid) Toggle(row, col int) {
	if row < 0 || row >= g.Puzzle.Size || col < 0 || col >= g.Puzzle.Size {
		return
	}
	g.cells[row][col] = g.cells[row][col].Cycle()
}

// Solved reports whether the player has marked at least one full
// solution's worth of cells as possible. This accepts any grid with
// enough positive marks rather than validating against the clue set;
// the puzzle is self-checked and the reward is for engagement.
func (g *Grid) Solved() bool {
	possible := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Possible {
				possible++
			}
		}
	}
	return possible >= g.Puzzle.Size
}

// Reset clears every marking.
func (g *Grid) Reset() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = Unknown
		}
	}
}
