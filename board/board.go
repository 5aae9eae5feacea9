package board

import (
	"strings"

	"github.com/deitrix/ttytris/piece"
)

const (
	// Rows is the height of the board.
	Rows = 20
	// Cols is the width of the board.
	Cols = 15
)

const (
	// GlyphFilled and GlyphEmpty are the characters used by String.
	GlyphFilled = '#'
	GlyphEmpty  = '.'
)

// Grid is a rows-by-columns occupancy matrix.
type Grid [Rows][Cols]bool

// Board holds the settled cells. The falling piece is never part of the board until it is
// committed.
type Board struct {
	cells Grid
}

func New() *Board {
	return &Board{}
}

// InBounds reports whether row, col addresses a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (b *Board) Filled(row, col int) bool {
	if !InBounds(row, col) {
		return false
	}
	return b.cells[row][col]
}

// Set marks a single cell. Out of bounds coordinates are ignored.
func (b *Board) Set(row, col int, filled bool) {
	if !InBounds(row, col) {
		return
	}
	b.cells[row][col] = filled
}

// Grid returns a copy of the settled cells.
func (b *Board) Grid() Grid {
	return b.cells
}

// Fits reports whether p can occupy its current position. A cell of the piece is rejected if it
// lies left or right of the walls, below the floor, or on a settled cell. Cells above the top row
// are allowed so a piece can spawn partially off-screen.
func (b *Board) Fits(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= Cols || c.Row >= Rows {
			return false
		}
		if c.Row >= 0 && b.cells[c.Row][c.Col] {
			return false
		}
	}
	return true
}

// Commit writes the occupied cells of p into the board. It does not validate; callers must check
// Fits first. Cells outside the grid are dropped.
func (b *Board) Commit(p piece.Piece) {
	for _, c := range p.Cells() {
		b.Set(c.Row, c.Col, true)
	}
}

// ClearFullRows removes every full row, shifting the rows above it down by one, and returns the
// number of rows removed. Rows are scanned top to bottom so a single pass is enough.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for r := 0; r < Rows; r++ {
		if !b.full(r) {
			continue
		}
		b.removeRow(r)
		cleared++
	}
	return cleared
}

func (b *Board) full(row int) bool {
	for _, filled := range b.cells[row] {
		if !filled {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(row int) {
	for r := row; r > 0; r-- {
		b.cells[r] = b.cells[r-1]
	}
	b.cells[0] = [Cols]bool{}
}

func (b *Board) String() string {
	return b.cells.String()
}

// String renders the grid one line per row, each cell as a glyph followed by a space.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols*2 + 1))
	for _, row := range g {
		for _, filled := range row {
			sb.WriteRune(Glyph(filled))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Glyph returns the character drawn for a cell.
func Glyph(filled bool) rune {
	if filled {
		return GlyphFilled
	}
	return GlyphEmpty
}
