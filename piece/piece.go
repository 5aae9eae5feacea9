package piece

import (
	"slices"
)

// Kind identifies which catalog shape a piece was cloned from.
type Kind int

const (
	L Kind = iota
	S
	Z
	T
	J
	O
	I
)

var kindNames = [...]string{"L", "S", "Z", "T", "J", "O", "I"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// Piece is a square occupancy mask positioned on the board. Row and Col locate the top-left
// corner of the mask; Row may be negative while the piece is entering from above.
type Piece struct {
	Mask     []bool
	Size     int
	Kind     Kind
	Row, Col int
}

// Cell is an absolute board coordinate.
type Cell struct {
	Row, Col int
}

// Clone returns a copy of the piece which shares no storage with p.
func (p Piece) Clone() Piece {
	p.Mask = slices.Clone(p.Mask)
	return p
}

// Filled reports whether the mask is occupied at row i, column j of the piece's own grid.
func (p Piece) Filled(i, j int) bool {
	if i < 0 || j < 0 || i >= p.Size || j >= p.Size {
		return false
	}
	return p.Mask[i*p.Size+j]
}

// Cells returns the board coordinates of every occupied cell in the mask.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for i := range p.Mask {
		if !p.Mask[i] {
			continue
		}
		cells = append(cells, Cell{
			Row: p.Row + i/p.Size,
			Col: p.Col + i%p.Size,
		})
	}
	return cells
}

// Rotate turns the mask 90 degrees clockwise about its own bounding box. The anchor does not
// move, so non-square footprints appear to drift; there are no wall kicks.
func (p *Piece) Rotate() {
	old := p.Clone()
	n := p.Size
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p.Mask[i*n+j] = old.Mask[(n-1-j)*n+i]
		}
	}
}

// Rotated returns a rotated copy, leaving p untouched.
func (p Piece) Rotated() Piece {
	c := p.Clone()
	c.Rotate()
	return c
}

// Moved returns a copy of p offset by the given number of rows and columns.
func (p Piece) Moved(dRow, dCol int) Piece {
	c := p.Clone()
	c.Row += dRow
	c.Col += dCol
	return c
}

// Equal reports whether both pieces have the same shape, orientation and position.
func (p Piece) Equal(o Piece) bool {
	return p.Size == o.Size && p.Kind == o.Kind && p.Row == o.Row && p.Col == o.Col &&
		slices.Equal(p.Mask, o.Mask)
}
