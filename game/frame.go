package game

import (
	"fmt"
	"io"

	"github.com/deitrix/ttytris/board"
	"github.com/deitrix/ttytris/piece"
)

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	// Frame is the settled board with the falling piece drawn over it
	Frame board.Grid
	// Board is the settled board alone
	Board board.Grid
	// Piece is the falling piece
	Piece piece.Piece
	// Score is the score at the time of the snapshot
	Score int
	// Lines is the number of rows cleared so far
	Lines int
	// Status is the game status at the time of the snapshot
	Status Status
}

// Frame composes the settled board with the falling piece. Piece cells outside the board, such
// as rows above the top, are not drawn.
func (g *Game) Frame() board.Grid {
	f := g.Board.Grid()
	for _, c := range g.Piece.Cells() {
		if board.InBounds(c.Row, c.Col) {
			f[c.Row][c.Col] = true
		}
	}
	return f
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:  g.Frame(),
		Board:  g.Board.Grid(),
		Piece:  g.Piece.Clone(),
		Score:  g.Score,
		Lines:  g.LinesCleared,
		Status: g.Status,
	}
}

// ScoreLine is the line shown under the board.
func (s Snapshot) ScoreLine() string {
	return fmt.Sprintf("Score: %d", s.Score)
}

func (s Snapshot) String() string {
	return s.Frame.String() + "\n" + s.ScoreLine() + "\n"
}

// WriteSummary prints the settled board and the final score, as shown when the game is over.
func (g *Game) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nGame Over!\n\nFinal Score: %d\n", g.Board, g.Score)
	return err
}
