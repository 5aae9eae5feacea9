package window

import (
	"testing"

	"github.com/deitrix/ttytris/board"
	"github.com/deitrix/ttytris/game"
	"github.com/deitrix/ttytris/piece"
	"github.com/stretchr/testify/assert"
)

func TestBindingsMapToActions(t *testing.T) {
	seen := map[game.Action]bool{}
	for _, b := range bindings {
		a, ok := game.ActionForKey(b.char)
		assert.True(t, ok, "%q", b.char)
		seen[a] = true
		assert.Equal(t, a != game.ActionRotate, b.repeat, "only rotation must not repeat")
	}
	assert.Len(t, seen, 4)
}

func TestCellTint(t *testing.T) {
	snap := game.Snapshot{Piece: piece.Shape(piece.Z)}
	snap.Board[5][5] = true
	snap.Frame = snap.Board
	snap.Frame[0][1] = true

	assert.Equal(t, settledTint, cellTint(snap, 5, 5))
	assert.Equal(t, kindTints[piece.Z], cellTint(snap, 0, 1))
	assert.Equal(t, emptyTint, cellTint(snap, 0, 0))
}

func TestKindTints(t *testing.T) {
	for _, p := range piece.Shapes() {
		_, ok := kindTints[p.Kind]
		assert.True(t, ok, p.Kind.String())
	}
}

func TestLayout(t *testing.T) {
	w := &Window{}
	width, height := w.Layout(0, 0)
	assert.Equal(t, board.Rows*cellSize+2*margin, height)
	assert.Greater(t, width, board.Cols*cellSize+panelWidth)
}
