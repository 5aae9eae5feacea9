// Package window draws the game in a desktop window with ebiten. It is an alternative to the
// terminal front end; the game rules are the same.
package window

import (
	"fmt"
	"image/color"

	"github.com/deitrix/ttytris/board"
	"github.com/deitrix/ttytris/game"
	"github.com/deitrix/ttytris/piece"
	"github.com/deitrix/ttytris/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = sprite.CellSize
	// margin is the empty space around the board
	margin = cellSize / 2
	// panelWidth is the width of the score panel to the right of the board
	panelWidth = 7 * cellSize
	// repeatTicks is how long a movement key must be held before it repeats every tick
	repeatTicks = 10
)

var (
	background  = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	emptyTint   = color.NRGBA{R: 0x28, G: 0x28, B: 0x30, A: 0xff}
	settledTint = color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa8, A: 0xff}
)

var kindTints = map[piece.Kind]color.NRGBA{
	piece.L: {R: 0xff, G: 0x99, B: 0x00, A: 0xff},
	piece.S: {R: 0x33, G: 0xcc, B: 0x33, A: 0xff},
	piece.Z: {R: 0xee, G: 0x33, B: 0x33, A: 0xff},
	piece.T: {R: 0xaa, G: 0x44, B: 0xdd, A: 0xff},
	piece.J: {R: 0x33, G: 0x66, B: 0xee, A: 0xff},
	piece.O: {R: 0xee, G: 0xdd, B: 0x22, A: 0xff},
	piece.I: {R: 0x22, G: 0xdd, B: 0xdd, A: 0xff},
}

// binding maps a physical key to one of the game's input characters.
type binding struct {
	key    ebiten.Key
	char   rune
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyS, 's', true},
	{ebiten.KeyArrowDown, 's', true},
	{ebiten.KeyA, 'a', true},
	{ebiten.KeyArrowLeft, 'a', true},
	{ebiten.KeyD, 'd', true},
	{ebiten.KeyArrowRight, 'd', true},
	{ebiten.KeyW, 'w', false},
	{ebiten.KeyArrowUp, 'w', false},
}

// Window implements ebiten.Game on top of a game.Game. Ebiten's Update drives the game loop:
// each tick reads at most one key and checks the automatic drop.
type Window struct {
	Game *game.Game
	// OnOutcome, if set, is called after every processed step
	OnOutcome func(game.Outcome)

	scoreFace font.Face
	titleFace font.Face
}

// New creates a window for g. sprite.Load must have been called.
func New(g *game.Game) (*Window, error) {
	scoreFace, err := sprite.Face(sprite.Monospace, 20)
	if err != nil {
		return nil, fmt.Errorf("score face: %w", err)
	}
	titleFace, err := sprite.Face(sprite.Regular, 28)
	if err != nil {
		return nil, fmt.Errorf("title face: %w", err)
	}
	return &Window{
		Game:      g,
		scoreFace: scoreFace,
		titleFace: titleFace,
	}, nil
}

func (w *Window) Update() error {
	if w.Game.Ended() {
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}
	key, ok := readKey()
	out, processed := w.Game.Step(key, ok)
	if processed && w.OnOutcome != nil {
		w.OnOutcome(out)
	}
	return nil
}

func readKey() (rune, bool) {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) || (b.repeat && inpututil.KeyPressDuration(b.key) > repeatTicks) {
			return b.char, true
		}
	}
	return 0, false
}

func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.Game.Snapshot()
	screen.Fill(background)
	for r, row := range snap.Frame {
		for c := range row {
			drawCell(screen, margin+c*cellSize, margin+r*cellSize, cellTint(snap, r, c))
		}
	}
	w.drawPanel(screen, snap)
}

func (w *Window) drawPanel(screen *ebiten.Image, snap game.Snapshot) {
	x := 2*margin + board.Cols*cellSize
	text.Draw(screen, "ttytris", w.titleFace, x, margin+cellSize, color.White)
	text.Draw(screen, snap.ScoreLine(), w.scoreFace, x, margin+3*cellSize, color.White)
	text.Draw(screen, fmt.Sprintf("Lines: %d", snap.Lines), w.scoreFace, x, margin+4*cellSize, color.White)
	if snap.Status == game.StatusEnded {
		text.Draw(screen, "Game Over!", w.titleFace, x, margin+7*cellSize, color.White)
		text.Draw(screen, "press any key", w.scoreFace, x, margin+8*cellSize, color.White)
	}
}

func (w *Window) Layout(_, _ int) (screenWidth, screenHeight int) {
	return Size()
}

// Size is the logical size of the window in pixels.
func Size() (width, height int) {
	return 3*margin + board.Cols*cellSize + panelWidth, 2*margin + board.Rows*cellSize
}

// cellTint picks the colour of a frame cell: settled cells are grey, the falling piece uses the
// colour of its shape.
func cellTint(snap game.Snapshot, r, c int) color.NRGBA {
	switch {
	case snap.Board[r][c]:
		return settledTint
	case snap.Frame[r][c]:
		return kindTints[snap.Piece.Kind]
	}
	return emptyTint
}

func drawCell(screen *ebiten.Image, x, y int, tint color.NRGBA) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(sprite.Cell, &op)
}
