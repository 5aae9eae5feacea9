// Package term draws the game on a terminal and reads keys from it using tcell.
package term

import (
	"fmt"
	"sync"

	"github.com/deitrix/ttytris/board"
	"github.com/deitrix/ttytris/game"
	"github.com/gdamore/tcell/v2"
)

var (
	emptyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	settledStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	pieceStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	scoreStyle   = tcell.StyleDefault
)

// Screen is a game.Input and game.Renderer backed by a tcell screen.
type Screen struct {
	screen    tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
	interrupt func()
}

// Open creates and initialises a screen on the controlling terminal.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	return New(s), nil
}

// New wraps an initialised tcell screen. Events are pumped from the blocking PollEvent into a
// buffered channel so PollKey never blocks.
func New(s tcell.Screen) *Screen {
	s.HideCursor()
	ts := &Screen{
		screen: s,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
	}
	go ts.pump()
	return ts
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// OnInterrupt registers f to be called when the player presses Ctrl-C or Escape. The terminal is
// in raw mode, so these never reach the process as signals.
func (s *Screen) OnInterrupt(f func()) {
	s.interrupt = f
}

// PollKey returns the next typed character, or false if none is waiting.
func (s *Screen) PollKey() (rune, bool) {
	for {
		select {
		case ev := <-s.events:
			if r, ok := s.handle(ev); ok {
				return r, true
			}
		default:
			return 0, false
		}
	}
}

func (s *Screen) handle(ev tcell.Event) (rune, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			if s.interrupt != nil {
				s.interrupt()
			}
		case tcell.KeyRune:
			return ev.Rune(), true
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return 0, false
}

// Render draws the frame, two columns per cell, with the score two lines below it.
func (s *Screen) Render(snap game.Snapshot) {
	s.screen.Clear()
	for r, row := range snap.Frame {
		for c, filled := range row {
			style := emptyStyle
			if filled {
				style = pieceStyle
				if snap.Board[r][c] {
					style = settledStyle
				}
			}
			s.screen.SetContent(c*2, r, board.Glyph(filled), nil, style)
			s.screen.SetContent(c*2+1, r, ' ', nil, style)
		}
	}
	drawString(s.screen, 0, board.Rows+1, snap.ScoreLine(), scoreStyle)
	s.screen.Show()
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}
