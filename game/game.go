package game

import (
	"math/rand"
	"time"

	"github.com/deitrix/ttytris/board"
	"github.com/deitrix/ttytris/piece"
)

// PointsPerRow is awarded for every row cleared.
const PointsPerRow = 100

type Status int

const (
	StatusRunning Status = iota
	StatusEnded
)

func (s Status) String() string {
	if s == StatusEnded {
		return "ended"
	}
	return "running"
}

// Clock supplies the wall-clock time used for automatic drops.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Outcome describes what a single action or tick did to the game.
type Outcome struct {
	// Moved is set when the piece moved or rotated.
	Moved bool
	// Landed is set when the piece could not move down and was committed to the board.
	Landed bool
	// Cleared is the number of rows removed by the landing.
	Cleared int
	// Ended is set when the replacement piece could not be placed.
	Ended bool
}

func (o Outcome) merge(other Outcome) Outcome {
	return Outcome{
		Moved:   o.Moved || other.Moved,
		Landed:  o.Landed || other.Landed,
		Cleared: o.Cleared + other.Cleared,
		Ended:   o.Ended || other.Ended,
	}
}

type Game struct {
	// Board holds the settled cells, not including the falling piece
	Board *board.Board
	// Piece is the piece currently being controlled by the player
	Piece piece.Piece
	// Score is the current score of the game
	Score int
	// LinesCleared is the number of rows that have been cleared in the game
	LinesCleared int
	// Speed holds the current drop interval and speed step
	Speed Speed
	// Status is StatusRunning until a spawned piece does not fit
	Status Status
	// LastDrop is when the piece last fell automatically. Player drops do not reset it.
	LastDrop time.Time

	rand  piece.Source
	clock Clock
}

type Option func(*Game)

// WithRand sets the source used to pick shapes and spawn columns.
func WithRand(r piece.Source) Option {
	return func(g *Game) {
		g.rand = r
	}
}

func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

func WithSpeed(s Speed) Option {
	return func(g *Game) {
		g.Speed = s
	}
}

// New starts a game on an empty board with a freshly spawned piece.
func New(opts ...Option) *Game {
	g := &Game{
		Board: board.New(),
		Speed: DefaultSpeed(),
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		clock: systemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.LastDrop = g.clock.Now()
	g.Spawn()
	return g
}

// Spawn replaces the falling piece with a random shape at the top of the board, in a random
// column where it fits horizontally. If it overlaps the settled cells the game ends; the board is
// left as it was.
func (g *Game) Spawn() {
	p := piece.Rand(g.rand)
	p.Col = g.rand.Intn(board.Cols - p.Size + 1)
	p.Row = 0
	g.Piece = p
	if !g.Board.Fits(p) {
		g.Status = StatusEnded
	}
}

// Apply tries an action on a copy of the falling piece and keeps the result if it fits. A rejected
// move is a silent no-op, except for ActionDown, which lands the piece.
func (g *Game) Apply(a Action) Outcome {
	if g.Status == StatusEnded {
		return Outcome{}
	}
	var next piece.Piece
	switch a {
	case ActionDown:
		next = g.Piece.Moved(1, 0)
	case ActionLeft:
		next = g.Piece.Moved(0, -1)
	case ActionRight:
		next = g.Piece.Moved(0, 1)
	case ActionRotate:
		next = g.Piece.Rotated()
	default:
		return Outcome{}
	}
	if g.Board.Fits(next) {
		g.Piece = next
		return Outcome{Moved: true}
	}
	if a != ActionDown {
		return Outcome{}
	}
	return g.land()
}

// land commits the falling piece, clears full rows, scores them and spawns the next piece.
func (g *Game) land() Outcome {
	g.Board.Commit(g.Piece)
	n := g.Board.ClearFullRows()
	for i := 0; i < n; i++ {
		g.Speed.RowCleared()
	}
	g.Score += n * PointsPerRow
	g.LinesCleared += n
	g.Spawn()
	return Outcome{
		Landed:  true,
		Cleared: n,
		Ended:   g.Status == StatusEnded,
	}
}

// Tick drops the piece one row if more than the drop interval has passed since the last automatic
// drop. It reports whether a drop was processed.
func (g *Game) Tick(now time.Time) (Outcome, bool) {
	if g.Status == StatusEnded || now.Sub(g.LastDrop) <= g.Speed.Interval {
		return Outcome{}, false
	}
	out := g.Apply(ActionDown)
	g.LastDrop = now
	return out, true
}

// Step runs one iteration of the game loop: the key, if any and if it maps to an action, is
// applied, then the automatic drop is checked against the clock. It reports whether anything was
// processed, in which case the frame should be redrawn.
func (g *Game) Step(key rune, hasKey bool) (Outcome, bool) {
	var (
		out       Outcome
		processed bool
	)
	if hasKey && g.Status == StatusRunning {
		if a, ok := ActionForKey(key); ok {
			out = g.Apply(a)
			processed = true
		}
	}
	if drop, ok := g.Tick(g.clock.Now()); ok {
		out = out.merge(drop)
		processed = true
	}
	return out, processed
}

// Ended reports whether the game is over.
func (g *Game) Ended() bool {
	return g.Status == StatusEnded
}
