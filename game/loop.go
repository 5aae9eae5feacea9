package game

import (
	"context"
	"time"
)

// TickInterval is how often the loop polls for input and checks the drop timer.
const TickInterval = time.Millisecond

// Input is a non-blocking key source. PollKey returns false when no key is waiting.
type Input interface {
	PollKey() (rune, bool)
}

type Renderer interface {
	Render(Snapshot)
}

// Loop drives a Game from a fixed-rate ticker.
type Loop struct {
	Game     *Game
	Input    Input
	Renderer Renderer
	// OnOutcome, if set, is called after every processed step
	OnOutcome func(Outcome)
	// Tick overrides TickInterval when non-zero
	Tick time.Duration
}

// Run renders the initial frame and then polls for input and drops the piece until the game ends,
// rendering after every processed step. It returns nil once the game is over and the final frame
// has been drawn, or the context error if ctx is cancelled first.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Tick
	if interval <= 0 {
		interval = TickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.Renderer.Render(l.Game.Snapshot())
	for !l.Game.Ended() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		key, ok := l.Input.PollKey()
		out, processed := l.Game.Step(key, ok)
		if !processed {
			continue
		}
		l.Renderer.Render(l.Game.Snapshot())
		if l.OnOutcome != nil {
			l.OnOutcome(out)
		}
	}
	return nil
}
