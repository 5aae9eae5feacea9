package game

import "time"

const (
	// DefaultDropInterval is the time between automatic drops at the start of a game.
	DefaultDropInterval = 300 * time.Millisecond
	// DefaultSpeedStep is how much the first cleared row shortens the drop interval.
	DefaultSpeedStep = 800 * time.Microsecond
	// SpeedStepDecay is subtracted from the speed step after every cleared row.
	SpeedStepDecay = time.Microsecond
	// MinDropInterval is the fastest the game will ever get.
	MinDropInterval = 50 * time.Millisecond
)

// Speed tracks the auto-drop interval. Each cleared row shortens the interval by the current
// step, and then shrinks the step, so later clears speed the game up less.
type Speed struct {
	Interval time.Duration
	Step     time.Duration
}

func DefaultSpeed() Speed {
	return Speed{
		Interval: DefaultDropInterval,
		Step:     DefaultSpeedStep,
	}
}

// RowCleared applies one row's worth of speed-up. The interval never drops below
// MinDropInterval and the step never goes negative, so the game can only get faster.
func (s *Speed) RowCleared() {
	s.Interval -= s.Step
	s.Step -= SpeedStepDecay
	if s.Interval < MinDropInterval {
		s.Interval = MinDropInterval
	}
	if s.Step < 0 {
		s.Step = 0
	}
}
