// Package sound plays short tones for game events. Audio is optional: a nil *Player, or one whose
// speaker failed to start, silently does nothing.
package sound

import (
	"fmt"
	"time"

	"github.com/deitrix/ttytris/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 60 * time.Millisecond
	baseFreq   = 660.0
	// endFreq is the low note played when the game ends.
	endFreq = 220.0
)

type Player struct {
	rate beep.SampleRate
}

// Open initialises the speaker.
func Open() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	return &Player{rate: sampleRate}, nil
}

// Handle plays the tone for an outcome of the game loop.
func (p *Player) Handle(o game.Outcome) {
	if p == nil {
		return
	}
	switch {
	case o.Ended:
		play(tone(p.rate, endFreq, 4*noteLength))
	case o.Cleared > 0:
		play(Chirp(p.rate, o.Cleared))
	}
}

func play(s beep.Streamer, err error) {
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}

// Chirp returns one rising note per cleared row, a major third apart.
func Chirp(rate beep.SampleRate, rows int) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, rows)
	freq := baseFreq
	for i := 0; i < rows; i++ {
		s, err := tone(rate, freq, noteLength)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
		freq *= 1.25
	}
	return beep.Seq(notes...), nil
}

func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone at %.0fHz: %w", freq, err)
	}
	return beep.Take(rate.N(d), sine), nil
}
