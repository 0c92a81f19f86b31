package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies a jingle.
type Sound int

const (
	SoundLost Sound = iota
	SoundWon
)

// String returns the jingle name.
func (s Sound) String() string {
	switch s {
	case SoundLost:
		return "lost"
	case SoundWon:
		return "won"
	default:
		return "unknown"
	}
}

// Descending wail, Pac-Man style.
var lostNotes = []note{
	{freq: 493.88, dur: 140 * time.Millisecond},
	{freq: 466.16, dur: 140 * time.Millisecond},
	{freq: 440.00, dur: 140 * time.Millisecond},
	{freq: 415.30, dur: 140 * time.Millisecond},
	{freq: 392.00, dur: 160 * time.Millisecond},
	{freq: 0, dur: 60 * time.Millisecond},
	{freq: 196.00, dur: 300 * time.Millisecond},
}

// Rising major arpeggio.
var wonNotes = []note{
	{freq: 523.25, dur: 110 * time.Millisecond},
	{freq: 659.25, dur: 110 * time.Millisecond},
	{freq: 783.99, dur: 110 * time.Millisecond},
	{freq: 1046.50, dur: 260 * time.Millisecond},
	{freq: 0, dur: 40 * time.Millisecond},
	{freq: 1046.50, dur: 360 * time.Millisecond},
}

// NewSound builds a fresh streamer for the jingle. Streamers are single use.
func NewSound(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	switch s {
	case SoundLost:
		return withGain(sequence(lostNotes, WaveTriangle, rate), volume)
	case SoundWon:
		return withGain(sequence(wonNotes, WaveSquare, rate), volume-1)
	default:
		return nil
	}
}

// Duration returns the jingle length.
func Duration(s Sound) time.Duration {
	var notes []note
	switch s {
	case SoundLost:
		notes = lostNotes
	case SoundWon:
		notes = wonNotes
	}
	var total time.Duration
	for _, n := range notes {
		total += n.dur
	}
	return total
}
