package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes jingles onto the speaker. Every method is safe to call when
// the speaker could not be initialized; sounds are then dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	muted       bool
	initialized bool
	requested   int
	logger      *log.Logger
}

// NewPlayer creates a player from the audio config. It does not touch the
// sound device until Init.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Init opens the speaker. A disabled player never opens it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a jingle. It reports whether the sound reached the mixer.
func (p *Player) Play(s Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requested++
	if !p.initialized || p.muted {
		return false
	}
	streamer := NewSound(s, sampleRate, p.volume)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.logger.Debug("sound", "name", s)
	return true
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.muted && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// SetMuted sets the mute flag.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether sounds are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Requested returns how many sounds were asked for, played or not.
func (p *Player) Requested() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requested
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Attach plays the lost and won jingles on the session's terminal events.
func (p *Player) Attach(s *doodle.Session) {
	s.OnLost(func(doodle.Result) { p.Play(SoundLost) })
	s.OnWon(func(doodle.Result) { p.Play(SoundWon) })
}
