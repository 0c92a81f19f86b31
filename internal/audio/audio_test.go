package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		total, peak := drain(osc)
		if total != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", wave, total, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 || peak == 0 {
			t.Errorf("wave %d: peak = %v, expected (0, 1]", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: Err() = %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(250, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("streamed %d samples, expected 1000", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at attack start", buf[0][0])
	}
	if v := buf[500][0]; v != 1 && v != -1 {
		t.Errorf("sustain sample = %v, expected full scale", v)
	}
	if v := buf[999][0]; v > 0.02 || v < -0.02 {
		t.Errorf("last sample = %v, expected near silence", v)
	}

	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestJinglesHaveExpectedLength(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, s := range []Sound{SoundLost, SoundWon} {
		total, peak := drain(NewSound(s, rate, 0))
		want := rate.N(Duration(s))
		if diff := total - want; diff < -len(lostNotes) || diff > len(lostNotes) {
			t.Errorf("%v: %d samples, expected about %d", s, total, want)
		}
		if peak == 0 {
			t.Errorf("%v: jingle is silent", s)
		}
	}

	if NewSound(Sound(99), rate, 0) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(NewSound(SoundLost, beep.SampleRate(8000), silentBelow))
	if peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false, Volume: -1}, nil)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() on a disabled player = %v", err)
	}

	if p.Play(SoundWon) {
		t.Error("Play() reached the mixer without a device")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Error("ToggleMute() did not mute")
	}
	p.SetMuted(false)
	if p.Muted() {
		t.Error("SetMuted(false) did not unmute")
	}
	p.Close()
}

func TestAttachPlaysOnTerminalEvents(t *testing.T) {
	p := NewPlayer(config.AudioConfig{}, nil)

	// One reachable platform and a weak bounce: holding right walks the
	// player off its edge and into the fall-off zone.
	cfg := config.DefaultDoodleConfig()
	cfg.Platforms.Spacing = 10000
	cfg.Physics.JumpForce = -3

	s := doodle.NewSession(cfg, doodle.Viewport{W: 800, H: 600})
	p.Attach(s)
	s.Start(1)
	s.SetHorizontalIntent(doodle.IntentRight)

	for i := 0; i < 5000 && !s.Status().Terminal(); i++ {
		s.Tick()
	}
	if s.Status() != doodle.StatusLost {
		t.Fatalf("Status = %v, expected lost", s.Status())
	}
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if got := p.Requested(); got != 1 {
		t.Errorf("Requested() = %d, expected 1", got)
	}
}
