// Package audio plays short synthesized cues for round events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tilestack/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues onto the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before Cue.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything still playing.
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

// Cue plays the sound for an event kind. Kinds without a sound are ignored.
func (p *Player) Cue(kind core.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := cueStreamer(kind)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// note is one step of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave waveType
}

var cues = map[core.EventKind][]note{
	core.EventMatched: {
		{freq: 880, dur: 60 * time.Millisecond, wave: waveSine},
		{freq: 1320, dur: 90 * time.Millisecond, wave: waveSine},
	},
	core.EventMismatched: {
		{freq: 150, dur: 120 * time.Millisecond, wave: waveSquare},
	},
	core.EventWon: {
		{freq: 523, dur: 120 * time.Millisecond, wave: waveSine},
		{freq: 659, dur: 120 * time.Millisecond, wave: waveSine},
		{freq: 784, dur: 120 * time.Millisecond, wave: waveSine},
		{freq: 1047, dur: 300 * time.Millisecond, wave: waveSine},
	},
	core.EventTimedOut: {
		{freq: 392, dur: 200 * time.Millisecond, wave: waveSquare},
		{freq: 330, dur: 200 * time.Millisecond, wave: waveSquare},
		{freq: 262, dur: 400 * time.Millisecond, wave: waveSquare},
	},
}

// cueStreamer builds a fresh streamer for kind, or nil if it has no sound.
func cueStreamer(kind core.EventKind) beep.Streamer {
	notes, ok := cues[kind]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newTone(n.freq, n.dur, n.wave)
	}
	return beep.Seq(parts...)
}

type waveType int

const (
	waveSine waveType = iota
	waveSquare
)

// tone is a fixed-length oscillator with a linear fade in and out.
type tone struct {
	freq  float64
	wave  waveType
	total int
	fade  int
	pos   int
}

func newTone(freq float64, dur time.Duration, wave waveType) *tone {
	total := sampleRate.N(dur)
	return &tone{
		freq:  freq,
		wave:  wave,
		total: total,
		fade:  min(sampleRate.N(5*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		phase := float64(t.pos) * t.freq / float64(sampleRate)
		var val float64
		switch t.wave {
		case waveSquare:
			if phase-math.Floor(phase) < 0.5 {
				val = 1
			} else {
				val = -1
			}
			val *= 0.15
		default:
			val = 0.3 * math.Sin(2*math.Pi*phase)
		}

		env := 1.0
		if t.fade > 0 {
			switch {
			case t.pos < t.fade:
				env = float64(t.pos) / float64(t.fade)
			case t.pos >= t.total-t.fade:
				env = float64(t.total-t.pos) / float64(t.fade)
			}
		}

		samples[i][0] = val * env
		samples[i][1] = val * env
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
