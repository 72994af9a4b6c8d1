// Package audio plays the short synthesized cues used in the game.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueJump Cue = iota
	CueBump
	CueWave
	CueOpen
	CueSelect
)

// cue tone: start and end frequency, duration, volume
type tone struct {
	from, to float64
	dur      time.Duration
	gain     float64
}

var cueTones = map[Cue]tone{
	CueJump:   {from: 330, to: 660, dur: 120 * time.Millisecond, gain: 0.25},
	CueBump:   {from: 880, to: 880, dur: 80 * time.Millisecond, gain: 0.3},
	CueWave:   {from: 523, to: 784, dur: 200 * time.Millisecond, gain: 0.2},
	CueOpen:   {from: 660, to: 990, dur: 160 * time.Millisecond, gain: 0.25},
	CueSelect: {from: 440, to: 440, dur: 40 * time.Millisecond, gain: 0.15},
}

// SoundManager owns the speaker. A nil *SoundManager is valid and silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every playing cue.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue. Calls before Initialize are dropped.
func (sm *SoundManager) Play(c Cue) {
	if sm == nil {
		return
	}
	t, ok := cueTones[c]
	if !ok {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(t.dur), newSweepGenerator(sampleRate, t)))
	speaker.Unlock()
}

// sweepGenerator is a square wave sliding linearly between two frequencies
// with a linear fade out.
type sweepGenerator struct {
	sr      beep.SampleRate
	t       tone
	pos     int
	samples int
	phase   float64
}

func newSweepGenerator(sr beep.SampleRate, t tone) *sweepGenerator {
	return &sweepGenerator{sr: sr, t: t, samples: sr.N(t.dur)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.t.from + (g.t.to-g.t.from)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		v := -1.0
		if g.phase < 0.5 {
			v = 1.0
		}
		v *= g.t.gain * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }
