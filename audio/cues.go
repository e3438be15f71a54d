// Package audio plays short interaction cues through the system speaker.
// Initialization failure is non-fatal: every cue degrades to a silent
// no-op so the simulation runs fine on machines without audio
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const cueSampleRate = beep.SampleRate(44100)

// Cue identifies one interaction sound
type Cue uint8

const (
	CueSpawn Cue = iota
	CueSelect
	CueDelete
	CueReset
)

// cueTones maps cues to sine frequency (Hz) and duration
var cueTones = map[Cue]struct {
	freq     float64
	duration time.Duration
}{
	CueSpawn:  {880, 50 * time.Millisecond},
	CueSelect: {660, 40 * time.Millisecond},
	CueDelete: {330, 60 * time.Millisecond},
	CueReset:  {440, 120 * time.Millisecond},
}

// Player owns the speaker lifecycle
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. On failure the returned player is
// silent but usable
func NewPlayer() (*Player, error) {
	err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10))
	return &Player{ready: err == nil}, err
}

// Play fires a cue, silently ignoring unknown cues and missing audio
func (p *Player) Play(c Cue) {
	if p == nil || !p.ready {
		return
	}
	tone, ok := cueTones[c]
	if !ok {
		return
	}
	sine, err := generators.SineTone(cueSampleRate, tone.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(tone.duration), sine))
}

// Close releases the speaker
func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
	}
}
