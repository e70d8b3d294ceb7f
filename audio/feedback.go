// Package audio plays short feedback tones for editor events. Speaker
// initialization failure is non-fatal; every method degrades to a no-op
// so the editor runs fine on machines without audio.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback plays event tones through the speaker
type Feedback struct {
	enabled bool
}

// New initializes the speaker. The returned error is informational;
// the Feedback is usable either way.
func New() (*Feedback, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Feedback{enabled: err == nil}, err
}

// Enabled reports whether the speaker came up
func (f *Feedback) Enabled() bool {
	return f.enabled
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Tick marks a completed action (save, export, frame change)
func (f *Feedback) Tick() {
	f.tone(880, 40*time.Millisecond)
}

// Buzz marks a failure (load error, frame limit)
func (f *Feedback) Buzz() {
	f.tone(220, 120*time.Millisecond)
}
