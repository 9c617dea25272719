// Package audio synthesizes the plate tone and reports its live output
// level back to the simulation. The speaker runs on its own goroutine; the
// boundary to the tick loop is a handful of atomics, so the integrator can
// read the level without locking.
package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Envelope and timbre constants for the plate voice.
const (
	attackSec  = 0.015
	releaseSec = 0.25

	// partialRatio/partialMix add a single inharmonic overtone; metal
	// plates don't ring at clean integer harmonics.
	partialRatio = 2.76
	partialMix   = 0.35
)

// PlateVoice is a beep.Streamer producing a continuously running plate tone.
// Frequency, volume and the note gate are updated from the tick loop through
// atomics; Stream is called from the speaker goroutine.
type PlateVoice struct {
	sr beep.SampleRate

	freqBits   atomic.Uint64 // float64 Hz
	volumeBits atomic.Uint64 // float64 [0,1]
	gate       atomic.Bool

	// Streamer-goroutine state.
	phase float64
	env   float64
}

// NewPlateVoice creates a voice at the given sample rate, silent and gated off.
func NewPlateVoice(sr beep.SampleRate, freq float64) *PlateVoice {
	v := &PlateVoice{sr: sr}
	v.SetFrequency(freq)
	v.SetVolume(0.5)
	return v
}

// SetFrequency retunes the voice. Non-finite or non-positive values are ignored.
func (v *PlateVoice) SetFrequency(hz float64) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return
	}
	v.freqBits.Store(math.Float64bits(hz))
}

// Frequency returns the current tone in Hz.
func (v *PlateVoice) Frequency() float64 {
	return math.Float64frombits(v.freqBits.Load())
}

// SetVolume sets the output gain, clamped to [0,1].
func (v *PlateVoice) SetVolume(vol float64) {
	if math.IsNaN(vol) || vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	v.volumeBits.Store(math.Float64bits(vol))
}

// Volume returns the current gain.
func (v *PlateVoice) Volume() float64 {
	return math.Float64frombits(v.volumeBits.Load())
}

// Gate opens (note on) or closes (note off) the envelope.
func (v *PlateVoice) Gate(on bool) {
	v.gate.Store(on)
}

// Gated reports whether the note is currently held.
func (v *PlateVoice) Gated() bool {
	return v.gate.Load()
}

// Stream fills samples with the enveloped plate tone. It never drains: the
// voice idles at zero amplitude while gated off so the mixer keeps pulling.
func (v *PlateVoice) Stream(samples [][2]float64) (int, bool) {
	freq := v.Frequency()
	vol := v.Volume()

	target := 0.0
	if v.gate.Load() {
		target = 1.0
	}
	attack := 1 - math.Exp(-1/(attackSec*float64(v.sr)))
	release := 1 - math.Exp(-1/(releaseSec*float64(v.sr)))

	inc := freq / float64(v.sr)
	for i := range samples {
		rate := release
		if target > v.env {
			rate = attack
		}
		v.env += (target - v.env) * rate

		s := math.Sin(2*math.Pi*v.phase) + partialMix*math.Sin(2*math.Pi*v.phase*partialRatio)
		s *= v.env * vol / (1 + partialMix)

		samples[i][0] = s
		samples[i][1] = s

		v.phase += inc
		if v.phase >= 1 {
			v.phase -= 1
		}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (v *PlateVoice) Err() error {
	return nil
}
