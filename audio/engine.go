package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Config holds the synthesizer settings.
type Config struct {
	Enabled    bool
	Volume     float64 // [0,1]
	SampleRate int
}

// Engine drives the speaker and exposes the two signals the simulation
// reads every tick: Enabled and Level. If the speaker cannot be opened the
// engine degrades to silent mode, where Level is always 0 and the particles
// simply never excite.
type Engine struct {
	mu      sync.Mutex
	voice   *PlateVoice
	meter   *levelMeter
	mixer   *beep.Mixer
	sr      beep.SampleRate
	started bool

	silent  atomic.Bool
	enabled atomic.Bool
}

// NewEngine creates an engine; call Start before use.
func NewEngine(cfg Config) *Engine {
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = 44100
	}

	e := &Engine{
		voice: NewPlateVoice(sr, 220),
		mixer: &beep.Mixer{},
		sr:    sr,
	}
	e.voice.SetVolume(cfg.Volume)
	e.mixer.Add(e.voice)
	e.meter = newLevelMeter(e.mixer)
	e.enabled.Store(cfg.Enabled)
	return e
}

// Start opens the speaker and begins streaming. A speaker failure is not
// fatal: the engine switches to silent mode and the simulation keeps
// running without excitation.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}

	if err := speaker.Init(e.sr, e.sr.N(time.Millisecond*50)); err != nil {
		slog.Warn("speaker unavailable, running silent", "error", err)
		e.silent.Store(true)
		e.started = true
		return nil
	}

	speaker.Play(e.meter)
	e.started = true
	return nil
}

// Close stops all output. Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.silent.Load() {
		e.started = false
		return
	}
	e.voice.Gate(false)
	speaker.Clear()
	e.started = false
}

// NoteOn opens the voice envelope.
func (e *Engine) NoteOn() {
	e.voice.Gate(true)
}

// NoteOff releases the voice envelope.
func (e *Engine) NoteOff() {
	e.voice.Gate(false)
}

// Playing reports whether a note is currently held.
func (e *Engine) Playing() bool {
	return e.voice.Gated()
}

// SetFrequency retunes the plate voice; called whenever the pattern changes.
func (e *Engine) SetFrequency(hz float64) {
	e.voice.SetFrequency(hz)
}

// SetVolume adjusts the output gain.
func (e *Engine) SetVolume(vol float64) {
	e.voice.SetVolume(vol)
}

// Volume returns the current gain.
func (e *Engine) Volume() float64 {
	return e.voice.Volume()
}

// SetEnabled toggles audio; while disabled Level reports 0 and the voice is
// gated off.
func (e *Engine) SetEnabled(on bool) {
	e.enabled.Store(on)
	if !on {
		e.voice.Gate(false)
	}
}

// Enabled reports whether audio excitation is switched on.
func (e *Engine) Enabled() bool {
	return e.enabled.Load() && !e.silent.Load()
}

// Level returns the peak absolute amplitude of the most recently streamed
// chunk, or 0 while disabled or silent.
func (e *Engine) Level() float64 {
	if !e.Enabled() {
		return 0
	}
	return e.meter.Peak()
}
