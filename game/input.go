package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Strike / release the plate.
	if rl.IsKeyPressed(rl.KeyEnter) {
		if g.synth.Playing() {
			g.synth.NoteOff()
		} else {
			g.synth.NoteOn()
		}
	}

	if rl.IsKeyPressed(rl.KeyA) {
		g.panelState.AudioEnabled = !g.panelState.AudioEnabled
		g.synth.SetEnabled(g.panelState.AudioEnabled)
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	// Ticks-per-frame control with < > keys.
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.logPerfStats()
	}

	for _, preset := range Presets {
		if rl.IsKeyPressed(preset.Key) {
			g.applyPreset(preset)
		}
	}
}

// applyPreset installs a named pattern and strikes the plate.
func (g *Game) applyPreset(p Preset) {
	params := p.Params()
	params.Clamp()

	g.stepCfg.Pattern = params
	g.presetName = p.Name
	g.panelState.M = params.M
	g.panelState.N = params.N
	g.panelState.A = params.A
	g.panelState.B = params.B

	g.synth.SetFrequency(params.Frequency())
	g.synth.NoteOn()

	slog.Info("preset selected", "name", p.Name, "frequency_hz", params.Frequency())
}

// handleResize propagates window size changes to the renderers and panel.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.background.Resize(w, h)
	g.particles.Resize(w, h)
	g.panel.Resize(w-240, 20)
}
