// Package ui renders the parameter panel and HUD for the simulator.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelState is the set of user-tunable values the panel edits. The game
// owns one instance, passes it in each frame, and applies whatever changed.
type PanelState struct {
	M, N          int
	A, B          float64
	ParticleCount int
	Vibration     float64
	Volume        float64
	AudioEnabled  bool
}

// ControlsPanel renders the right-side parameter panel.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates the panel anchored at x,y.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		x:       float32(x),
		y:       float32(y),
		width:   float32(width),
		visible: true,
	}
}

// Toggle switches panel visibility and returns the new state.
func (p *ControlsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *ControlsPanel) IsVisible() bool {
	return p.visible
}

// Resize re-anchors the panel after a window resize.
func (p *ControlsPanel) Resize(x, y int32) {
	p.x = float32(x)
	p.y = float32(y)
}

// Draw renders the panel and edits s in place. Returns true if the user
// changed any value this frame.
func (p *ControlsPanel) Draw(s *PanelState) bool {
	if !p.visible {
		return false
	}

	changed := false
	x := p.x
	y := p.y
	sliderW := p.width - 20

	rl.DrawRectangle(int32(x-10), int32(y-10), int32(p.width), 330, rl.Color{R: 18, G: 18, B: 24, A: 215})
	rl.DrawText("Pattern", int32(x), int32(y), 16, rl.White)
	y += 26

	y = p.modeSlider(x, y, sliderW, "m", &s.M, &changed)
	y = p.modeSlider(x, y, sliderW, "n", &s.N, &changed)
	y = p.ampSlider(x, y, sliderW, "a", &s.A, &changed)
	y = p.ampSlider(x, y, sliderW, "b", &s.B, &changed)

	rl.DrawText("Simulation", int32(x), int32(y), 16, rl.White)
	y += 26

	rl.DrawText("particles", int32(x), int32(y), 12, rl.Gray)
	y += 16
	newCount := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW - 60, Height: 16},
		"1k", "100k",
		float32(s.ParticleCount), 1000, 100000,
	)
	// Snap to thousands so the store isn't rebuilt on every pixel of drag.
	snapped := int(newCount/1000+0.5) * 1000
	if snapped < 1000 {
		snapped = 1000
	}
	rl.DrawText(fmt.Sprintf("%d", s.ParticleCount), int32(x+sliderW-52), int32(y), 14, rl.LightGray)
	if snapped != s.ParticleCount {
		s.ParticleCount = snapped
		changed = true
	}
	y += 26

	rl.DrawText("vibration", int32(x), int32(y), 12, rl.Gray)
	y += 16
	newVib := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW - 60, Height: 16},
		"0.01", "0.2",
		float32(s.Vibration), 0.01, 0.2,
	)
	rl.DrawText(fmt.Sprintf("%.3f", s.Vibration), int32(x+sliderW-52), int32(y), 14, rl.LightGray)
	if float64(newVib) != s.Vibration {
		s.Vibration = float64(newVib)
		changed = true
	}
	y += 30

	rl.DrawText("Audio", int32(x), int32(y), 16, rl.White)
	y += 26

	newEnabled := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "enabled", s.AudioEnabled)
	if newEnabled != s.AudioEnabled {
		s.AudioEnabled = newEnabled
		changed = true
	}
	y += 26

	rl.DrawText("volume", int32(x), int32(y), 12, rl.Gray)
	y += 16
	newVol := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW - 60, Height: 16},
		"0", "1",
		float32(s.Volume), 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.2f", s.Volume), int32(x+sliderW-52), int32(y), 14, rl.LightGray)
	if float64(newVol) != s.Volume {
		s.Volume = float64(newVol)
		changed = true
	}

	return changed
}

func (p *ControlsPanel) modeSlider(x, y, w float32, label string, v *int, changed *bool) float32 {
	rl.DrawText(label, int32(x), int32(y), 12, rl.Gray)
	y += 16
	nv := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 16},
		"1", "15",
		float32(*v), 1, 15,
	)
	rl.DrawText(fmt.Sprintf("%d", *v), int32(x+w-52), int32(y), 14, rl.LightGray)
	if int(nv+0.5) != *v {
		*v = int(nv + 0.5)
		*changed = true
	}
	return y + 24
}

func (p *ControlsPanel) ampSlider(x, y, w float32, label string, v *float64, changed *bool) float32 {
	rl.DrawText(label, int32(x), int32(y), 12, rl.Gray)
	y += 16
	nv := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 16},
		"-2", "2",
		float32(*v), -2, 2,
	)
	rl.DrawText(fmt.Sprintf("%.2f", *v), int32(x+w-52), int32(y), 14, rl.LightGray)
	if float64(nv) != *v {
		*v = float64(nv)
		*changed = true
	}
	return y + 24
}
