package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD displays for one frame.
type HUDData struct {
	Tick        int64
	FPS         int32
	Particles   int
	FrequencyHz float64
	AudioLevel  float64
	Playing     bool
	Paused      bool
	PresetName  string
}

// HUD renders the top-left status block.
type HUD struct{}

// NewHUD creates a HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("Chladni Plate", 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Particles: %d | Tick: %d | FPS: %d", data.Particles, data.Tick, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tone: %.1f Hz", data.FrequencyHz),
		10, 55, 16, rl.LightGray,
	)

	if data.PresetName != "" {
		rl.DrawText(data.PresetName, 10, 75, 16, rl.Color{R: 180, G: 200, B: 255, A: 255})
	}

	status := "silent"
	statusColor := rl.Gray
	if data.Playing {
		status = "ringing"
		statusColor = rl.Color{R: 130, G: 220, B: 130, A: 255}
	}
	if data.Paused {
		status = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(status, 10, 95, 16, statusColor)

	// Audio level bar.
	level := float32(data.AudioLevel)
	if level > 1 {
		level = 1
	}
	rl.DrawRectangleLines(10, 118, 102, 10, rl.Gray)
	rl.DrawRectangle(11, 119, int32(level*100), 8, rl.Color{R: 130, G: 220, B: 130, A: 255})
}
