// Package renderer turns the simulation's particle buffer into pixels.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlateBackground draws the metal plate the grains sit on.
type PlateBackground struct {
	width, height int32
}

// NewPlateBackground creates a background sized to the window.
func NewPlateBackground(width, height int32) *PlateBackground {
	return &PlateBackground{width: width, height: height}
}

// Resize updates the background to new window dimensions.
func (b *PlateBackground) Resize(width, height int32) {
	b.width = width
	b.height = height
}

// Draw renders the backdrop and the plate square described by view.
func (b *PlateBackground) Draw(view PlateView) {
	rl.ClearBackground(rl.Color{R: 12, G: 12, B: 16, A: 255})

	x := int32(view.OffsetX - view.HalfExtent)
	y := int32(view.OffsetY - view.HalfExtent)
	size := int32(view.HalfExtent * 2)

	rl.DrawRectangleGradientV(x, y, size, size,
		rl.Color{R: 34, G: 34, B: 42, A: 255},
		rl.Color{R: 24, G: 24, B: 30, A: 255})
	rl.DrawRectangleLines(x-1, y-1, size+2, size+2, rl.Color{R: 90, G: 90, B: 104, A: 255})
}
