// Field function preview tool - interactive nodal-line visualization
// with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chladni/sim"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Chladni Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := sim.Params{M: 4, N: 3, A: 1, B: 1}

	fieldGrid := make([]float64, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	generateField(fieldGrid, gridSize, params)
	updateTexture(texture, fieldGrid, gridSize, params)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			params.Clamp()
			generateField(fieldGrid, gridSize, params)
			updateTexture(texture, fieldGrid, gridSize, params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Tone: %.1f Hz", params.Frequency()), 15, statsY, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Pattern Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("m (mode number)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newM := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "15",
			float32(params.M), 1, 15,
		)
		rl.DrawText(fmt.Sprintf("%d", params.M), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newM+0.5) != params.M {
			params.M = int(newM + 0.5)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("n (mode number)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newN := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "15",
			float32(params.N), 1, 15,
		)
		rl.DrawText(fmt.Sprintf("%d", params.N), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newN+0.5) != params.N {
			params.N = int(newN + 0.5)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("a (amplitude mix)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newA := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-2", "2",
			float32(params.A), -2, 2,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.A), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if float64(newA) != params.A {
			params.A = float64(newA)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("b (amplitude mix)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newB := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-2", "2",
			float32(params.B), -2, 2,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.B), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if float64(newB) != params.B {
			params.B = float64(newB)
			needsRegen = true
		}
		panelY += 45

		for _, pair := range [][2]int{{1, 2}, {3, 5}, {7, 4}, {12, 11}} {
			label := fmt.Sprintf("m=%d n=%d", pair[0], pair[1])
			if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, label) {
				params.M = pair[0]
				params.N = pair[1]
				needsRegen = true
			}
			panelY += 40
		}

		rl.EndDrawing()
	}
}

// generateField samples sim.Field over the plate at grid resolution.
func generateField(grid []float64, size int, params sim.Params) {
	for y := 0; y < size; y++ {
		ny := (float64(y)+0.5)/float64(size)*2 - 1
		for x := 0; x < size; x++ {
			nx := (float64(x)+0.5)/float64(size)*2 - 1
			grid[y*size+x] = sim.Field(nx, ny, params.M, params.N, params.A, params.B)
		}
	}
}

// updateTexture shades the field: dark where grains collect (nodal lines,
// |value| near zero), bright where the plate shakes them away.
func updateTexture(texture rl.Texture2D, grid []float64, size int, params sim.Params) {
	limit := math.Abs(params.A) + math.Abs(params.B)
	if limit == 0 {
		limit = 1
	}

	pixels := make([]color.RGBA, size*size)
	for i, v := range grid {
		t := math.Abs(v) / limit
		r := uint8(20 + t*215)
		g := uint8(18 + t*180)
		b := uint8(28 + t*120)
		pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
