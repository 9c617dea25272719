package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chladni/sim"
)

// PlateView maps plate coordinates to screen pixels: the plate square is
// centered at (OffsetX, OffsetY) with half side HalfExtent pixels.
type PlateView struct {
	OffsetX, OffsetY float32
	HalfExtent       float32
}

// NewPlateView fits the plate into the window with a margin.
func NewPlateView(width, height int32) PlateView {
	extent := float32(height)
	if float32(width) < extent {
		extent = float32(width)
	}
	return PlateView{
		OffsetX:    float32(width) / 2,
		OffsetY:    float32(height) / 2,
		HalfExtent: extent*0.5 - 40,
	}
}

// ToScreen converts a plate position to pixels.
func (v PlateView) ToScreen(x, y float32) (float32, float32) {
	scale := v.HalfExtent / float32(sim.PlaneSize/2)
	return v.OffsetX + x*scale, v.OffsetY + y*scale
}

// ParticleRenderer draws the grain layer. Grains accumulate in a render
// texture that is faded a little each frame, leaving short motion trails
// while the plate is ringing.
type ParticleRenderer struct {
	target rl.RenderTexture2D
	view   PlateView

	width, height int32
}

// NewParticleRenderer allocates the trail texture for the given window size.
func NewParticleRenderer(width, height int32) *ParticleRenderer {
	r := &ParticleRenderer{
		target: rl.LoadRenderTexture(width, height),
		view:   NewPlateView(width, height),
		width:  width,
		height: height,
	}
	r.clear()
	return r
}

// View returns the current plate-to-screen mapping.
func (r *ParticleRenderer) View() PlateView {
	return r.view
}

// Resize reallocates the trail texture for new window dimensions.
func (r *ParticleRenderer) Resize(width, height int32) {
	if width == r.width && height == r.height {
		return
	}
	rl.UnloadRenderTexture(r.target)
	r.target = rl.LoadRenderTexture(width, height)
	r.view = NewPlateView(width, height)
	r.width = width
	r.height = height
	r.clear()
}

// Unload releases the trail texture. The renderer is unusable afterwards.
func (r *ParticleRenderer) Unload() {
	rl.UnloadRenderTexture(r.target)
}

func (r *ParticleRenderer) clear() {
	rl.BeginTextureMode(r.target)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
}

// Draw renders the store's particles into the trail texture and blits it.
// The renderer only reads the buffers; its borrowed view is valid for this
// call only, so a resize between ticks is safe.
func (r *ParticleRenderer) Draw(store *sim.ParticleStore, excited bool) {
	rl.BeginTextureMode(r.target)

	// Fade previous frame; faster fade when idle so settled grains read sharp.
	fade := uint8(40)
	if !excited {
		fade = 90
	}
	rl.DrawRectangle(0, 0, r.width, r.height, rl.Color{R: 0, G: 0, B: 0, A: fade})

	for i := 0; i < store.Count; i++ {
		sx, sy := r.view.ToScreen(store.Positions[3*i], store.Positions[3*i+1])

		vx := store.Velocities[2*i]
		vy := store.Velocities[2*i+1]
		speed := vx*vx + vy*vy

		col := grainColor(speed)
		rl.DrawPixelV(rl.Vector2{X: sx, Y: sy}, col)
	}

	rl.EndTextureMode()

	// Render textures are y-flipped; draw with a negative source height.
	rl.DrawTextureRec(r.target.Texture,
		rl.Rectangle{X: 0, Y: 0, Width: float32(r.width), Height: -float32(r.height)},
		rl.Vector2{X: 0, Y: 0}, rl.White)
}

// grainColor shades grains from warm sand at rest to near-white when fast.
func grainColor(speedSq float32) rl.Color {
	switch {
	case speedSq > 0.04:
		return rl.Color{R: 255, G: 250, B: 235, A: 255}
	case speedSq > 0.0025:
		return rl.Color{R: 232, G: 214, B: 180, A: 235}
	default:
		return rl.Color{R: 205, G: 185, B: 150, A: 220}
	}
}
