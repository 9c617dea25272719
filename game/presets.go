package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chladni/sim"
)

// Preset is a named pattern bound to a number key. The table is the whole
// keyboard-to-pattern mapping; the simulation only ever sees the resulting
// parameter values.
type Preset struct {
	Key  int32
	Name string
	M, N int
	A, B float64
}

// Presets binds the number row to ten classic plate figures.
var Presets = []Preset{
	{rl.KeyOne, "Diagonal pair", 1, 2, 1, 1},
	{rl.KeyTwo, "Cross", 2, 2, 1, -1},
	{rl.KeyThree, "Triple bands", 3, 1, 1, 1},
	{rl.KeyFour, "Petals", 4, 3, 1, 1},
	{rl.KeyFive, "Checkerboard", 5, 5, 1, -1},
	{rl.KeySix, "Star", 6, 3, 1, 0.6},
	{rl.KeySeven, "Lattice", 7, 4, 1.2, -0.8},
	{rl.KeyEight, "Web", 8, 5, 0.9, 1.1},
	{rl.KeyNine, "Shards", 9, 7, 1.5, -1.5},
	{rl.KeyZero, "Fine grain", 12, 11, 1, 1},
}

// Params returns the preset's pattern parameters.
func (p Preset) Params() sim.Params {
	return sim.Params{M: p.M, N: p.N, A: p.A, B: p.B}
}
