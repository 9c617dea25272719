// Package sim implements the Chladni plate particle simulation: the pattern
// field function, the particle store and its resize migration, and the
// per-tick integrator that couples particle motion to a live audio level.
package sim

import "math"

// Field evaluates the plate excitation value at normalized coordinates
// x, y in [-1, 1]. m and n select the pattern's symmetry class, a and b
// weight the two orthogonal standing-wave components. The result lies in
// [-(|a|+|b|), |a|+|b|].
func Field(x, y float64, m, n int, a, b float64) float64 {
	// Remap [-1,1] -> [0,1] so nodal lines land on the plate edges.
	xr := (x + 1) / 2
	yr := (y + 1) / 2

	fm := float64(m)
	fn := float64(n)

	return a*math.Sin(math.Pi*fn*xr)*math.Sin(math.Pi*fm*yr) +
		b*math.Sin(math.Pi*fm*xr)*math.Sin(math.Pi*fn*yr)
}

// Frequency bounds for the synthesizer, in Hz.
const (
	MinFrequency = 20
	MaxFrequency = 2000
)

// Frequency maps pattern parameters to an audible tone for the synthesizer.
// Higher mode numbers produce higher tones; the amplitude mix scales the
// result. Clamped to [MinFrequency, MaxFrequency].
func Frequency(m, n int, a, b float64) float64 {
	base := math.Sqrt(float64(m*m+n*n)) * 55
	mix := math.Sqrt(a*a + b*b)

	hz := base * mix
	if hz < MinFrequency {
		return MinFrequency
	}
	if hz > MaxFrequency {
		return MaxFrequency
	}
	return hz
}
