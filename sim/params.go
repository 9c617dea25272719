package sim

// Pattern parameter ranges. Values arriving from the UI or keyboard glue
// are clamped to these at the simulation boundary.
const (
	MinMode = 1
	MaxMode = 15
	MinAmp  = -2.0
	MaxAmp  = 2.0
)

// Params selects the active Chladni pattern.
type Params struct {
	M, N int     // mode numbers
	A, B float64 // amplitude mix for the two standing-wave components
}

// Clamp forces all fields into their documented ranges. Non-finite
// amplitude coefficients are reset to zero.
func (p *Params) Clamp() {
	p.M = clampInt(p.M, MinMode, MaxMode)
	p.N = clampInt(p.N, MinMode, MaxMode)
	p.A = clampFinite(p.A, MinAmp, MaxAmp)
	p.B = clampFinite(p.B, MinAmp, MaxAmp)
}

// Frequency returns the synthesizer tone for this pattern.
func (p Params) Frequency() float64 {
	return Frequency(p.M, p.N, p.A, p.B)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFinite(v, lo, hi float64) float64 {
	if v != v { // NaN
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
