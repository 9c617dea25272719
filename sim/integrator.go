package sim

import (
	"math"
	"math/rand"
)

// Plate geometry and motion constants. These are tuned for the visual
// approximation, not derived from plate physics; treat them as a set.
const (
	// PlaneSize is the side length of the square plate in world units.
	PlaneSize = 10.0

	// BoundMargin keeps reflected particles strictly inside the plate edge.
	BoundMargin = 0.01

	// Bound is the reflection limit for |x| and |y|.
	Bound = PlaneSize/2 - BoundMargin

	// ExciteThreshold is the audio level below which the plate is treated
	// as silent and no excitation force is applied.
	ExciteThreshold = 0.01

	// ForceJitterScale scales the randomized excitation kick per tick.
	ForceJitterScale = 0.07

	// ActiveDamping is the per-tick velocity retention while excited.
	ActiveDamping = 0.85

	// IdleDamping is the first-stage per-tick retention while silent; a
	// speed-dependent second stage then brings particles to a firm stop.
	IdleDamping = 0.85

	// RestSpeed is the speed below which an idle particle snaps to zero.
	RestSpeed = 0.001

	// WallRestitution is the velocity fraction kept (sign-flipped) on a
	// boundary bounce.
	WallRestitution = 0.7
)

// StepConfig carries the per-tick inputs to the integrator. The session
// owns one and updates it from UI events; the integrator only reads it.
type StepConfig struct {
	Pattern     Params
	Vibration   float64 // excitation force scale
	AudioLevel  float64 // peak waveform amplitude from the synth, >= 0
	AudioActive bool    // synth enabled and a note is sounding
}

// Integrator advances a ParticleStore one tick at a time. The random source
// drives the per-particle excitation angle; inject a seeded one for
// reproducible runs.
type Integrator struct {
	rng *rand.Rand
}

// NewIntegrator returns an integrator using rng for excitation jitter.
func NewIntegrator(rng *rand.Rand) *Integrator {
	return &Integrator{rng: rng}
}

// Step advances every particle in s by one tick. Particles are fully
// independent: each update reads and writes only its own slots, in index
// order, and the excited path consumes exactly one angle draw per particle.
// A nil or empty store is a no-op.
func (ig *Integrator) Step(s *ParticleStore, cfg StepConfig) {
	if s == nil || s.Count == 0 {
		return
	}

	cfg.Pattern.Clamp()
	level := sanitizeLevel(cfg.AudioLevel)
	active := cfg.AudioActive && level > ExciteThreshold

	for i := 0; i < s.Count; i++ {
		px := float64(s.Positions[3*i])
		py := float64(s.Positions[3*i+1])
		vx := float64(s.Velocities[2*i])
		vy := float64(s.Velocities[2*i+1])

		// A corrupted particle is re-seeded at the plate center instead
		// of spreading NaN through the buffer the renderer reads.
		if !finite(px) || !finite(py) || !finite(vx) || !finite(vy) {
			px, py, vx, vy = 0, 0, 0, 0
		}

		if active {
			value := Field(px/(PlaneSize/2), py/(PlaneSize/2),
				cfg.Pattern.M, cfg.Pattern.N, cfg.Pattern.A, cfg.Pattern.B)
			force := value * cfg.Vibration * (1 + level*2)

			// The randomized angle turns the scalar field value into
			// isotropic jitter: particles shaken hard everywhere except
			// near nodal lines, where they settle.
			theta := ig.rng.Float64() * 2 * math.Pi
			vx += force * math.Cos(theta) * ForceJitterScale
			vy += force * math.Sin(theta) * ForceJitterScale

			vx *= ActiveDamping
			vy *= ActiveDamping
		} else {
			vx, vy = idleDamp(vx, vy)
		}

		px += vx
		py += vy

		px, vx = reflect(px, vx)
		py, vy = reflect(py, vy)

		s.Positions[3*i] = float32(px)
		s.Positions[3*i+1] = float32(py)
		s.Velocities[2*i] = float32(vx)
		s.Velocities[2*i+1] = float32(vy)
	}
}

// idleDamp applies the silent-plate two-stage damping: exponential decay
// plus a speed-proportional brake, snapping to exactly zero below RestSpeed.
func idleDamp(vx, vy float64) (float64, float64) {
	vx *= IdleDamping
	vy *= IdleDamping

	speed := math.Hypot(vx, vy)
	if speed <= RestSpeed {
		return 0, 0
	}
	brake := 1 - speed*2
	if brake < 0.5 {
		brake = 0.5
	}
	return vx * brake, vy * brake
}

// reflect clamps p to the plate bound and applies the damped bounce to v
// when the bound was exceeded.
func reflect(p, v float64) (float64, float64) {
	if p > Bound {
		return Bound, v * -WallRestitution
	}
	if p < -Bound {
		return -Bound, v * -WallRestitution
	}
	return p, v
}

// sanitizeLevel clamps the collaborator-supplied audio level to a finite
// non-negative value so a misbehaving synth cannot push non-finite force
// into the particle state.
func sanitizeLevel(level float64) float64 {
	if level != level || math.IsInf(level, 0) || level < 0 {
		return 0
	}
	return level
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
