package sim

import "math/rand"

// Particle count bounds for the store.
const (
	MinParticles = 1
	MaxParticles = 100000
)

// ResizeJitter is the position offset applied to particles seeded during a
// grow, so clones don't stack on their source pixel-perfectly.
const ResizeJitter = 0.02

// ParticleStore owns the dense per-particle state. Positions are laid out
// as x,y,z triples (z always 0) so the renderer can consume the buffer
// directly; velocities as x,y pairs. The integrator is the only mutator
// between resizes, and the renderer's view of Positions is invalidated
// whenever the store is replaced.
type ParticleStore struct {
	Count      int
	Positions  []float32 // len == 3*Count
	Velocities []float32 // len == 2*Count
}

// NewParticleStore allocates a store with count particles at uniform random
// positions on the plate and zero velocity. A count below MinParticles is
// clamped rather than rejected.
func NewParticleStore(count int, rng *rand.Rand) *ParticleStore {
	if count < MinParticles {
		count = MinParticles
	}
	s := &ParticleStore{
		Count:      count,
		Positions:  make([]float32, 3*count),
		Velocities: make([]float32, 2*count),
	}
	for i := 0; i < count; i++ {
		s.Positions[3*i] = (rng.Float32() - 0.5) * PlaneSize
		s.Positions[3*i+1] = (rng.Float32() - 0.5) * PlaneSize
	}
	return s
}

// Resize builds a fresh store with newCount particles and returns it; the
// receiver is left untouched so the caller can swap the reference in one
// assignment and no half-migrated state is ever visible to the integrator
// or renderer.
//
// Particles below the old count carry over verbatim. When growing, each new
// particle clones a randomly chosen existing particle's position with a
// small jitter and half its velocity, so growth doesn't inject energy the
// plate never produced. When shrinking, the suffix is dropped.
func (s *ParticleStore) Resize(newCount int, rng *rand.Rand) *ParticleStore {
	if newCount < MinParticles {
		newCount = MinParticles
	}
	if newCount == s.Count {
		return s
	}

	next := &ParticleStore{
		Count:      newCount,
		Positions:  make([]float32, 3*newCount),
		Velocities: make([]float32, 2*newCount),
	}

	keep := s.Count
	if newCount < keep {
		keep = newCount
	}
	copy(next.Positions, s.Positions[:3*keep])
	copy(next.Velocities, s.Velocities[:2*keep])

	for i := keep; i < newCount; i++ {
		src := rng.Intn(s.Count)
		next.Positions[3*i] = s.Positions[3*src] + (rng.Float32()-0.5)*ResizeJitter
		next.Positions[3*i+1] = s.Positions[3*src+1] + (rng.Float32()-0.5)*ResizeJitter
		next.Velocities[2*i] = s.Velocities[2*src] * 0.5
		next.Velocities[2*i+1] = s.Velocities[2*src+1] * 0.5
	}

	return next
}
