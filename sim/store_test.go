package sim

import (
	"math/rand"
	"testing"
)

func TestNewParticleStore(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewParticleStore(500, rng)

	if s.Count != 500 {
		t.Fatalf("Count = %d, want 500", s.Count)
	}
	if len(s.Positions) != 1500 || len(s.Velocities) != 1000 {
		t.Fatalf("array lengths = %d/%d, want 1500/1000", len(s.Positions), len(s.Velocities))
	}

	for i := 0; i < s.Count; i++ {
		x, y, z := s.Positions[3*i], s.Positions[3*i+1], s.Positions[3*i+2]
		if x < -PlaneSize/2 || x > PlaneSize/2 || y < -PlaneSize/2 || y > PlaneSize/2 {
			t.Fatalf("particle %d spawned off-plate at (%v,%v)", i, x, y)
		}
		if z != 0 {
			t.Fatalf("particle %d has nonzero z %v", i, z)
		}
		if s.Velocities[2*i] != 0 || s.Velocities[2*i+1] != 0 {
			t.Fatalf("particle %d spawned with velocity", i)
		}
	}
}

func TestNewParticleStoreClampsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, count := range []int{0, -10} {
		s := NewParticleStore(count, rng)
		if s.Count != MinParticles {
			t.Errorf("NewParticleStore(%d).Count = %d, want %d", count, s.Count, MinParticles)
		}
	}
}

func TestResizeGrowPreservesPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewParticleStore(1000, rng)

	// Give the prefix distinctive velocities so copies are observable.
	for i := range s.Velocities {
		s.Velocities[i] = rng.Float32() - 0.5
	}

	grown := s.Resize(2000, rng)
	if grown.Count != 2000 {
		t.Fatalf("Count = %d, want 2000", grown.Count)
	}
	if len(grown.Positions) != 6000 || len(grown.Velocities) != 4000 {
		t.Fatalf("array lengths inconsistent with count: %d/%d", len(grown.Positions), len(grown.Velocities))
	}

	for i := 0; i < 3000; i++ {
		if grown.Positions[i] != s.Positions[i] {
			t.Fatalf("position word %d changed: %v != %v", i, grown.Positions[i], s.Positions[i])
		}
	}
	for i := 0; i < 2000; i++ {
		if grown.Velocities[i] != s.Velocities[i] {
			t.Fatalf("velocity word %d changed: %v != %v", i, grown.Velocities[i], s.Velocities[i])
		}
	}
}

func TestResizeShrinkKeepsPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewParticleStore(1000, rng)

	shrunk := s.Resize(500, rng)
	if shrunk.Count != 500 {
		t.Fatalf("Count = %d, want 500", shrunk.Count)
	}
	for i := 0; i < 1500; i++ {
		if shrunk.Positions[i] != s.Positions[i] {
			t.Fatalf("position word %d changed on shrink", i)
		}
	}
}

func TestResizeGrowSeedsFromExisting(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewParticleStore(100, rng)
	for i := 0; i < s.Count; i++ {
		s.Velocities[2*i] = 0.4
		s.Velocities[2*i+1] = -0.2
	}

	grown := s.Resize(200, rng)
	for i := 100; i < 200; i++ {
		// Cloned velocity is exactly half the source's.
		if grown.Velocities[2*i] != 0.2 || grown.Velocities[2*i+1] != -0.1 {
			t.Fatalf("particle %d velocity = (%v,%v), want (0.2,-0.1)",
				i, grown.Velocities[2*i], grown.Velocities[2*i+1])
		}
		// Position is within jitter range of some existing particle.
		x, y := grown.Positions[3*i], grown.Positions[3*i+1]
		found := false
		for j := 0; j < 100; j++ {
			dx := x - s.Positions[3*j]
			dy := y - s.Positions[3*j+1]
			if dx >= -ResizeJitter && dx <= ResizeJitter && dy >= -ResizeJitter && dy <= ResizeJitter {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("particle %d at (%v,%v) not near any source particle", i, x, y)
		}
	}
}

func TestResizeClampsDegenerateTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewParticleStore(50, rng)

	for _, target := range []int{0, -1} {
		r := s.Resize(target, rng)
		if r.Count != MinParticles {
			t.Errorf("Resize(%d).Count = %d, want %d", target, r.Count, MinParticles)
		}
		if len(r.Positions) != 3*r.Count || len(r.Velocities) != 2*r.Count {
			t.Errorf("Resize(%d) left inconsistent lengths %d/%d", target, len(r.Positions), len(r.Velocities))
		}
	}
}

func TestResizeSameCountIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewParticleStore(50, rng)
	if s.Resize(50, rng) != s {
		t.Error("Resize to same count should return the receiver")
	}
}
