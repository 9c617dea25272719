package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/chladni/config"
	"github.com/pthm-cable/chladni/sim"
)

func newHeadless(t *testing.T) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	g := NewGameWithOptions(Options{Seed: 42, Headless: true})
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessSessionRuns(t *testing.T) {
	g := newHeadless(t)

	for i := 0; i < 50; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 50 {
		t.Errorf("Tick = %d, want 50", g.Tick())
	}

	for i := 0; i < g.store.Count; i++ {
		x := float64(g.store.Positions[3*i])
		y := float64(g.store.Positions[3*i+1])
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x) > sim.PlaneSize/2 || math.Abs(y) > sim.PlaneSize/2 {
			t.Fatalf("particle %d in bad state (%v,%v)", i, x, y)
		}
	}
}

func TestStepsPerUpdate(t *testing.T) {
	if err := config.Init(""); err != nil {
		t.Fatal(err)
	}
	g := NewGameWithOptions(Options{Seed: 1, Headless: true, StepsPerUpdate: 4})
	defer g.Unload()

	g.UpdateHeadless()
	if g.Tick() != 4 {
		t.Errorf("Tick = %d after one update with 4 steps, want 4", g.Tick())
	}
}

func TestResizeAppliedBetweenTicks(t *testing.T) {
	g := newHeadless(t)
	g.UpdateHeadless()

	g.targetCount = g.store.Count * 2
	g.UpdateHeadless()

	if g.store.Count != g.targetCount {
		t.Fatalf("Count = %d, want %d", g.store.Count, g.targetCount)
	}
	if len(g.store.Positions) != 3*g.store.Count || len(g.store.Velocities) != 2*g.store.Count {
		t.Fatal("store arrays inconsistent after resize")
	}
}

func TestApplyPanelStateClampsInput(t *testing.T) {
	g := newHeadless(t)

	g.panelState.M = 99
	g.panelState.ParticleCount = 5
	g.panelState.Vibration = 7
	g.applyPanelState()

	if g.stepCfg.Pattern.M != sim.MaxMode {
		t.Errorf("M = %d, want %d", g.stepCfg.Pattern.M, sim.MaxMode)
	}
	if g.targetCount != config.MinParticleCount {
		t.Errorf("targetCount = %d, want %d", g.targetCount, config.MinParticleCount)
	}
	if g.stepCfg.Vibration != config.MaxVibration {
		t.Errorf("vibration = %v, want %v", g.stepCfg.Vibration, config.MaxVibration)
	}
}

func TestPresetsAreValid(t *testing.T) {
	seen := map[int32]string{}
	for _, p := range Presets {
		if p.Name == "" {
			t.Errorf("preset key %d has no name", p.Key)
		}
		if prev, dup := seen[p.Key]; dup {
			t.Errorf("key %d bound to both %q and %q", p.Key, prev, p.Name)
		}
		seen[p.Key] = p.Name

		params := p.Params()
		clamped := params
		clamped.Clamp()
		if params != clamped {
			t.Errorf("preset %q is out of range: %+v", p.Name, params)
		}
	}
	if len(Presets) != 10 {
		t.Errorf("got %d presets, want the full number row", len(Presets))
	}
}
