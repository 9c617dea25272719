// Package game wires the simulation core to its collaborators: the raylib
// window, the raygui parameter panel, the synthesizer and telemetry.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chladni/audio"
	"github.com/pthm-cable/chladni/config"
	"github.com/pthm-cable/chladni/renderer"
	"github.com/pthm-cable/chladni/sim"
	"github.com/pthm-cable/chladni/telemetry"
	"github.com/pthm-cable/chladni/ui"
)

// Options configures a session.
type Options struct {
	Seed           int64
	OutputDir      string
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	StepsPerUpdate int
}

// Game owns the whole session: particle store, integrator, synth, renderers
// and panel state. Everything runs on the thread that calls Update/Draw.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	store      *sim.ParticleStore
	integrator *sim.Integrator
	stepCfg    sim.StepConfig

	// Target particle count; applied between integration steps.
	targetCount int

	synth *audio.Engine

	background *renderer.PlateBackground
	particles  *renderer.ParticleRenderer
	panel      *ui.ControlsPanel
	hud        *ui.HUD
	panelState ui.PanelState

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	perf *PerfStats

	tick           int64
	paused         bool
	headless       bool
	logStats       bool
	stepsPerUpdate int
	presetName     string

	screenWidth, screenHeight int32
}

// NewGameWithOptions creates a session from the global config and opts.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		store:          sim.NewParticleStore(cfg.Simulation.ParticleCount, rng),
		integrator:     sim.NewIntegrator(rng),
		targetCount:    cfg.Simulation.ParticleCount,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		stepsPerUpdate: steps,
		perf:           NewPerfStats(),
		screenWidth:    int32(cfg.Screen.Width),
		screenHeight:   int32(cfg.Screen.Height),
	}

	g.stepCfg = sim.StepConfig{
		Pattern: sim.Params{
			M: cfg.Pattern.M,
			N: cfg.Pattern.N,
			A: cfg.Pattern.A,
			B: cfg.Pattern.B,
		},
		Vibration: cfg.Simulation.VibrationStrength,
	}

	g.synth = audio.NewEngine(audio.Config{
		Enabled:    cfg.Audio.Enabled && !opts.Headless,
		Volume:     cfg.Audio.MasterVolume,
		SampleRate: cfg.Audio.SampleRate,
	})
	g.synth.SetFrequency(g.stepCfg.Pattern.Frequency())
	if !opts.Headless {
		if err := g.synth.Start(); err != nil {
			slog.Error("starting audio", "error", err)
		}
	}

	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(int(windowSec * float64(cfg.Screen.TargetFPS)))

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("output disabled", "error", err)
	} else if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("writing config snapshot", "error", err)
		}
		g.output = om
	}

	if !opts.Headless {
		g.background = renderer.NewPlateBackground(g.screenWidth, g.screenHeight)
		g.particles = renderer.NewParticleRenderer(g.screenWidth, g.screenHeight)
		g.panel = ui.NewControlsPanel(g.screenWidth-240, 20, 230)
		g.hud = ui.NewHUD()
	}

	g.panelState = ui.PanelState{
		M:             g.stepCfg.Pattern.M,
		N:             g.stepCfg.Pattern.N,
		A:             g.stepCfg.Pattern.A,
		B:             g.stepCfg.Pattern.B,
		ParticleCount: g.targetCount,
		Vibration:     g.stepCfg.Vibration,
		Volume:        cfg.Audio.MasterVolume,
		AudioEnabled:  cfg.Audio.Enabled,
	}

	slog.Info("session created",
		"particles", g.store.Count,
		"pattern", g.stepCfg.Pattern,
		"frequency_hz", g.stepCfg.Pattern.Frequency(),
	)

	return g
}

// Update advances the session one frame: input, pending resize, then
// stepsPerUpdate integration ticks.
func (g *Game) Update() {
	g.handleInput()
	g.advance()
}

// UpdateHeadless advances the simulation without touching raylib input.
func (g *Game) UpdateHeadless() {
	g.advance()
}

func (g *Game) advance() {
	// The store swap is the only place the renderer's borrowed view is
	// invalidated; it happens strictly between integration steps.
	if g.targetCount != g.store.Count {
		old := g.store.Count
		g.store = g.store.Resize(g.targetCount, g.rng)
		slog.Info("particle store resized", "from", old, "to", g.store.Count)
	}

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

func (g *Game) step() {
	g.stepCfg.AudioLevel = g.synth.Level()
	g.stepCfg.AudioActive = g.synth.Enabled() && g.synth.Playing()

	stop := g.perf.Start("integrate")
	g.integrator.Step(g.store, g.stepCfg)
	stop()

	g.tick++

	g.collector.Record(g.store.Velocities, g.store.Count, g.stepCfg.AudioLevel)
	if g.collector.Ready() {
		g.flushStats()
	}
}

func (g *Game) flushStats() {
	fps := float64(0)
	if !g.headless {
		fps = float64(rl.GetFPS())
	}
	ws := g.collector.Flush(g.tick, g.store.Count, fps, g.stepCfg.Pattern.Frequency())

	if g.logStats {
		slog.Info("window stats",
			"tick", ws.Tick,
			"particles", ws.Particles,
			"mean_speed", ws.MeanSpeed,
			"p95_speed", ws.P95Speed,
			"moving_ratio", ws.MovingRatio,
			"audio_level", ws.AudioLevel,
		)
	}
	if err := g.output.WriteStats(ws); err != nil {
		slog.Error("writing stats", "error", err)
	}
}

// Draw renders one frame. The panel is immediate-mode, so user edits land
// here and are applied before the next Update.
func (g *Game) Draw() {
	rl.BeginDrawing()

	view := g.particles.View()
	g.background.Draw(view)

	stop := g.perf.Start("draw")
	g.particles.Draw(g.store, g.stepCfg.AudioActive)
	stop()

	g.hud.Draw(ui.HUDData{
		Tick:        g.tick,
		FPS:         rl.GetFPS(),
		Particles:   g.store.Count,
		FrequencyHz: g.stepCfg.Pattern.Frequency(),
		AudioLevel:  g.stepCfg.AudioLevel,
		Playing:     g.synth.Playing(),
		Paused:      g.paused,
		PresetName:  g.presetName,
	})

	if g.panel.Draw(&g.panelState) {
		g.applyPanelState()
	}

	rl.EndDrawing()
}

// applyPanelState pushes edited panel values into the simulation and synth.
func (g *Game) applyPanelState() {
	p := sim.Params{M: g.panelState.M, N: g.panelState.N, A: g.panelState.A, B: g.panelState.B}
	p.Clamp()
	if p != g.stepCfg.Pattern {
		g.stepCfg.Pattern = p
		g.synth.SetFrequency(p.Frequency())
		g.presetName = ""
	}

	g.stepCfg.Vibration = clamp(g.panelState.Vibration, config.MinVibration, config.MaxVibration)

	count := g.panelState.ParticleCount
	if count < config.MinParticleCount {
		count = config.MinParticleCount
	}
	if count > config.MaxParticleCount {
		count = config.MaxParticleCount
	}
	g.targetCount = count

	g.synth.SetVolume(g.panelState.Volume)
	g.synth.SetEnabled(g.panelState.AudioEnabled)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// Unload releases session resources on every exit path; main defers it.
func (g *Game) Unload() {
	if g.particles != nil {
		g.particles.Unload()
	}
	g.synth.Close()
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
