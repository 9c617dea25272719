// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Pattern    PatternConfig    `yaml:"pattern"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds the particle system parameters.
type SimulationConfig struct {
	ParticleCount     int     `yaml:"particle_count"`     // 1000..100000
	VibrationStrength float64 `yaml:"vibration_strength"` // 0.01..0.2
}

// PatternConfig holds the startup Chladni pattern.
type PatternConfig struct {
	M int     `yaml:"m"` // 1..15
	N int     `yaml:"n"` // 1..15
	A float64 `yaml:"a"` // -2..2
	B float64 `yaml:"b"` // -2..2
}

// AudioConfig holds synthesizer settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0..1
	SampleRate   int     `yaml:"sample_rate"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// Parameter ranges enforced by Validate. Out-of-range values are clamped,
// not rejected, so a hand-edited config file can't take the simulator down.
const (
	MinParticleCount = 1000
	MaxParticleCount = 100000
	MinVibration     = 0.01
	MaxVibration     = 0.2
)

// Validate clamps all parameters into their documented ranges.
func (c *Config) Validate() {
	c.Simulation.ParticleCount = clampI(c.Simulation.ParticleCount, MinParticleCount, MaxParticleCount)
	c.Simulation.VibrationStrength = clampF(c.Simulation.VibrationStrength, MinVibration, MaxVibration)

	c.Pattern.M = clampI(c.Pattern.M, 1, 15)
	c.Pattern.N = clampI(c.Pattern.N, 1, 15)
	c.Pattern.A = clampF(c.Pattern.A, -2, 2)
	c.Pattern.B = clampF(c.Pattern.B, -2, 2)

	c.Audio.MasterVolume = clampF(c.Audio.MasterVolume, 0, 1)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}

	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 2.0
	}
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v != v {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Global config instance.
var global *Config

// Init loads config from the given path (or embedded defaults if empty)
// and sets the global instance.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global config. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config.Init must be called before config.Cfg")
	}
	return global
}

// Load reads configuration, starting from the embedded defaults and
// overlaying the user file if a path is given.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Validate()
	return cfg, nil
}

// WriteYAML saves the resolved configuration, used for run snapshots.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
