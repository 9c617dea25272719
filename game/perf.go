package game

import (
	"log/slog"
	"sort"
	"time"
)

// PerfStats tracks execution time for each simulation phase over a sliding
// window of recent frames.
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates a perf tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: 120, // ~2 seconds at 60fps
	}
}

// Start begins timing the named phase; call the returned func to record it.
func (p *PerfStats) Start(name string) func() {
	t0 := time.Now()
	return func() {
		p.Record(name, time.Since(t0))
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	p.samples[name] = append(p.samples[name], d)
	if len(p.samples[name]) > p.maxSamples {
		p.samples[name] = p.samples[name][1:]
	}
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	s := p.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// SortedNames returns phase names ordered by average duration, slowest first.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return p.Avg(names[i]) > p.Avg(names[j])
	})
	return names
}

// logPerfStats dumps the per-phase averages.
func (g *Game) logPerfStats() {
	for _, name := range g.perf.SortedNames() {
		slog.Info("perf", "phase", name, "avg", g.perf.Avg(name).Round(time.Microsecond), "tick", g.tick)
	}
}
