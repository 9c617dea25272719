// Package telemetry collects per-window statistics about the particle
// motion and exports them for offline analysis.
package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// speedStride subsamples particle speeds for the quantile estimate; at
// 100k particles a full sort per window would eat the frame budget.
const speedStride = 97

// WindowStats is one aggregated row of simulation telemetry.
type WindowStats struct {
	Tick        int64   `csv:"tick"`
	Particles   int     `csv:"particles"`
	FPS         float64 `csv:"fps"`
	MeanSpeed   float64 `csv:"mean_speed"`
	P50Speed    float64 `csv:"p50_speed"`
	P95Speed    float64 `csv:"p95_speed"`
	MaxSpeed    float64 `csv:"max_speed"`
	MovingRatio float64 `csv:"moving_ratio"`
	AudioLevel  float64 `csv:"audio_level"`
	FrequencyHz float64 `csv:"frequency_hz"`
}

// Collector accumulates per-tick motion samples and folds them into a
// WindowStats row when the window elapses.
type Collector struct {
	windowTicks int
	ticksSeen   int

	speeds     []float64 // subsampled, for quantiles
	meanAccum  float64
	levelAccum float64
	maxSpeed   float64
	movingSum  float64
}

// NewCollector creates a collector that emits one row every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// Record samples the velocity buffer for one tick. velocities is the dense
// vx,vy pair array; count is the particle count.
func (c *Collector) Record(velocities []float32, count int, audioLevel float64) {
	if count == 0 {
		c.ticksSeen++
		return
	}

	sum := 0.0
	moving := 0
	for i := 0; i < count; i++ {
		vx := float64(velocities[2*i])
		vy := float64(velocities[2*i+1])
		speed := math.Hypot(vx, vy)

		sum += speed
		if speed > c.maxSpeed {
			c.maxSpeed = speed
		}
		if speed > 0 {
			moving++
		}
		if i%speedStride == 0 {
			c.speeds = append(c.speeds, speed)
		}
	}

	c.meanAccum += sum / float64(count)
	c.movingSum += float64(moving) / float64(count)
	c.levelAccum += audioLevel
	c.ticksSeen++
}

// Ready reports whether a full window has been recorded.
func (c *Collector) Ready() bool {
	return c.ticksSeen >= c.windowTicks
}

// Flush aggregates the window into a row and resets the collector. tick,
// particles, fps and frequency describe the moment of flushing.
func (c *Collector) Flush(tick int64, particles int, fps, frequency float64) WindowStats {
	ws := WindowStats{
		Tick:        tick,
		Particles:   particles,
		FPS:         fps,
		MaxSpeed:    c.maxSpeed,
		FrequencyHz: frequency,
	}

	if c.ticksSeen > 0 {
		ws.MeanSpeed = c.meanAccum / float64(c.ticksSeen)
		ws.MovingRatio = c.movingSum / float64(c.ticksSeen)
		ws.AudioLevel = c.levelAccum / float64(c.ticksSeen)
	}

	if len(c.speeds) > 0 {
		sort.Float64s(c.speeds)
		ws.P50Speed = stat.Quantile(0.5, stat.Empirical, c.speeds, nil)
		ws.P95Speed = stat.Quantile(0.95, stat.Empirical, c.speeds, nil)
	}

	c.speeds = c.speeds[:0]
	c.meanAccum = 0
	c.levelAccum = 0
	c.maxSpeed = 0
	c.movingSum = 0
	c.ticksSeen = 0

	return ws
}
