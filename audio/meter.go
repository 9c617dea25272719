package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// levelMeter wraps a streamer and records the peak absolute sample
// amplitude of each streamed chunk. The simulation polls Peak once per tick
// to modulate the excitation force.
type levelMeter struct {
	src      beep.Streamer
	peakBits atomic.Uint64 // float64
}

func newLevelMeter(src beep.Streamer) *levelMeter {
	return &levelMeter{src: src}
}

func (m *levelMeter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.src.Stream(samples)

	peak := 0.0
	for i := 0; i < n; i++ {
		if a := math.Abs(samples[i][0]); a > peak {
			peak = a
		}
		if a := math.Abs(samples[i][1]); a > peak {
			peak = a
		}
	}
	m.peakBits.Store(math.Float64bits(peak))

	return n, ok
}

func (m *levelMeter) Err() error {
	return m.src.Err()
}

// Peak returns the peak amplitude of the most recent chunk.
func (m *levelMeter) Peak() float64 {
	return math.Float64frombits(m.peakBits.Load())
}
