package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Meter wraps a beep.Streamer and records the last samples it produced into a
// ring buffer so the host can show how loud the cue currently is.
type Meter struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

// NewMeter wraps src with a ring of ringSize samples.
func NewMeter(src beep.Streamer, ringSize int) *Meter {
	return &Meter{
		Source: src,
		buffer: make([][2]float64, max(ringSize, 1)),
	}
}

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		m.mu.Lock()
		for i := 0; i < n; i++ {
			m.buffer[m.nextIndex] = samples[i]
			m.nextIndex++
			if m.nextIndex >= len(m.buffer) {
				m.nextIndex = 0
			}
		}
		m.filled = min(m.filled+n, len(m.buffer))
		m.mu.Unlock()
	}
	return n, ok
}

func (m *Meter) Err() error { return m.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (m *Meter) Snapshot(n int) [][2]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n = min(n, m.filled)
	out := make([][2]float64, n)
	idx := m.nextIndex - n
	if idx < 0 {
		idx += len(m.buffer)
	}
	for i := range out {
		out[i] = m.buffer[idx]
		idx++
		if idx >= len(m.buffer) {
			idx = 0
		}
	}
	return out
}

// Level returns the compressed RMS of the buffered samples in [0, 1].
func (m *Meter) Level() float64 {
	samples := m.Snapshot(len(m.buffer))
	if len(samples) == 0 {
		return 0
	}

	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return math.Min(1, math.Pow(rms, 0.3))
}

// Reset forgets every recorded sample.
func (m *Meter) Reset() {
	m.mu.Lock()
	clear(m.buffer)
	m.nextIndex, m.filled = 0, 0
	m.mu.Unlock()
}
