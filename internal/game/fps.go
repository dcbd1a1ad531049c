package game

import (
	"math"
	"time"
)

const fpsWindow = 50

// FPSMeter averages the time spent on the last fpsWindow frames.
type FPSMeter struct {
	samples [fpsWindow]time.Duration
	next    int
}

// NewFPSMeter returns a meter primed with 1ms frames.
func NewFPSMeter() *FPSMeter {
	m := &FPSMeter{}
	for i := range m.samples {
		m.samples[i] = time.Millisecond
	}
	return m
}

// Record adds one frame's duration, replacing the oldest sample.
func (m *FPSMeter) Record(d time.Duration) {
	m.samples[m.next] = d
	m.next = (m.next + 1) % fpsWindow
}

// FPS returns 1000 / mean frame time in milliseconds, rounded.
func (m *FPSMeter) FPS() int {
	var sum time.Duration
	for _, d := range m.samples {
		sum += d
	}
	meanMs := float64(sum) / float64(time.Millisecond) / fpsWindow
	if meanMs <= 0 {
		return 0
	}
	return int(math.Round(1000 / meanMs))
}
