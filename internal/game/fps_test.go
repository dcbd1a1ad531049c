package game

import (
	"testing"
	"time"
)

func TestFPSMeterStartsPrimed(t *testing.T) {
	if got := NewFPSMeter().FPS(); got != 1000 {
		t.Errorf("Expected 1000 FPS from 1ms samples, got %d", got)
	}
}

func TestFPSMeterRollingAverage(t *testing.T) {
	m := NewFPSMeter()
	for i := 0; i < fpsWindow; i++ {
		m.Record(10 * time.Millisecond)
	}
	if got := m.FPS(); got != 100 {
		t.Errorf("Expected 100 FPS, got %d", got)
	}

	// Half the window at 30ms: mean is 20ms.
	for i := 0; i < fpsWindow/2; i++ {
		m.Record(30 * time.Millisecond)
	}
	if got := m.FPS(); got != 50 {
		t.Errorf("Expected 50 FPS, got %d", got)
	}
}

func TestFPSMeterZeroDurations(t *testing.T) {
	m := NewFPSMeter()
	for i := 0; i < fpsWindow; i++ {
		m.Record(0)
	}
	if got := m.FPS(); got != 0 {
		t.Errorf("Expected 0 for an empty window, got %d", got)
	}
}
