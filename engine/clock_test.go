package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/coilhop/config"
)

func testClock() (*Clock, *MockTimeProvider) {
	mp := NewMockTimeProvider(time.Unix(0, 0))
	return NewClock(config.DefaultConfig().Clock, mp), mp
}

// TestClockAccumulates tests that partial steps carry to the next frame
func TestClockAccumulates(t *testing.T) {
	c, _ := testClock()
	step := c.Step()

	n := 0
	got := c.Advance(3*step+step/2, 1, func(float64) { n++ })
	if got != 3 || n != 3 {
		t.Fatalf("steps = %d (callbacks %d), want 3", got, n)
	}
	if c.Pending() != step/2 {
		t.Errorf("pending = %v, want %v", c.Pending(), step/2)
	}

	if got := c.Advance(step/2, 1, func(float64) { n++ }); got != 1 {
		t.Errorf("carried half-steps produced %d steps, want 1", got)
	}
	if c.Ticks() != 4 {
		t.Errorf("ticks = %d, want 4", c.Ticks())
	}
}

// TestClockCapsAndDrops tests the per-frame cap after a stall
func TestClockCapsAndDrops(t *testing.T) {
	c, _ := testClock()
	step := c.Step()
	max := config.DefaultConfig().Clock.MaxStepsPerFrame

	got := c.Advance(time.Duration(max+7)*step, 1, func(float64) {})
	if got != max {
		t.Fatalf("steps = %d, want cap %d", got, max)
	}
	if c.Pending() != 0 {
		t.Errorf("backlog carried: %v", c.Pending())
	}
	if c.Dropped() != 7*step {
		t.Errorf("dropped = %v, want %v", c.Dropped(), 7*step)
	}
}

// TestClockScaleKeepsCadence tests that slow motion shrinks dt without changing step count
func TestClockScaleKeepsCadence(t *testing.T) {
	c, _ := testClock()
	step := c.Step()

	var dts []float64
	got := c.Advance(4*step, 0.35, func(dt float64) { dts = append(dts, dt) })
	if got != 4 {
		t.Fatalf("scaled frame ran %d steps, want 4", got)
	}
	want := step.Seconds() * 0.35
	for _, dt := range dts {
		if math.Abs(dt-want) > 1e-12 {
			t.Errorf("dt = %v, want %v", dt, want)
		}
	}

	dts = dts[:0]
	c.Advance(step, math.NaN(), func(dt float64) { dts = append(dts, dt) })
	if len(dts) != 1 || math.Abs(dts[0]-step.Seconds()) > 1e-12 {
		t.Errorf("invalid scale not reset to 1: %v", dts)
	}
}

// TestClockFramePause tests provider-driven frames and pause discarding real time
func TestClockFramePause(t *testing.T) {
	c, mp := testClock()
	step := c.Step()

	mp.Advance(2 * step)
	if got := c.Frame(1, func(float64) {}); got != 2 {
		t.Errorf("frame ran %d steps, want 2", got)
	}

	c.Pause()
	mp.Advance(10 * step)
	if got := c.Frame(1, func(float64) {}); got != 0 || !c.Paused() {
		t.Errorf("paused frame ran %d steps", got)
	}
	c.Resume()
	if got := c.Frame(1, func(float64) {}); got != 0 {
		t.Errorf("resume replayed %d paused steps", got)
	}
	mp.Advance(step)
	if got := c.Frame(1, func(float64) {}); got != 1 {
		t.Errorf("frame after resume ran %d steps, want 1", got)
	}
}
