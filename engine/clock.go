package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/coilhop/config"
)

// Clock converts real elapsed time into fixed simulation steps
// The accumulator always advances in real time; only the dt handed to each step is scaled,
// so slow motion changes step magnitude but never cadence
type Clock struct {
	step     time.Duration
	maxSteps int
	provider TimeProvider

	last    time.Time
	acc     time.Duration
	paused  bool
	ticks   uint64
	dropped time.Duration
}

func NewClock(cfg config.ClockConfig, tp TimeProvider) *Clock {
	if tp == nil {
		tp = SystemTime{}
	}
	return &Clock{
		step:     cfg.FixedStep,
		maxSteps: cfg.MaxStepsPerFrame,
		provider: tp,
		last:     tp.Now(),
	}
}

// Frame reads the provider and runs the steps owed since the previous frame
func (c *Clock) Frame(scale float64, tick func(dt float64)) int {
	now := c.provider.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	return c.Advance(elapsed, scale, tick)
}

// Advance adds real elapsed time and runs up to maxSteps ticks of dt = step·scale
// When the cap is hit the remaining backlog is dropped rather than carried
func (c *Clock) Advance(elapsed time.Duration, scale float64, tick func(dt float64)) int {
	if c.paused || elapsed <= 0 {
		return 0
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	c.acc += elapsed
	dt := c.step.Seconds() * scale
	steps := 0
	for c.acc >= c.step && steps < c.maxSteps {
		tick(dt)
		c.acc -= c.step
		c.ticks++
		steps++
	}
	if steps == c.maxSteps && c.acc >= c.step {
		c.dropped += c.acc
		c.acc = 0
	}
	return steps
}

// Pause freezes simulation; real time elapsed while paused is discarded
func (c *Clock) Pause() { c.paused = true }

func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.provider.Now()
}

func (c *Clock) Paused() bool { return c.paused }

// Ticks is the number of steps run so far
func (c *Clock) Ticks() uint64 { return c.ticks }

// Dropped is the total backlog discarded by the per-frame cap
func (c *Clock) Dropped() time.Duration { return c.dropped }

func (c *Clock) Step() time.Duration { return c.step }

// Pending is the unconsumed accumulator, below one step after every frame
func (c *Clock) Pending() time.Duration { return c.acc }
