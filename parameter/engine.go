package parameter

import "time"

// Game Loop Timing
const (
	// FixedStep is the simulated physics step, independent of render rate (~60 Hz)
	FixedStep = time.Second / 60

	// MaxStepsPerFrame caps catch-up ticks after a stall; the remainder is dropped
	MaxStepsPerFrame = 5

	// FrameInterval is the host render interval
	FrameInterval = 16 * time.Millisecond
)

// Event queue
const (
	// EventQueueSize is the capacity of the event queue; oldest events drop on overflow
	EventQueueSize = 256
)
