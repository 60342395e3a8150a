package engine

import "time"

// TimeProvider is the real-time source feeding the fixed-step clock
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the monotonic wall clock
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }
