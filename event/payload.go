package event

import (
	"github.com/lixenwraith/coilhop/core"
)

// LaunchedPayload describes a release
type LaunchedPayload struct {
	Rating        core.Rating
	Velocity      float64 // px/s upward
	TargetHeight  float64 // px
	ApexM         float64 // predicted apex in meters
	Streak        int
	StreakApplied bool
}

// ResolvedPayload describes how a charge cycle ended
type ResolvedPayload struct {
	Rating      core.Rating
	Settled     bool
	HoldLockout bool
}

// LandedPayload describes a landing
type LandedPayload struct {
	X           float64
	FallHeightM float64
	ImpactSpeed float64
}

type WaveSpawnedPayload struct {
	Rating      core.Rating
	ApexM       float64
	RangeStartM float64
	RangeEndM   float64
	Count       int
}

type WaveClearedPayload struct {
	Count int
}

// MonsterKilledPayload describes one kill and the drop scaling of its wave
type MonsterKilledPayload struct {
	MonsterID      uint64
	Type           core.MonsterType
	X, Y           float64
	DropMultiplier float64
}

// DebuffAppliedPayload describes body contact; Poison is false for velocity-damping types
type DebuffAppliedPayload struct {
	MonsterID    uint64
	Type         core.MonsterType
	Poison       bool
	PoisonStacks int
}

// DamagePayload carries the damage fraction of a landing
type DamagePayload struct {
	Fraction    float64
	FallHeightM float64
}

type BulletTimePayload struct {
	Active bool
	Energy float64
}
