package parameter

// Spawn trigger and band
const (
	// DirectorMinApex is the predicted apex in meters a launch must exceed to spawn monsters
	DirectorMinApex = 50.0

	// RangeStartFactor places the bottom of the spawn band relative to apex
	RangeStartFactor = 0.85

	// RangeEndBase is the band top factor for low apexes
	RangeEndBase = 0.97

	// RangeEndMin is the band top factor approached by very tall apexes
	RangeEndMin = 0.92

	// RangeEndTau is the height in meters over which the band top decays toward RangeEndMin
	RangeEndTau = 600.0
)

// Spawn count and speed
const (
	// BaseCount is the monster count at or below CountRefHeight
	BaseCount = 4

	// CountRefHeight is the apex in meters where count growth starts
	CountRefHeight = 50.0

	// CountGrowthFactor is monsters added per doubling of apex above CountRefHeight
	CountGrowthFactor = 2.0

	// MaxCount caps the monster count of one wave
	MaxCount = 12

	// SpeedRefHeight is the apex in meters that adds SpeedGrowthFactor to the speed multiplier
	SpeedRefHeight = 1000.0

	// SpeedGrowthFactor is the speed multiplier slope per SpeedRefHeight
	SpeedGrowthFactor = 0.8

	// MaxSpeedMultiplier caps monster speed scaling
	MaxSpeedMultiplier = 2.0

	// TypeWeightMin is the weight a type needs to be a candidate
	TypeWeightMin = 0.01
)

// Placement spacing
const (
	// BaseSpacing is the vertical gap in meters between consecutive monsters before bonuses
	BaseSpacing = 12.0

	// SpacingBonusRef is the apex in meters that adds a full unit of spacing bonus
	SpacingBonusRef = 1000.0

	// SpacingMaxBonus caps the height-driven spacing bonus
	SpacingMaxBonus = 1.0

	// SameSideBonus widens the gap when a monster repeats the previous lane
	SameSideBonus = 0.6

	// DiagonalBonus widens the gap when a monster jumps across the full width
	DiagonalBonus = 0.3

	// SpawnJitter is the random altitude jitter in meters applied to each placement
	SpawnJitter = 1.5
)

// AlternateChanceHeights and AlternateChanceValues are the control points of the
// per-height chance that a monster avoids the previous monster's lane
var (
	AlternateChanceHeights = []float64{0, 300, 700, 1100}
	AlternateChanceValues  = []float64{0.9, 0.75, 0.5, 0.35}
)
