package parameter

// Charge cycle
const (
	// TargetCompression is the maximum spring depth of one landing (px)
	TargetCompression = 32.0

	// YellowZoneRatio is the compression/target proximity that opens the sweet window
	YellowZoneRatio = 0.9

	// PeakRatio is the compression/target proximity that counts as a natural peak
	PeakRatio = 0.99

	// SettleEpsilon is the compression below which an unreleased post-peak cycle settles as failure (px)
	SettleEpsilon = 0.5

	// RelaxRate is the base post-grace relaxation rate of compression (1/s)
	RelaxRate = 4.0

	// OverHoldAccelTime is the time constant of the over-hold acceleration ramp (s)
	OverHoldAccelTime = 0.25

	// EfficiencyDecay is the base decay rate of charge efficiency while over-holding (1/s)
	EfficiencyDecay = 1.5

	// DeadEfficiency is the efficiency at or below which any release fails
	DeadEfficiency = 0.05

	// IdleLaunchHeight is the fall-height basis used for a charge started from standing (px)
	IdleLaunchHeight = 300.0
)

// Difficulty model
// All heights in meters; times in seconds
const (
	// DifficultyHeightRef is the reference height Href of the log2 difficulty scales
	DifficultyHeightRef = 50.0

	// CompressTimeBase is the compression time constant at zero height
	CompressTimeBase = 0.12

	// CompressTimeLogScale widens compress time with log2 height (taller falls get more time)
	CompressTimeLogScale = 0.15

	// YellowDurationBase is the sweet window length at zero height
	YellowDurationBase = 0.18

	// YellowDurationMin is the floor of the sweet window length
	YellowDurationMin = 0.06

	// YellowDurationLogScale shrinks the sweet window with log2 height
	YellowDurationLogScale = 0.35

	// SweetGraceBase is the post-peak PERFECT grace at difficulty 1
	SweetGraceBase = 0.12

	// SweetGraceMin is the floor of the post-peak grace
	SweetGraceMin = 0.05

	// FailHoldBase is the post-peak hold time that latches lockout at difficulty 1
	FailHoldBase = 0.60

	// FailHoldMin is the floor of the lockout hold time
	FailHoldMin = 0.30

	// DifficultyLogScale is the difficulty gained per log2 height step
	DifficultyLogScale = 0.25

	// DifficultyMax caps the difficulty factor
	DifficultyMax = 3.0

	// OverHoldGainBase is the over-hold decay gain at difficulty 1
	OverHoldGainBase = 1.0

	// OverHoldGainSlope is the over-hold gain added per difficulty unit above 1
	OverHoldGainSlope = 0.8
)

// Launch physics
const (
	// PerfectNoPressFactor is the PERFECT height factor when nothing was held during the fall
	PerfectNoPressFactor = 0.85

	// GrowthBase is the PERFECT full-press growth rate before height bonus
	GrowthBase = 0.15

	// GrowthLogScale scales the log10 height bonus of the growth rate
	GrowthLogScale = 0.05

	// GrowthLogRef is the px reference of the log10 growth bonus
	GrowthLogRef = 100.0

	// StreakThreshold is the consecutive PERFECT count that enables the streak multiplier
	StreakThreshold = 3

	// StreakMultiplier scales the growth rate once the streak threshold is met
	StreakMultiplier = 1.5

	// NormalHeightFactor is the NORMAL height retention (30% penalty)
	NormalHeightFactor = 0.70

	// FailedHeightFactor is the FAILED height retention (60% penalty)
	FailedHeightFactor = 0.40

	// MinLaunchHeight is the lowest target height of any launch (px)
	MinLaunchHeight = 150.0

	// BaseLaunchVelocity is the launch velocity floor (px/s)
	BaseLaunchVelocity = 900.0

	// SoftCapVelocity is where non-PERFECT launches start being compressed (px/s)
	SoftCapVelocity = 4000.0

	// SoftCapFactor is the fraction of velocity kept above the soft cap
	SoftCapFactor = 0.5

	// HardCapVelocity is the absolute launch velocity ceiling (px/s)
	HardCapVelocity = 9000.0
)

// Landing damage
const (
	// SafeFallHeight is the fall height in meters below which landings never hurt
	SafeFallHeight = 100.0

	// InstantDeathHeight is the fall height in meters where NORMAL damage reaches full health
	InstantDeathHeight = 1000.0
)
