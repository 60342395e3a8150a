// Package config holds the immutable tuning value threaded into every simulation constructor
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/coilhop/parameter"
	"github.com/lixenwraith/coilhop/vmath"
)

// Config is the complete tuning table; pass by value
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Jump       JumpConfig       `yaml:"jump"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Launch     LaunchConfig     `yaml:"launch"`
	Damage     DamageConfig     `yaml:"damage"`
	Ground     GroundConfig     `yaml:"ground"`
	Director   DirectorConfig   `yaml:"director"`
	Monster    MonsterConfig    `yaml:"monster"`
	Combat     CombatConfig     `yaml:"combat"`
	Clock      ClockConfig      `yaml:"clock"`
}

type WorldConfig struct {
	PixelsPerMeter       float64 `yaml:"pixelsPerMeter"`
	ScreenWidth          float64 `yaml:"screenWidth"`
	LaneCount            int     `yaml:"laneCount"`
	CenterLaneNudge      float64 `yaml:"centerLaneNudge"`
	LaneMargin           float64 `yaml:"laneMargin"`
	Gravity              float64 `yaml:"gravity"`
	FastFallGravityScale float64 `yaml:"fastFallGravityScale"`
	PlayerLaneSpeed      float64 `yaml:"playerLaneSpeed"`
	PlayerRadius         float64 `yaml:"playerRadius"`
}

type JumpConfig struct {
	TargetCompression float64 `yaml:"targetCompression"`
	YellowZoneRatio   float64 `yaml:"yellowZoneRatio"`
	PeakRatio         float64 `yaml:"peakRatio"`
	SettleEpsilon     float64 `yaml:"settleEpsilon"`
	RelaxRate         float64 `yaml:"relaxRate"`
	OverHoldAccelTime float64 `yaml:"overHoldAccelTime"`
	EfficiencyDecay   float64 `yaml:"efficiencyDecay"`
	DeadEfficiency    float64 `yaml:"deadEfficiency"`
	IdleLaunchHeight  float64 `yaml:"idleLaunchHeight"`
}

type DifficultyConfig struct {
	HeightRef              float64 `yaml:"heightRef"`
	CompressTimeBase       float64 `yaml:"compressTimeBase"`
	CompressTimeLogScale   float64 `yaml:"compressTimeLogScale"`
	YellowDurationBase     float64 `yaml:"yellowDurationBase"`
	YellowDurationMin      float64 `yaml:"yellowDurationMin"`
	YellowDurationLogScale float64 `yaml:"yellowDurationLogScale"`
	SweetGraceBase         float64 `yaml:"sweetGraceBase"`
	SweetGraceMin          float64 `yaml:"sweetGraceMin"`
	FailHoldBase           float64 `yaml:"failHoldBase"`
	FailHoldMin            float64 `yaml:"failHoldMin"`
	LogScale               float64 `yaml:"logScale"`
	Max                    float64 `yaml:"max"`
	OverHoldGainBase       float64 `yaml:"overHoldGainBase"`
	OverHoldGainSlope      float64 `yaml:"overHoldGainSlope"`
}

type LaunchConfig struct {
	PerfectNoPressFactor float64 `yaml:"perfectNoPressFactor"`
	GrowthBase           float64 `yaml:"growthBase"`
	GrowthLogScale       float64 `yaml:"growthLogScale"`
	GrowthLogRef         float64 `yaml:"growthLogRef"`
	StreakThreshold      int     `yaml:"streakThreshold"`
	StreakMultiplier     float64 `yaml:"streakMultiplier"`
	NormalHeightFactor   float64 `yaml:"normalHeightFactor"`
	FailedHeightFactor   float64 `yaml:"failedHeightFactor"`
	MinLaunchHeight      float64 `yaml:"minLaunchHeight"`
	BaseLaunchVelocity   float64 `yaml:"baseLaunchVelocity"`
	SoftCapVelocity      float64 `yaml:"softCapVelocity"`
	SoftCapFactor        float64 `yaml:"softCapFactor"`
	HardCapVelocity      float64 `yaml:"hardCapVelocity"`
}

type DamageConfig struct {
	SafeFallHeight     float64 `yaml:"safeFallHeight"`
	InstantDeathHeight float64 `yaml:"instantDeathHeight"`
}

type GroundConfig struct {
	BlockSize          float64 `yaml:"blockSize"`
	ColumnMargin       int     `yaml:"columnMargin"`
	Tension            float64 `yaml:"tension"`
	Stiffness          float64 `yaml:"stiffness"`
	Damping            float64 `yaml:"damping"`
	MaxOffset          float64 `yaml:"maxOffset"`
	UpwardRatio        float64 `yaml:"upwardRatio"`
	PressureScale      float64 `yaml:"pressureScale"`
	ForceRadius        int     `yaml:"forceRadius"`
	ForceSigma         float64 `yaml:"forceSigma"`
	SubSteps           int     `yaml:"subSteps"`
	RippleFrequency    float64 `yaml:"rippleFrequency"`
	RippleDampingRatio float64 `yaml:"rippleDampingRatio"`
	RippleCoupling     float64 `yaml:"rippleCoupling"`
	RippleRadius       int     `yaml:"rippleRadius"`
	RippleImpactScale  float64 `yaml:"rippleImpactScale"`
}

// CurvePoint is one control point of a height curve
type CurvePoint struct {
	Height float64 `yaml:"height"`
	Chance float64 `yaml:"chance"`
}

type DirectorConfig struct {
	MinApex            float64      `yaml:"minApex"`
	RangeStartFactor   float64      `yaml:"rangeStartFactor"`
	RangeEndBase       float64      `yaml:"rangeEndBase"`
	RangeEndMin        float64      `yaml:"rangeEndMin"`
	RangeEndTau        float64      `yaml:"rangeEndTau"`
	BaseCount          int          `yaml:"baseCount"`
	CountRefHeight     float64      `yaml:"countRefHeight"`
	CountGrowthFactor  float64      `yaml:"countGrowthFactor"`
	MaxCount           int          `yaml:"maxCount"`
	SpeedRefHeight     float64      `yaml:"speedRefHeight"`
	SpeedGrowthFactor  float64      `yaml:"speedGrowthFactor"`
	MaxSpeedMultiplier float64      `yaml:"maxSpeedMultiplier"`
	TypeWeightMin      float64      `yaml:"typeWeightMin"`
	BaseSpacing        float64      `yaml:"baseSpacing"`
	SpacingBonusRef    float64      `yaml:"spacingBonusRef"`
	SpacingMaxBonus    float64      `yaml:"spacingMaxBonus"`
	SameSideBonus      float64      `yaml:"sameSideBonus"`
	DiagonalBonus      float64      `yaml:"diagonalBonus"`
	SpawnJitter        float64      `yaml:"spawnJitter"`
	AlternateChance    []CurvePoint `yaml:"alternateChance"`
}

type MonsterConfig struct {
	BaseSpeed          float64 `yaml:"baseSpeed"`
	TurnMin            float64 `yaml:"turnMin"`
	TurnMax            float64 `yaml:"turnMax"`
	BodyRadius         float64 `yaml:"bodyRadius"`
	ChaseRadius        float64 `yaml:"chaseRadius"`
	ChaseTriggerMargin float64 `yaml:"chaseTriggerMargin"`
	ChaseBaseSpeed     float64 `yaml:"chaseBaseSpeed"`
	ChaseAccel         float64 `yaml:"chaseAccel"`
	ChaseMaxSpeed      float64 `yaml:"chaseMaxSpeed"`
	SpawnGrace         float64 `yaml:"spawnGrace"`
	DebuffInterval     float64 `yaml:"debuffInterval"`
}

type CombatConfig struct {
	AttackImpactDelay       float64 `yaml:"attackImpactDelay"`
	AttackCooldown          float64 `yaml:"attackCooldown"`
	AttackReach             float64 `yaml:"attackReach"`
	AttackBackTolerance     float64 `yaml:"attackBackTolerance"`
	AttackVerticalTolerance float64 `yaml:"attackVerticalTolerance"`
	AttackSwingGrace        float64 `yaml:"attackSwingGrace"`
	KillImmunity            float64 `yaml:"killImmunity"`
	HitGrace                float64 `yaml:"hitGrace"`
	PoisonMaxStacks         int     `yaml:"poisonMaxStacks"`
	PoisonDuration          float64 `yaml:"poisonDuration"`
	CloudVelocityDamping    float64 `yaml:"cloudVelocityDamping"`
	BulletTimeScale         float64 `yaml:"bulletTimeScale"`
	BulletTimeAutoApex      float64 `yaml:"bulletTimeAutoApex"`
	BulletTimeMinEnergy     float64 `yaml:"bulletTimeMinEnergy"`
	BulletTimeDrainRate     float64 `yaml:"bulletTimeDrainRate"`
	BulletTimeKillRefund    float64 `yaml:"bulletTimeKillRefund"`
}

type ClockConfig struct {
	FixedStep        time.Duration `yaml:"fixedStep"`
	MaxStepsPerFrame int           `yaml:"maxStepsPerFrame"`
}

// DefaultConfig builds the documented defaults from the parameter package
func DefaultConfig() Config {
	alt := make([]CurvePoint, 0, len(parameter.AlternateChanceHeights))
	for i, h := range parameter.AlternateChanceHeights {
		if i < len(parameter.AlternateChanceValues) {
			alt = append(alt, CurvePoint{Height: h, Chance: parameter.AlternateChanceValues[i]})
		}
	}

	return Config{
		World: WorldConfig{
			PixelsPerMeter:       parameter.PixelsPerMeter,
			ScreenWidth:          parameter.ScreenWidth,
			LaneCount:            parameter.LaneCount,
			CenterLaneNudge:      parameter.CenterLaneNudge,
			LaneMargin:           parameter.LaneMargin,
			Gravity:              parameter.Gravity,
			FastFallGravityScale: parameter.FastFallGravityScale,
			PlayerLaneSpeed:      parameter.PlayerLaneSpeed,
			PlayerRadius:         parameter.PlayerRadius,
		},
		Jump: JumpConfig{
			TargetCompression: parameter.TargetCompression,
			YellowZoneRatio:   parameter.YellowZoneRatio,
			PeakRatio:         parameter.PeakRatio,
			SettleEpsilon:     parameter.SettleEpsilon,
			RelaxRate:         parameter.RelaxRate,
			OverHoldAccelTime: parameter.OverHoldAccelTime,
			EfficiencyDecay:   parameter.EfficiencyDecay,
			DeadEfficiency:    parameter.DeadEfficiency,
			IdleLaunchHeight:  parameter.IdleLaunchHeight,
		},
		Difficulty: DifficultyConfig{
			HeightRef:              parameter.DifficultyHeightRef,
			CompressTimeBase:       parameter.CompressTimeBase,
			CompressTimeLogScale:   parameter.CompressTimeLogScale,
			YellowDurationBase:     parameter.YellowDurationBase,
			YellowDurationMin:      parameter.YellowDurationMin,
			YellowDurationLogScale: parameter.YellowDurationLogScale,
			SweetGraceBase:         parameter.SweetGraceBase,
			SweetGraceMin:          parameter.SweetGraceMin,
			FailHoldBase:           parameter.FailHoldBase,
			FailHoldMin:            parameter.FailHoldMin,
			LogScale:               parameter.DifficultyLogScale,
			Max:                    parameter.DifficultyMax,
			OverHoldGainBase:       parameter.OverHoldGainBase,
			OverHoldGainSlope:      parameter.OverHoldGainSlope,
		},
		Launch: LaunchConfig{
			PerfectNoPressFactor: parameter.PerfectNoPressFactor,
			GrowthBase:           parameter.GrowthBase,
			GrowthLogScale:       parameter.GrowthLogScale,
			GrowthLogRef:         parameter.GrowthLogRef,
			StreakThreshold:      parameter.StreakThreshold,
			StreakMultiplier:     parameter.StreakMultiplier,
			NormalHeightFactor:   parameter.NormalHeightFactor,
			FailedHeightFactor:   parameter.FailedHeightFactor,
			MinLaunchHeight:      parameter.MinLaunchHeight,
			BaseLaunchVelocity:   parameter.BaseLaunchVelocity,
			SoftCapVelocity:      parameter.SoftCapVelocity,
			SoftCapFactor:        parameter.SoftCapFactor,
			HardCapVelocity:      parameter.HardCapVelocity,
		},
		Damage: DamageConfig{
			SafeFallHeight:     parameter.SafeFallHeight,
			InstantDeathHeight: parameter.InstantDeathHeight,
		},
		Ground: GroundConfig{
			BlockSize:          parameter.GroundBlockSize,
			ColumnMargin:       parameter.GroundColumnMargin,
			Tension:            parameter.GroundTension,
			Stiffness:          parameter.GroundStiffness,
			Damping:            parameter.GroundDamping,
			MaxOffset:          parameter.GroundMaxOffset,
			UpwardRatio:        parameter.GroundUpwardRatio,
			PressureScale:      parameter.GroundPressureScale,
			ForceRadius:        parameter.GroundForceRadius,
			ForceSigma:         parameter.GroundForceSigma,
			SubSteps:           parameter.GroundSubSteps,
			RippleFrequency:    parameter.RippleFrequency,
			RippleDampingRatio: parameter.RippleDampingRatio,
			RippleCoupling:     parameter.RippleCoupling,
			RippleRadius:       parameter.RippleRadius,
			RippleImpactScale:  parameter.RippleImpactScale,
		},
		Director: DirectorConfig{
			MinApex:            parameter.DirectorMinApex,
			RangeStartFactor:   parameter.RangeStartFactor,
			RangeEndBase:       parameter.RangeEndBase,
			RangeEndMin:        parameter.RangeEndMin,
			RangeEndTau:        parameter.RangeEndTau,
			BaseCount:          parameter.BaseCount,
			CountRefHeight:     parameter.CountRefHeight,
			CountGrowthFactor:  parameter.CountGrowthFactor,
			MaxCount:           parameter.MaxCount,
			SpeedRefHeight:     parameter.SpeedRefHeight,
			SpeedGrowthFactor:  parameter.SpeedGrowthFactor,
			MaxSpeedMultiplier: parameter.MaxSpeedMultiplier,
			TypeWeightMin:      parameter.TypeWeightMin,
			BaseSpacing:        parameter.BaseSpacing,
			SpacingBonusRef:    parameter.SpacingBonusRef,
			SpacingMaxBonus:    parameter.SpacingMaxBonus,
			SameSideBonus:      parameter.SameSideBonus,
			DiagonalBonus:      parameter.DiagonalBonus,
			SpawnJitter:        parameter.SpawnJitter,
			AlternateChance:    alt,
		},
		Monster: MonsterConfig{
			BaseSpeed:          parameter.MonsterBaseSpeed,
			TurnMin:            parameter.MonsterTurnMin,
			TurnMax:            parameter.MonsterTurnMax,
			BodyRadius:         parameter.MonsterBodyRadius,
			ChaseRadius:        parameter.MonsterChaseRadius,
			ChaseTriggerMargin: parameter.ChaseTriggerMargin,
			ChaseBaseSpeed:     parameter.ChaseBaseSpeed,
			ChaseAccel:         parameter.ChaseAccel,
			ChaseMaxSpeed:      parameter.ChaseMaxSpeed,
			SpawnGrace:         parameter.MonsterSpawnGrace,
			DebuffInterval:     parameter.MonsterDebuffInterval,
		},
		Combat: CombatConfig{
			AttackImpactDelay:       parameter.AttackImpactDelay,
			AttackCooldown:          parameter.AttackCooldown,
			AttackReach:             parameter.AttackReach,
			AttackBackTolerance:     parameter.AttackBackTolerance,
			AttackVerticalTolerance: parameter.AttackVerticalTolerance,
			AttackSwingGrace:        parameter.AttackSwingGrace,
			KillImmunity:            parameter.KillImmunity,
			HitGrace:                parameter.HitGrace,
			PoisonMaxStacks:         parameter.PoisonMaxStacks,
			PoisonDuration:          parameter.PoisonDuration,
			CloudVelocityDamping:    parameter.CloudVelocityDamping,
			BulletTimeScale:         parameter.BulletTimeScale,
			BulletTimeAutoApex:      parameter.BulletTimeAutoApex,
			BulletTimeMinEnergy:     parameter.BulletTimeMinEnergy,
			BulletTimeDrainRate:     parameter.BulletTimeDrainRate,
			BulletTimeKillRefund:    parameter.BulletTimeKillRefund,
		},
		Clock: ClockConfig{
			FixedStep:        parameter.FixedStep,
			MaxStepsPerFrame: parameter.MaxStepsPerFrame,
		},
	}
}

// Parse overlays a YAML document onto the defaults
// Missing keys keep their defaults and unknown keys are ignored
// On a decode error the defaults are returned with the wrapped error
func Parse(blob []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(blob, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses a YAML tuning file
// Any failure yields the defaults plus an error the caller may log
func Load(path string) (Config, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(blob)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML, used by the sandbox to dump effective tuning
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// AlternateChanceAt returns the chance at height h (m) that a new monster avoids the previous lane
func (d DirectorConfig) AlternateChanceAt(h float64) float64 {
	xs := make([]float64, len(d.AlternateChance))
	ys := make([]float64, len(d.AlternateChance))
	for i, p := range d.AlternateChance {
		xs[i] = p.Height
		ys[i] = p.Chance
	}
	return vmath.Clamp01(vmath.PiecewiseLinear(xs, ys, h))
}

// PixelsToMeters converts world px to meters
func (w WorldConfig) PixelsToMeters(px float64) float64 {
	return px / w.PixelsPerMeter
}

// MetersToPixels converts meters to world px
func (w WorldConfig) MetersToPixels(m float64) float64 {
	return m * w.PixelsPerMeter
}
