package jump

import (
	"math"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/physics"
	"github.com/lixenwraith/coilhop/vmath"
)

// LaunchInput is the outcome of one release
type LaunchInput struct {
	Rating         core.Rating
	LastApexHeight float64 // Height of the fall just completed (px)
	PressRatio     float64 // Share of that fall covered while holding [0,1]
	Streak         int     // Consecutive PERFECTs before this release
}

// LaunchResult is the resolved launch
type LaunchResult struct {
	Rating        core.Rating
	TargetHeight  float64 // Height from the rating formula after the launch floor (px)
	Velocity      float64 // Launch speed after floor and caps (px/s)
	ApexHeight    float64 // Height the final velocity actually reaches (px)
	Streak        int     // Consecutive PERFECTs including this release
	StreakApplied bool
}

// PressRatio returns fast/total clamped to [0,1]
func PressRatio(fast, total float64) float64 {
	if total <= 0 || fast <= 0 {
		return 0
	}
	return vmath.Clamp01(fast / (total + vmath.Epsilon))
}

// Growth returns the PERFECT growth rate for a given fall height
func Growth(cfg config.LaunchConfig, last float64) float64 {
	if last < 0 {
		last = 0
	}
	return cfg.GrowthBase + cfg.GrowthLogScale*math.Log10(1+last/cfg.GrowthLogRef)
}

// Launch converts a release into the next launch velocity and streak
func Launch(cfg config.LaunchConfig, gravity float64, in LaunchInput) LaunchResult {
	last := in.LastApexHeight
	if !vmath.IsFinite(last) || last < 0 {
		last = 0
	}
	press := vmath.Clamp01(in.PressRatio)
	if !vmath.IsFinite(press) {
		press = 0
	}

	res := LaunchResult{Rating: in.Rating}

	var target float64
	switch in.Rating {
	case core.RatingPerfect:
		res.Streak = in.Streak + 1
		streakMult := 1.0
		if res.Streak >= cfg.StreakThreshold {
			streakMult = cfg.StreakMultiplier
			res.StreakApplied = true
		}
		growth := Growth(cfg, last)
		target = last * vmath.Lerp(cfg.PerfectNoPressFactor, 1+growth*streakMult, press)
	case core.RatingNormal:
		target = last * cfg.NormalHeightFactor
	default:
		target = last * cfg.FailedHeightFactor
	}

	if target < cfg.MinLaunchHeight {
		target = cfg.MinLaunchHeight
	}
	res.TargetHeight = target

	v := physics.VelocityForHeight(gravity, target)
	if v < cfg.BaseLaunchVelocity {
		v = cfg.BaseLaunchVelocity
	}
	if in.Rating != core.RatingPerfect && v > cfg.SoftCapVelocity {
		v = cfg.SoftCapVelocity + (v-cfg.SoftCapVelocity)*cfg.SoftCapFactor
	}
	if v > cfg.HardCapVelocity {
		v = cfg.HardCapVelocity
	}

	res.Velocity = v
	res.ApexHeight = physics.HeightForVelocity(gravity, v)
	return res
}
