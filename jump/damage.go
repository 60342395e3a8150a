package jump

import (
	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/vmath"
)

// LandingReport is sent to the health collaborator once per resolved cycle
type LandingReport struct {
	FallHeightM  float64 // Originating fall height (m)
	Rating       core.Rating
	HoldLockout  bool
	Settled      bool // Compression relaxed out without a release
	EverHadInput bool // Any hold during the fall or the charge
	Streak       int  // Streak after resolution
}

// Damage is the health outcome of one landing
type Damage struct {
	Fraction     float64 // Share of max health lost [0,1]
	InstantDeath bool
}

// AssessLanding applies the landing damage policy
func AssessLanding(cfg config.DamageConfig, r LandingReport) Damage {
	if r.Rating == core.RatingPerfect {
		return Damage{}
	}

	overSafe := r.FallHeightM > cfg.SafeFallHeight
	if overSafe && r.HoldLockout {
		return Damage{Fraction: 1, InstantDeath: true}
	}
	if overSafe && r.Settled && !r.EverHadInput {
		return Damage{Fraction: 1, InstantDeath: true}
	}

	if r.Rating == core.RatingNormal && overSafe {
		span := cfg.InstantDeathHeight - cfg.SafeFallHeight
		f := vmath.Clamp01((r.FallHeightM - cfg.SafeFallHeight) / (span + vmath.Epsilon))
		return Damage{Fraction: f, InstantDeath: f >= 1}
	}

	// FAILED pays through the launch height penalty
	return Damage{}
}
