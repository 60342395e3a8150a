package jump

import (
	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/vmath"
)

// Params are the per-cycle timing parameters derived from one fall height
// Immutable once computed; a new landing computes a new value
type Params struct {
	CompressTime   float64 // Time constant of the approach to target compression (s)
	YellowDuration float64 // Max time inside the yellow zone before auto-peak (s)
	SweetGrace     float64 // Post-peak window still rated PERFECT (s)
	FailHoldTime   float64 // Post-peak hold that latches lockout (s)
	OverHoldGain   float64 // Extra relax acceleration past the sweet grace
	Difficulty     float64 // >= 1, monotone in fall height
}

// ComputeDifficulty maps the fall height in meters to the cycle timing parameters
// Taller falls get more time to reach peak but a narrower sweet window
func ComputeDifficulty(cfg config.DifficultyConfig, apexM float64) Params {
	if !vmath.IsFinite(apexM) || apexM < 0 {
		apexM = 0
	}
	scale := vmath.Log2Scale(apexM, cfg.HeightRef)

	difficulty := 1 + cfg.LogScale*scale
	if difficulty > cfg.Max {
		difficulty = cfg.Max
	}
	if difficulty < 1 {
		difficulty = 1
	}

	yellow := cfg.YellowDurationBase / (1 + cfg.YellowDurationLogScale*scale)
	if yellow < cfg.YellowDurationMin {
		yellow = cfg.YellowDurationMin
	}

	return Params{
		CompressTime:   cfg.CompressTimeBase * (1 + cfg.CompressTimeLogScale*scale),
		YellowDuration: yellow,
		SweetGrace:     vmath.Clamp(cfg.SweetGraceBase/difficulty, cfg.SweetGraceMin, cfg.SweetGraceBase),
		FailHoldTime:   vmath.Clamp(cfg.FailHoldBase/difficulty, cfg.FailHoldMin, cfg.FailHoldBase),
		OverHoldGain:   cfg.OverHoldGainBase + cfg.OverHoldGainSlope*(difficulty-1),
		Difficulty:     difficulty,
	}
}
