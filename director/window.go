package director

import (
	"math"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/vmath"
)

// SpawnWindow is the ephemeral plan for one wave, computed once per qualifying launch
type SpawnWindow struct {
	Rating          core.Rating
	ApexM           float64
	RangeStartM     float64
	RangeEndM       float64
	TargetCount     int
	SpeedMultiplier float64
	CountMultiplier float64
	DropMultiplier  float64
}

// Qualifies reports whether a launch spawns a wave
func Qualifies(cfg config.DirectorConfig, apexM float64, rating core.Rating) bool {
	if rating != core.RatingPerfect && rating != core.RatingNormal {
		return false
	}
	return vmath.IsFinite(apexM) && apexM > cfg.MinApex
}

// BaseTargetCount is the wave size before the rating multiplier
func BaseTargetCount(cfg config.DirectorConfig, apexM float64) int {
	if apexM <= cfg.CountRefHeight {
		return cfg.BaseCount
	}
	n := int(math.Floor(float64(cfg.BaseCount) + math.Log2(apexM/cfg.CountRefHeight)*cfg.CountGrowthFactor))
	if n < cfg.BaseCount {
		n = cfg.BaseCount
	}
	if n > cfg.MaxCount {
		n = cfg.MaxCount
	}
	return n
}

// SpeedMultiplier grows linearly with apex up to the cap
func SpeedMultiplier(cfg config.DirectorConfig, apexM float64) float64 {
	if apexM < 0 {
		apexM = 0
	}
	m := 1 + (apexM/cfg.SpeedRefHeight)*cfg.SpeedGrowthFactor
	if m > cfg.MaxSpeedMultiplier {
		m = cfg.MaxSpeedMultiplier
	}
	return m
}

// BandEndFactor is the band top as a fraction of apex; taller jumps keep a larger safe zone
func BandEndFactor(cfg config.DirectorConfig, apexM float64) float64 {
	return cfg.RangeEndMin + (cfg.RangeEndBase-cfg.RangeEndMin)*math.Exp(-apexM/cfg.RangeEndTau)
}

// ComputeWindow builds the wave plan for a launch
func ComputeWindow(cfg config.DirectorConfig, apexM float64, rating core.Rating) SpawnWindow {
	if !vmath.IsFinite(apexM) || apexM < 0 {
		apexM = 0
	}
	mult := rating.CountMultiplier()
	count := int(math.Round(float64(BaseTargetCount(cfg, apexM)) * mult))
	if count < 1 {
		count = 1
	}

	return SpawnWindow{
		Rating:          rating,
		ApexM:           apexM,
		RangeStartM:     apexM * cfg.RangeStartFactor,
		RangeEndM:       apexM * BandEndFactor(cfg, apexM),
		TargetCount:     count,
		SpeedMultiplier: SpeedMultiplier(cfg, apexM),
		CountMultiplier: mult,
		DropMultiplier:  rating.DropMultiplier(),
	}
}
