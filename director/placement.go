package director

import (
	"math"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/vmath"
)

// Placement is one planned monster slot
type Placement struct {
	AltitudeM float64
	Lane      int
}

// BaseSpacing is the vertical gap in meters between consecutive monsters before lane bonuses,
// shrunk when needed so the whole wave fits inside the band
func BaseSpacing(cfg config.DirectorConfig, w SpawnWindow) float64 {
	bonus := math.Min(w.ApexM/cfg.SpacingBonusRef, cfg.SpacingMaxBonus)
	if bonus < 0 {
		bonus = 0
	}
	base := cfg.BaseSpacing * (1 + bonus)

	if w.TargetCount > 0 {
		fit := (w.RangeEndM - w.RangeStartM) / (float64(w.TargetCount) * (1 + cfg.SameSideBonus))
		if fit < base {
			base = fit
		}
	}
	if base < 0 {
		base = 0
	}
	return base
}

// PlanPlacements walks upward from the band start, choosing each lane against the previous one
// Same-lane repeats and full-width jumps widen the gap; adjacent moves use the base gap
func PlanPlacements(cfg config.DirectorConfig, lanes Lanes, w SpawnWindow, rng vmath.Rand) []Placement {
	if w.TargetCount <= 0 || lanes.Count() == 0 {
		return nil
	}
	base := BaseSpacing(cfg, w)
	out := make([]Placement, 0, w.TargetCount)

	h := w.RangeStartM
	prev := -1
	for k := 0; k < w.TargetCount; k++ {
		lane := rng.Intn(lanes.Count())
		if k > 0 {
			lane = pickLane(cfg, lanes.Count(), prev, h, rng)
			h += gapFor(cfg, lanes.Count(), prev, lane, base)
			if h > w.RangeEndM {
				break
			}
		}

		alt := h
		if cfg.SpawnJitter > 0 {
			alt += vmath.RandRange(rng, -cfg.SpawnJitter, cfg.SpawnJitter)
		}
		alt = vmath.Clamp(alt, w.RangeStartM, w.RangeEndM)

		out = append(out, Placement{AltitudeM: alt, Lane: lane})
		prev = lane
	}
	return out
}

// pickLane leaves the previous lane with the height-dependent alternate chance
func pickLane(cfg config.DirectorConfig, count, prev int, h float64, rng vmath.Rand) int {
	if count < 2 {
		return 0
	}
	if rng.Float64() >= cfg.AlternateChanceAt(h) {
		return prev
	}
	lane := rng.Intn(count - 1)
	if lane >= prev {
		lane++
	}
	return lane
}

func gapFor(cfg config.DirectorConfig, count, prev, lane int, base float64) float64 {
	d := lane - prev
	if d < 0 {
		d = -d
	}
	switch {
	case d == 0:
		return base * (1 + cfg.SameSideBonus)
	case count > 2 && d == count-1:
		return base * (1 + cfg.DiagonalBonus)
	default:
		return base
	}
}
