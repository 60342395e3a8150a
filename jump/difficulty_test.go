package jump

import (
	"math"
	"testing"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
)

// TestDifficultyAtGround tests the base values for a zero-height fall
func TestDifficultyAtGround(t *testing.T) {
	d := config.DefaultConfig().Difficulty
	p := ComputeDifficulty(d, 0)

	if p.Difficulty != 1 {
		t.Errorf("difficulty = %v, want 1", p.Difficulty)
	}
	if p.CompressTime != d.CompressTimeBase {
		t.Errorf("compressTime = %v, want %v", p.CompressTime, d.CompressTimeBase)
	}
	if p.YellowDuration != d.YellowDurationBase {
		t.Errorf("yellowDuration = %v, want %v", p.YellowDuration, d.YellowDurationBase)
	}
	if p.SweetGrace != d.SweetGraceBase || p.FailHoldTime != d.FailHoldBase {
		t.Errorf("grace/failHold = %v/%v", p.SweetGrace, p.FailHoldTime)
	}
	if p.OverHoldGain != d.OverHoldGainBase {
		t.Errorf("overHoldGain = %v, want %v", p.OverHoldGain, d.OverHoldGainBase)
	}
}

// TestDifficultyCurvesMonotone tests the direction and bounds of every curve over fall height
func TestDifficultyCurvesMonotone(t *testing.T) {
	d := config.DefaultConfig().Difficulty
	prev := ComputeDifficulty(d, 0)

	for h := 10.0; h <= 5000; h += 10 {
		p := ComputeDifficulty(d, h)

		if p.CompressTime < prev.CompressTime {
			t.Fatalf("compressTime decreased at %vm", h)
		}
		if p.YellowDuration > prev.YellowDuration {
			t.Fatalf("yellowDuration increased at %vm", h)
		}
		if p.Difficulty < prev.Difficulty {
			t.Fatalf("difficulty decreased at %vm", h)
		}
		if p.OverHoldGain < prev.OverHoldGain {
			t.Fatalf("overHoldGain decreased at %vm", h)
		}
		if p.YellowDuration < d.YellowDurationMin {
			t.Fatalf("yellowDuration %v under min at %vm", p.YellowDuration, h)
		}
		if p.Difficulty < 1 || p.Difficulty > d.Max {
			t.Fatalf("difficulty %v out of [1,%v] at %vm", p.Difficulty, d.Max, h)
		}
		if p.SweetGrace < d.SweetGraceMin || p.SweetGrace > d.SweetGraceBase {
			t.Fatalf("sweetGrace %v out of bounds at %vm", p.SweetGrace, h)
		}
		if p.FailHoldTime < d.FailHoldMin || p.FailHoldTime > d.FailHoldBase {
			t.Fatalf("failHold %v out of bounds at %vm", p.FailHoldTime, h)
		}
		prev = p
	}
}

// TestDifficultyFormula tests one point against the closed form
func TestDifficultyFormula(t *testing.T) {
	d := config.DefaultConfig().Difficulty
	const apex = 150.0 // log2(1 + 150/50) = 2

	p := ComputeDifficulty(d, apex)
	scale := math.Log2(1 + apex/d.HeightRef)

	if !approxEqual(p.CompressTime, d.CompressTimeBase*(1+d.CompressTimeLogScale*scale), 1e-6) {
		t.Errorf("compressTime = %v", p.CompressTime)
	}
	wantDiff := 1 + d.LogScale*scale
	if !approxEqual(p.Difficulty, wantDiff, 1e-6) {
		t.Errorf("difficulty = %v, want %v", p.Difficulty, wantDiff)
	}
	if !approxEqual(p.OverHoldGain, d.OverHoldGainBase+d.OverHoldGainSlope*(wantDiff-1), 1e-6) {
		t.Errorf("overHoldGain = %v", p.OverHoldGain)
	}
}

// TestDifficultyDegenerateInput tests negative and non-finite heights
func TestDifficultyDegenerateInput(t *testing.T) {
	d := config.DefaultConfig().Difficulty
	base := ComputeDifficulty(d, 0)
	for _, h := range []float64{-100, math.NaN(), math.Inf(-1)} {
		if got := ComputeDifficulty(d, h); got != base {
			t.Errorf("ComputeDifficulty(%v) = %+v, want ground values", h, got)
		}
	}
}

// TestAssessLanding tests the landing damage policy
func TestAssessLanding(t *testing.T) {
	cfg := config.DefaultConfig().Damage

	tests := []struct {
		name string
		r    LandingReport
		want Damage
	}{
		{"perfect high never damages", LandingReport{FallHeightM: 900, Rating: core.RatingPerfect}, Damage{}},
		{"perfect with lockout flag", LandingReport{FallHeightM: 900, Rating: core.RatingPerfect, HoldLockout: true}, Damage{}},
		{"lockout over safe", LandingReport{FallHeightM: 150, Rating: core.RatingFailed, HoldLockout: true}, Damage{Fraction: 1, InstantDeath: true}},
		{"lockout under safe", LandingReport{FallHeightM: 80, Rating: core.RatingFailed, HoldLockout: true}, Damage{}},
		{"idle settle over safe", LandingReport{FallHeightM: 150, Rating: core.RatingFailed, Settled: true}, Damage{Fraction: 1, InstantDeath: true}},
		{"settle with input", LandingReport{FallHeightM: 150, Rating: core.RatingFailed, Settled: true, EverHadInput: true}, Damage{}},
		{"normal under safe", LandingReport{FallHeightM: 99, Rating: core.RatingNormal}, Damage{}},
		{"failed release over safe", LandingReport{FallHeightM: 500, Rating: core.RatingFailed, EverHadInput: true}, Damage{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AssessLanding(cfg, tc.r); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

// TestAssessLandingNormalLinear tests the linear NORMAL damage ramp
func TestAssessLandingNormalLinear(t *testing.T) {
	cfg := config.DefaultConfig().Damage
	mid := (cfg.SafeFallHeight + cfg.InstantDeathHeight) / 2

	d := AssessLanding(cfg, LandingReport{FallHeightM: mid, Rating: core.RatingNormal})
	if !approxEqual(d.Fraction, 0.5, 1e-6) || d.InstantDeath {
		t.Errorf("mid damage = %+v, want 0.5", d)
	}

	top := AssessLanding(cfg, LandingReport{FallHeightM: cfg.InstantDeathHeight * 2, Rating: core.RatingNormal})
	if top.Fraction != 1 || !top.InstantDeath {
		t.Errorf("above instant-death height = %+v", top)
	}
}
