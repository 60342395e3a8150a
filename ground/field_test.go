package ground

import (
	"math"
	"testing"

	"github.com/lixenwraith/coilhop/config"
)

const dt = 1.0 / 60

// TestFieldColumnCount tests screen coverage plus margin
func TestFieldColumnCount(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewField(cfg)
	want := int(math.Ceil(cfg.World.ScreenWidth/cfg.Ground.BlockSize)) + cfg.Ground.ColumnMargin
	if f.Columns() != want {
		t.Errorf("columns = %d, want %d", f.Columns(), want)
	}
	if f.ColumnAt(-1e9) != 0 || f.ColumnAt(1e9) != f.Columns()-1 {
		t.Error("ColumnAt does not clamp to the chain")
	}
	if x := f.ColumnX(f.ColumnAt(100)); math.Abs(x-100) > cfg.Ground.BlockSize {
		t.Errorf("ColumnX/ColumnAt mismatch: %v", x)
	}
}

// TestFieldPressureDeforms tests that compression depresses the column under the player most
func TestFieldPressureDeforms(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewField(cfg)
	x := cfg.World.ScreenWidth / 2

	for i := 0; i < 30; i++ {
		f.Step(dt, cfg.Jump.TargetCompression, x)
	}

	c := f.ColumnAt(x)
	center := f.Offset(c)
	if center <= 0 {
		t.Fatalf("center offset = %v, want depression", center)
	}
	if f.Offset(c+5) >= center {
		t.Errorf("offset at +5 columns (%v) not below center (%v)", f.Offset(c+5), center)
	}
	if f.SurfaceOffsetAt(x) != center {
		t.Error("SurfaceOffsetAt does not use the nearest column")
	}
	if f.SurfaceY(x) != -center {
		t.Error("SurfaceY sign mismatch")
	}
}

// TestFieldClampBounds tests the asymmetric offset clamp under extreme input
func TestFieldClampBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewField(cfg)
	lo := -cfg.Ground.UpwardRatio * cfg.Ground.MaxOffset
	hi := cfg.Ground.MaxOffset

	for i := 0; i < 240; i++ {
		comp := 1e6
		if i >= 120 {
			comp = 0
		}
		f.Step(dt, comp, 300)
		for j := 0; j < f.Columns(); j++ {
			if o := f.Offset(j); o < lo-1e-9 || o > hi+1e-9 {
				t.Fatalf("tick %d column %d offset %v outside [%v,%v]", i, j, o, lo, hi)
			}
		}
	}
}

// TestFieldDecaysWithoutInput tests bounded relaxation with no sustained oscillation
func TestFieldDecaysWithoutInput(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewField(cfg)

	// Single pulse
	for i := 0; i < 10; i++ {
		f.Step(dt, cfg.Jump.TargetCompression, 200)
	}
	if f.MaxAbsOffset() < 1 {
		t.Fatalf("pulse too weak: %v", f.MaxAbsOffset())
	}

	elapsed := 0.0
	for f.MaxAbsOffset() >= 0.5 {
		f.Step(dt, 0, 200)
		elapsed += dt
		if elapsed > 10 {
			t.Fatalf("still deflected %v after %.1fs", f.MaxAbsOffset(), elapsed)
		}
	}

	// Remains at rest
	for i := 0; i < 600; i++ {
		f.Step(dt, 0, 200)
		if f.MaxAbsOffset() >= 0.5 {
			t.Fatalf("re-excited to %v at rest", f.MaxAbsOffset())
		}
	}
}

// TestFieldOverDamped tests that every spatial mode of the default tuning is over-damped
func TestFieldOverDamped(t *testing.T) {
	g := config.DefaultConfig().Ground
	// Highest mode has the largest effective stiffness K + 4T
	omegaSq := g.Stiffness + 4*g.Tension
	if g.Damping < 2*math.Sqrt(omegaSq) {
		t.Errorf("damping %v under critical %v for the stiffest mode", g.Damping, 2*math.Sqrt(omegaSq))
	}
}

// TestFieldNegativeCompressionClamped tests that negative compression applies no force
func TestFieldNegativeCompressionClamped(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewField(cfg)
	f.Step(dt, -50, 200)
	f.Step(dt, math.NaN(), 200)
	if f.MaxAbsOffset() != 0 {
		t.Errorf("invalid compression moved the field: %v", f.MaxAbsOffset())
	}
}

// TestRippleDecoupled tests that impacts only move the visual layer
func TestRippleDecoupled(t *testing.T) {
	cfg := config.DefaultConfig()
	f := NewField(cfg)
	x := 360.0

	f.OnLandingImpact(x, 3000)
	for i := 0; i < 5; i++ {
		f.Step(dt, 0, x)
	}

	if f.MaxAbsOffset() != 0 {
		t.Errorf("impact leaked into load-bearing offsets: %v", f.MaxAbsOffset())
	}
	if f.VisualOffsetAt(x) == f.SurfaceOffsetAt(x) {
		t.Error("visual offset unaffected by impact")
	}

	// Spreads to neighbors beyond the kick radius over time
	far := f.ColumnAt(x) + cfg.Ground.RippleRadius + 3
	for i := 0; i < 30; i++ {
		f.Step(dt, 0, x)
	}
	if f.Ripple().Offset(far) == 0 {
		t.Error("ripple did not propagate")
	}

	for i := 0; i < 600; i++ {
		f.Step(dt, 0, x)
	}
	if e := f.Ripple().Energy(); e > 0.5 {
		t.Errorf("ripple energy %v after 10s", e)
	}
}

// TestRippleIgnoresBadStrength tests that non-positive kicks are ignored
func TestRippleIgnoresBadStrength(t *testing.T) {
	r := NewRipple(config.DefaultConfig().Ground, 10)
	r.Kick(5, -10)
	r.Kick(5, math.Inf(1))
	r.Step(dt)
	if r.Energy() != 0 {
		t.Errorf("energy = %v", r.Energy())
	}
}
