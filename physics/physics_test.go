package physics

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestIntegrateBallistic tests that a launch at sqrt(2gh) peaks at h
func TestIntegrateBallistic(t *testing.T) {
	const g = 2000.0
	const h = 400.0

	k := &Kinetic{VY: VelocityForHeight(g, h), AY: -g}
	apex := 0.0
	dt := 1.0 / 600
	for i := 0; i < 10000 && (k.VY > 0 || k.Y > 0); i++ {
		Integrate(k, dt)
		if k.Y > apex {
			apex = k.Y
		}
	}
	if !approxEqual(apex, h, h*0.01) {
		t.Errorf("apex = %.2f, want ~%.2f", apex, h)
	}
}

// TestHeightVelocityInverse tests the ballistic helpers against each other
func TestHeightVelocityInverse(t *testing.T) {
	tests := []float64{1, 150, 500, 12000}
	for _, h := range tests {
		v := VelocityForHeight(2000, h)
		if got := HeightForVelocity(2000, v); !approxEqual(got, h, 1e-6) {
			t.Errorf("HeightForVelocity(VelocityForHeight(%v)) = %v", h, got)
		}
	}
	if VelocityForHeight(2000, -5) != 0 {
		t.Error("negative height should yield zero velocity")
	}
}

// TestReflectBoundsX tests lane boundary bounce
func TestReflectBoundsX(t *testing.T) {
	tests := []struct {
		name    string
		x, vx   float64
		reflect bool
		wantX   float64
		wantVX  float64
	}{
		{"inside", 50, 10, false, 50, 10},
		{"past left", -3, -10, true, 0, 10},
		{"past right", 105, 10, true, 100, -10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := &Kinetic{X: tc.x, VX: tc.vx}
			if got := ReflectBoundsX(k, 0, 100); got != tc.reflect {
				t.Errorf("reflect = %v, want %v", got, tc.reflect)
			}
			if k.X != tc.wantX || k.VX != tc.wantVX {
				t.Errorf("got x=%v vx=%v, want x=%v vx=%v", k.X, k.VX, tc.wantX, tc.wantVX)
			}
		})
	}
}

// TestChaseSpeedAccelerates tests monotone pursuit speed up to the cap
func TestChaseSpeedAccelerates(t *testing.T) {
	p := &HomingProfile{BaseSpeed: 100, Accel: 200, MaxSpeed: 500}
	prev := 0.0
	for e := 0.0; e < 5; e += 0.25 {
		s := p.ChaseSpeed(e, 1)
		if s < prev {
			t.Fatalf("chase speed decreased at %.2fs: %v < %v", e, s, prev)
		}
		prev = s
	}
	if prev != 500 {
		t.Errorf("chase speed cap = %v, want 500", prev)
	}
	if got := p.ChaseSpeed(10, 2); got != 1000 {
		t.Errorf("multiplier not applied after cap: %v", got)
	}
}

// TestApplyHomingNoOvershoot tests that pursuit lands on the target
func TestApplyHomingNoOvershoot(t *testing.T) {
	p := &HomingProfile{BaseSpeed: 100, Accel: 0, MaxSpeed: 100}
	k := &Kinetic{X: 0, Y: 0}

	arrived := false
	for i := 0; i < 200 && !arrived; i++ {
		arrived = ApplyHoming(k, 30, 40, p, 0, 1, 0.1)
	}
	if !arrived {
		t.Fatal("did not reach target")
	}
	if !approxEqual(k.X, 30, 1e-9) || !approxEqual(k.Y, 40, 1e-9) {
		t.Errorf("final position (%v,%v), want (30,40)", k.X, k.Y)
	}
}
