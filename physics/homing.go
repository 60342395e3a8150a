package physics

import (
	"math"

	"github.com/lixenwraith/coilhop/vmath"
)

// HomingProfile defines pursuit behavior parameters
type HomingProfile struct {
	BaseSpeed float64 // Pursuit speed at chase start (px/s)
	Accel     float64 // Pursuit speed gain per second of chase (px/s²)
	MaxSpeed  float64 // Pursuit speed ceiling before the multiplier (px/s)
}

// ChaseSpeed returns the pursuit speed after elapsed seconds of chasing
// speedMultiplier scales the whole curve (per-wave difficulty)
func (p *HomingProfile) ChaseSpeed(elapsed, speedMultiplier float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	speed := p.BaseSpeed + p.Accel*elapsed
	if p.MaxSpeed > 0 && speed > p.MaxSpeed {
		speed = p.MaxSpeed
	}
	return speed * speedMultiplier
}

// ApplyHoming steers the body directly toward the target at the profile's speed
// Velocity is overwritten, position advanced without overshooting the target
// Returns true once the body sits on the target
func ApplyHoming(
	k *Kinetic,
	targetX, targetY float64,
	profile *HomingProfile,
	elapsed, speedMultiplier, dt float64,
) bool {
	dx := targetX - k.X
	dy := targetY - k.Y
	dist := math.Hypot(dx, dy)
	if dist < vmath.Epsilon {
		k.VX, k.VY = 0, 0
		return true
	}

	speed := profile.ChaseSpeed(elapsed, speedMultiplier)
	k.VX = dx / dist * speed
	k.VY = dy / dist * speed

	step := speed * dt
	if step >= dist {
		k.X, k.Y = targetX, targetY
		return true
	}
	k.X += k.VX * dt
	k.Y += k.VY * dt
	return false
}
