package physics

import (
	"math"

	"github.com/lixenwraith/coilhop/vmath"
)

// Kinetic is a point body in world pixels, y-up (altitude grows upward)
type Kinetic struct {
	X, Y   float64
	VX, VY float64
	AX, AY float64
}

// Integrate performs semi-implicit Euler: v = v + a*dt; p = p + v*dt
func Integrate(k *Kinetic, dt float64) {
	k.VX += k.AX * dt
	k.VY += k.AY * dt
	k.X += k.VX * dt
	k.Y += k.VY * dt
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *Kinetic, vx, vy float64) {
	k.VX += vx
	k.VY += vy
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *Kinetic, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
// Position is clamped into [minX, maxX] and the horizontal velocity points back inside
func ReflectBoundsX(k *Kinetic, minX, maxX float64) bool {
	if k.X < minX {
		k.X = minX
		k.VX = vmath.Abs(k.VX)
		return true
	}
	if k.X > maxX {
		k.X = maxX
		k.VX = -vmath.Abs(k.VX)
		return true
	}
	return false
}

// VelocityForHeight returns the launch speed that reaches height h under gravity g
func VelocityForHeight(g, h float64) float64 {
	if g <= 0 || h <= 0 {
		return 0
	}
	return math.Sqrt(2 * g * h)
}

// HeightForVelocity returns the apex height reached from launch speed v under gravity g
func HeightForVelocity(g, v float64) float64 {
	if g <= 0 {
		return 0
	}
	return v * v / (2 * g)
}
