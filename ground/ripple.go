package ground

import (
	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/vmath"
)

// Ripple is the cosmetic wave layer: one damped spring per column, each pulled toward
// a fraction of its neighbors' mean so kicks spread outward as rings
type Ripple struct {
	cfg    config.GroundConfig
	spring harmonica.Spring
	dt     float64

	pos  []float64
	vel  []float64
	prev []float64
}

func NewRipple(cfg config.GroundConfig, n int) *Ripple {
	return &Ripple{
		cfg:  cfg,
		pos:  make([]float64, n),
		vel:  make([]float64, n),
		prev: make([]float64, n),
	}
}

// Kick adds a downward velocity bump around column c, strongest at the center
func (r *Ripple) Kick(c int, strength float64) {
	if !vmath.IsFinite(strength) || strength <= 0 {
		return
	}
	base := strength * r.cfg.RippleImpactScale
	radius := r.cfg.RippleRadius
	for d := -radius; d <= radius; d++ {
		i := c + d
		if i < 0 || i >= len(r.vel) {
			continue
		}
		falloff := 1 - vmath.Abs(float64(d))/float64(radius+1)
		r.vel[i] += base * falloff
	}
}

// Step advances every spring by dt; the spring coefficients follow dt
func (r *Ripple) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt != r.dt {
		r.spring = harmonica.NewSpring(dt, r.cfg.RippleFrequency, r.cfg.RippleDampingRatio)
		r.dt = dt
	}

	copy(r.prev, r.pos)
	n := len(r.pos)
	limit := r.cfg.MaxOffset
	for i := 0; i < n; i++ {
		left, right := 0.0, 0.0
		if i > 0 {
			left = r.prev[i-1]
		}
		if i < n-1 {
			right = r.prev[i+1]
		}
		target := r.cfg.RippleCoupling * (left + right) / 2
		r.pos[i], r.vel[i] = r.spring.Update(r.pos[i], r.vel[i], target)
		r.pos[i] = vmath.Clamp(r.pos[i], -limit, limit)
	}
}

// Offset returns the ripple displacement of column i (px, positive down)
func (r *Ripple) Offset(i int) float64 {
	if i < 0 || i >= len(r.pos) {
		return 0
	}
	return r.pos[i]
}

// Energy returns the summed absolute displacement and velocity, zero at rest
func (r *Ripple) Energy() float64 {
	e := 0.0
	for i := range r.pos {
		e += vmath.Abs(r.pos[i]) + vmath.Abs(r.vel[i])
	}
	return e
}
