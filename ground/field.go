// Package ground simulates the deformable floor: a load-bearing mass-spring-damper column
// chain driven by the charge compression, plus a decoupled visual ripple layer
package ground

import (
	"math"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/vmath"
)

// Field is the column chain; offsets are positive downward (depression) in px
type Field struct {
	cfg   config.GroundConfig
	width float64

	offset   []float64
	velocity []float64
	force    []float64
	accel    []float64

	minOffset float64
	maxOffset float64
	// Columns left of screen x=0
	leftPad int

	ripple *Ripple
}

// NewField sizes the chain to the playfield plus margin columns split across both edges
func NewField(cfg config.Config) *Field {
	g := cfg.Ground
	n := int(math.Ceil(cfg.World.ScreenWidth/g.BlockSize)) + g.ColumnMargin
	if n < 1 {
		n = 1
	}
	return &Field{
		cfg:       g,
		width:     cfg.World.ScreenWidth,
		offset:    make([]float64, n),
		velocity:  make([]float64, n),
		force:     make([]float64, n),
		accel:     make([]float64, n),
		minOffset: -g.UpwardRatio * g.MaxOffset,
		maxOffset: g.MaxOffset,
		leftPad:   g.ColumnMargin / 2,
		ripple:    NewRipple(g, n),
	}
}

// Columns returns the column count
func (f *Field) Columns() int { return len(f.offset) }

// Offset returns the load-bearing offset of column i
func (f *Field) Offset(i int) float64 { return f.offset[i] }

// Velocity returns the vertical velocity of column i
func (f *Field) Velocity(i int) float64 { return f.velocity[i] }

// ColumnAt returns the nearest column index for a world x
func (f *Field) ColumnAt(x float64) int {
	if !vmath.IsFinite(x) {
		x = f.width / 2
	}
	i := int(math.Floor(x/f.cfg.BlockSize)) + f.leftPad
	if i < 0 {
		return 0
	}
	if i >= len(f.offset) {
		return len(f.offset) - 1
	}
	return i
}

// ColumnX returns the world x of a column center
func (f *Field) ColumnX(i int) float64 {
	return (float64(i-f.leftPad) + 0.5) * f.cfg.BlockSize
}

// Step integrates one tick
// compression is the current charge depth (px), impactX the world x under the player
func (f *Field) Step(dt, compression, impactX float64) {
	if dt <= 0 {
		return
	}
	if !vmath.IsFinite(compression) || compression < 0 {
		compression = 0
	}

	f.buildForce(compression, impactX)

	h := dt / float64(f.cfg.SubSteps)
	for s := 0; s < f.cfg.SubSteps; s++ {
		f.substep(h)
	}

	f.ripple.Step(dt)
}

func (f *Field) buildForce(compression, impactX float64) {
	for i := range f.force {
		f.force[i] = 0
	}
	peak := compression * f.cfg.PressureScale
	if peak == 0 {
		return
	}
	c := f.ColumnAt(impactX)
	for d := -f.cfg.ForceRadius; d <= f.cfg.ForceRadius; d++ {
		i := c + d
		if i < 0 || i >= len(f.force) {
			continue
		}
		f.force[i] = peak * vmath.Gaussian(float64(d), f.cfg.ForceSigma)
	}
}

// substep applies accel = T*lap - K*x - D*v + F with fixed rest ends
func (f *Field) substep(h float64) {
	n := len(f.offset)
	for i := 0; i < n; i++ {
		left, right := 0.0, 0.0
		if i > 0 {
			left = f.offset[i-1]
		}
		if i < n-1 {
			right = f.offset[i+1]
		}
		lap := left - 2*f.offset[i] + right
		f.accel[i] = f.cfg.Tension*lap - f.cfg.Stiffness*f.offset[i] - f.cfg.Damping*f.velocity[i] + f.force[i]
	}

	for i := 0; i < n; i++ {
		f.velocity[i] += f.accel[i] * h
		f.offset[i] += f.velocity[i] * h

		if f.offset[i] > f.maxOffset {
			f.offset[i] = f.maxOffset
			if f.velocity[i] > 0 {
				f.velocity[i] = 0
			}
		} else if f.offset[i] < f.minOffset {
			f.offset[i] = f.minOffset
			if f.velocity[i] < 0 {
				f.velocity[i] = 0
			}
		}
	}
}

// OnLandingImpact kicks the visual ripple layer; load-bearing offsets are untouched
// strength is the impact speed (px/s)
func (f *Field) OnLandingImpact(x, strength float64) {
	f.ripple.Kick(f.ColumnAt(x), strength)
}

// SurfaceOffsetAt returns the load-bearing depression under x (px, positive down)
func (f *Field) SurfaceOffsetAt(x float64) float64 {
	return f.offset[f.ColumnAt(x)]
}

// SurfaceY returns the ground surface altitude under x (px, y-up)
func (f *Field) SurfaceY(x float64) float64 {
	return -f.SurfaceOffsetAt(x)
}

// VisualOffsetAt returns the rendered depression: load-bearing offset plus ripple
func (f *Field) VisualOffsetAt(x float64) float64 {
	i := f.ColumnAt(x)
	return f.offset[i] + f.ripple.Offset(i)
}

// Ripple exposes the visual layer for renderers
func (f *Field) Ripple() *Ripple { return f.ripple }

// MaxAbsOffset returns the largest load-bearing deflection
func (f *Field) MaxAbsOffset() float64 {
	m := 0.0
	for _, o := range f.offset {
		if a := math.Abs(o); a > m {
			m = a
		}
	}
	return m
}
