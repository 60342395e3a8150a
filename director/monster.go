package director

import (
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/physics"
	"github.com/lixenwraith/coilhop/vmath"
)

// Monster is a live wave member; position is world px, y-up
type Monster struct {
	ID              uint64
	Type            core.MonsterType
	Lane            int
	HeightM         float64 // Current altitude (m); patrol keeps the spawn altitude
	SpeedMultiplier float64
	Alive           bool
	Facing          core.Direction

	// Debuff throttle, simulation seconds
	NextDebuffTime float64
	NoDebuffUntil  float64

	body      physics.Kinetic
	minX      float64
	maxX      float64
	turnTimer float64

	chasing      bool
	chaseElapsed float64

	shape  resolv.IShape
	radius float64
}

func (m *Monster) X() float64 { return m.body.X }

func (m *Monster) Y() float64 { return m.body.Y }

// Chasing reports whether the monster left patrol to pursue the player
func (m *Monster) Chasing() bool { return m.chasing }

// Radius is the current collision radius
func (m *Monster) Radius() float64 { return m.radius }

// CanChase reports whether the type pursues a player that passed above it
func (m *Monster) CanChase() bool { return m.Type == core.MonsterA02 }

func newMonster(id uint64, t core.MonsterType, p Placement, lanes Lanes, w config.WorldConfig, mc config.MonsterConfig, speedMult, now float64, rng vmath.Rand) *Monster {
	minX, maxX := lanes.Bounds(p.Lane)
	facing := core.DirRight
	if vmath.RandSign(rng) < 0 {
		facing = core.DirLeft
	}
	m := &Monster{
		ID:              id,
		Type:            t,
		Lane:            p.Lane,
		HeightM:         p.AltitudeM,
		SpeedMultiplier: speedMult,
		Alive:           true,
		Facing:          facing,
		NextDebuffTime:  now,
		NoDebuffUntil:   now + mc.SpawnGrace,
		minX:            minX,
		maxX:            maxX,
		turnTimer:       vmath.RandRange(rng, mc.TurnMin, mc.TurnMax),
		radius:          mc.BodyRadius,
	}
	m.body.X = lanes.Center(p.Lane)
	m.body.Y = w.MetersToPixels(p.AltitudeM)
	return m
}

// patrol sweeps the lane, reversing at the bounds or when the turn timer expires
func (m *Monster) patrol(mc config.MonsterConfig, dt float64, rng vmath.Rand) {
	m.body.VX = m.Facing.Sign() * mc.BaseSpeed * m.SpeedMultiplier
	m.body.VY = 0
	physics.Integrate(&m.body, dt)

	if physics.ReflectBoundsX(&m.body, m.minX, m.maxX) {
		m.Facing = directionOf(m.body.VX)
		m.turnTimer = vmath.RandRange(rng, mc.TurnMin, mc.TurnMax)
		return
	}

	m.turnTimer -= dt
	if m.turnTimer <= 0 {
		m.Facing = -m.Facing
		m.turnTimer = vmath.RandRange(rng, mc.TurnMin, mc.TurnMax)
	}
}

// startChase switches to pursuit; returns true when the collision radius changed
func (m *Monster) startChase(mc config.MonsterConfig) bool {
	m.chasing = true
	m.chaseElapsed = 0
	changed := m.radius != mc.ChaseRadius
	m.radius = mc.ChaseRadius
	return changed
}

func (m *Monster) chase(profile *physics.HomingProfile, tx, ty, dt float64) {
	m.chaseElapsed += dt
	physics.ApplyHoming(&m.body, tx, ty, profile, m.chaseElapsed, m.SpeedMultiplier, dt)
	if d := directionOf(m.body.VX); d != core.DirNone {
		m.Facing = d
	}
}

func directionOf(vx float64) core.Direction {
	switch {
	case vx > 0:
		return core.DirRight
	case vx < 0:
		return core.DirLeft
	default:
		return core.DirNone
	}
}
