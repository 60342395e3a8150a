// Package director plans and runs the monster wave of a single jump
//
// A qualifying launch produces one SpawnWindow from the predicted apex and rating,
// the wave is placed inside the band just below the apex, and every monster is
// cleared when the player lands. Altitudes of the plan are meters; monster
// positions are world px.
package director

import (
	"log/slog"
	"slices"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/physics"
	"github.com/lixenwraith/coilhop/vmath"
)

// IDGen hands out entity ids
type IDGen interface {
	NextID() uint64
}

// Counter is a monotonically increasing IDGen starting at 1
type Counter struct {
	last uint64
}

func (c *Counter) NextID() uint64 {
	c.last++
	return c.last
}

// PlayerSample is the player state the director reads each tick, world px
type PlayerSample struct {
	X, Y     float64
	Airborne bool
	// ImmuneUntil folds swing grace, hit grace and kill immunity into one deadline
	ImmuneUntil float64
}

// DebuffHit names the monster whose body touched the player
type DebuffHit struct {
	MonsterID uint64
	Type      core.MonsterType
	X, Y      float64
}

// Attack is one sector swing at its impact frame
type Attack struct {
	X, Y float64
	Dir  core.Direction
}

// Death describes one killed monster
type Death struct {
	MonsterID uint64
	Type      core.MonsterType
	X, Y      float64
}

// SectorResult is the outcome of one swing
type SectorResult struct {
	Kills          int
	Deaths         []Death
	DropMultiplier float64
}

// Director owns the live wave
type Director struct {
	cfg     config.Config
	lanes   Lanes
	rng     vmath.Rand
	ids     IDGen
	log     *slog.Logger
	homing  physics.HomingProfile
	contact *contactSpace

	monsters  []*Monster
	window    SpawnWindow
	hasWindow bool
}

func New(cfg config.Config, rng vmath.Rand, ids IDGen, log *slog.Logger) *Director {
	if ids == nil {
		ids = &Counter{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Director{
		cfg:   cfg,
		lanes: NewLanes(cfg.World),
		rng:   rng,
		ids:   ids,
		log:   log.With("component", "director"),
		homing: physics.HomingProfile{
			BaseSpeed: cfg.Monster.ChaseBaseSpeed,
			Accel:     cfg.Monster.ChaseAccel,
			MaxSpeed:  cfg.Monster.ChaseMaxSpeed,
		},
		contact: newContactSpace(cfg.World.PlayerRadius),
	}
}

func (d *Director) Lanes() Lanes { return d.lanes }

// Window returns the plan of the current wave, if one spawned this jump
func (d *Director) Window() (SpawnWindow, bool) { return d.window, d.hasWindow }

// Monsters returns the live wave; the slice is owned by the director
func (d *Director) Monsters() []*Monster { return d.monsters }

func (d *Director) Alive() int { return len(d.monsters) }

// SpawnApexMonsters plans and spawns the wave for a launch, returning the number spawned
// A non-qualifying launch spawns nothing and leaves no window
func (d *Director) SpawnApexMonsters(apexM float64, rating core.Rating, now float64) int {
	if !Qualifies(d.cfg.Director, apexM, rating) {
		d.hasWindow = false
		d.log.Debug("launch does not qualify", "apex_m", apexM, "rating", rating.String())
		return 0
	}

	w := ComputeWindow(d.cfg.Director, apexM, rating)
	d.window, d.hasWindow = w, true

	placements := PlanPlacements(d.cfg.Director, d.lanes, w, d.rng)
	for _, p := range placements {
		t := PickType(d.rng, p.AltitudeM, d.cfg.Director.TypeWeightMin)
		m := newMonster(d.ids.NextID(), t, p, d.lanes, d.cfg.World, d.cfg.Monster, w.SpeedMultiplier, now, d.rng)
		d.contact.add(m)
		d.monsters = append(d.monsters, m)
	}

	if len(placements) < w.TargetCount {
		d.log.Warn("wave truncated", "target", w.TargetCount, "placed", len(placements))
	}
	d.log.Debug("wave spawned",
		"apex_m", apexM,
		"rating", rating.String(),
		"band_start_m", w.RangeStartM,
		"band_end_m", w.RangeEndM,
		"count", len(placements),
		"speed", w.SpeedMultiplier,
	)
	return len(placements)
}

// SpawnAt places one monster at a world position outside any wave plan
// It joins the live wave and is cleared with it on landing
func (d *Director) SpawnAt(t core.MonsterType, x, y, now float64) *Monster {
	speed := 1.0
	if d.hasWindow {
		speed = d.window.SpeedMultiplier
	}
	p := Placement{AltitudeM: d.cfg.World.PixelsToMeters(y), Lane: d.lanes.Nearest(x)}
	m := newMonster(d.ids.NextID(), t, p, d.lanes, d.cfg.World, d.cfg.Monster, speed, now, d.rng)
	m.body.X = x
	m.body.Y = y
	d.contact.add(m)
	d.monsters = append(d.monsters, m)
	d.log.Debug("monster placed", "type", t.String(), "x", x, "y", y)
	return m
}

// Tick advances monster motion; chase-capable monsters pursue once the airborne player is above them
func (d *Director) Tick(dt float64, p PlayerSample) {
	if dt <= 0 {
		return
	}
	mc := d.cfg.Monster
	for _, m := range d.monsters {
		if !m.Alive {
			continue
		}
		if !m.chasing && m.CanChase() && p.Airborne && p.Y > m.body.Y+mc.ChaseTriggerMargin {
			if m.startChase(mc) {
				d.contact.reshape(m)
			}
		}
		if m.chasing {
			m.chase(&d.homing, p.X, p.Y, dt)
			m.HeightM = d.cfg.World.PixelsToMeters(m.body.Y)
		} else {
			m.patrol(mc, dt, d.rng)
		}
	}
}

// QueryDebuff returns the first monster touching the player that may debuff now
// The returned monster's throttle is advanced; at most one hit is reported per query
func (d *Director) QueryDebuff(p PlayerSample, now float64) (DebuffHit, bool) {
	if !p.Airborne || now < p.ImmuneUntil || len(d.monsters) == 0 {
		return DebuffHit{}, false
	}

	d.contact.sync(p.X, p.Y, d.monsters)
	hits := d.contact.touching()
	slices.SortFunc(hits, func(a, b *Monster) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	for _, m := range hits {
		if !m.Alive || now < m.NoDebuffUntil || now < m.NextDebuffTime {
			continue
		}
		m.NextDebuffTime = now + d.cfg.Monster.DebuffInterval
		return DebuffHit{MonsterID: m.ID, Type: m.Type, X: m.body.X, Y: m.body.Y}, true
	}
	return DebuffHit{}, false
}

// QuerySector kills every monster inside the swing's forward sector
func (d *Director) QuerySector(a Attack) SectorResult {
	res := SectorResult{DropMultiplier: 1}
	if d.hasWindow {
		res.DropMultiplier = d.window.DropMultiplier
	}
	if a.Dir == core.DirNone {
		return res
	}

	cc := d.cfg.Combat
	for _, m := range d.monsters {
		if !m.Alive {
			continue
		}
		forward := (m.body.X - a.X) * a.Dir.Sign()
		if forward < -cc.AttackBackTolerance || forward > cc.AttackReach {
			continue
		}
		if vmath.Abs(m.body.Y-a.Y) > cc.AttackVerticalTolerance {
			continue
		}
		m.Alive = false
		res.Deaths = append(res.Deaths, Death{MonsterID: m.ID, Type: m.Type, X: m.body.X, Y: m.body.Y})
	}
	res.Kills = len(res.Deaths)
	if res.Kills > 0 {
		d.compact()
	}
	return res
}

// ClearAll removes the whole wave, returning how many were alive
func (d *Director) ClearAll() int {
	n := len(d.monsters)
	d.contact.clear()
	clear(d.monsters)
	d.monsters = d.monsters[:0]
	d.hasWindow = false
	if n > 0 {
		d.log.Debug("wave cleared", "count", n)
	}
	return n
}

// compact drops dead monsters and their shapes, preserving spawn order
func (d *Director) compact() {
	w := 0
	for _, m := range d.monsters {
		if m.Alive {
			d.monsters[w] = m
			w++
			continue
		}
		d.contact.remove(m)
	}
	clear(d.monsters[w:])
	d.monsters = d.monsters[:w]
}
