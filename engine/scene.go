// Package engine runs one play session: it owns the jump cycle, the ground field and the
// monster director, orders them inside each fixed step, and reports outcomes to collaborators
package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/director"
	"github.com/lixenwraith/coilhop/event"
	"github.com/lixenwraith/coilhop/ground"
	"github.com/lixenwraith/coilhop/jump"
	"github.com/lixenwraith/coilhop/vmath"
)

// Input is the host's per-tick input snapshot
type Input struct {
	Hold      bool
	Attack    core.Direction // Swipe this tick, DirNone for no swipe
	LaneShift int            // -1, 0 or +1
}

// Deps are the injected collaborators; nil fields get defaults
type Deps struct {
	Rand       vmath.Rand
	IDGen      director.IDGen
	Health     HealthSink
	Pickup     PickupSink
	BulletTime BulletTimeSink
	Logger     *slog.Logger
	RunID      string
}

// Scene is a single-threaded simulation session
type Scene struct {
	cfg    config.Config
	log    *slog.Logger
	runID  string
	health HealthSink
	pickup PickupSink
	bt     BulletTimeSink
	events *event.Queue

	cycle    *jump.Cycle
	ground   *ground.Field
	director *director.Director
	player   Player

	now      float64
	tick     uint64
	prevHold bool

	lastReport jump.LandingReport
	lastDamage jump.Damage
}

func NewScene(cfg config.Config, deps Deps) *Scene {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.RunID == "" {
		deps.RunID = uuid.NewString()
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(1)
	}
	if deps.Health == nil {
		deps.Health = nopHealth{}
	}
	if deps.Pickup == nil {
		deps.Pickup = nopPickup{}
	}
	if deps.BulletTime == nil {
		deps.BulletTime = NewBulletTime(cfg.Combat)
	}

	log := deps.Logger.With(slog.String("run", deps.RunID))
	s := &Scene{
		cfg:    cfg,
		log:    log,
		runID:  deps.RunID,
		health: deps.Health,
		pickup: deps.Pickup,
		bt:     deps.BulletTime,
		events: event.NewQueue(),
		ground: ground.NewField(cfg),
	}
	s.director = director.New(cfg, deps.Rand, deps.IDGen, log)
	s.player = newPlayer(cfg.World, s.director.Lanes())
	s.cycle = jump.NewCycle(cfg, log.With(slog.String("component", "jump")), jump.Hooks{
		OnLaunch:  s.onLaunch,
		OnLand:    s.onLand,
		OnResolve: s.onResolve,
	})

	log.Info("scene started", slog.Int("columns", s.ground.Columns()), slog.Int("lanes", s.director.Lanes().Count()))
	return s
}

// Tick advances the session by one fixed step of dt simulated seconds
// Order: jump cycle, contact and attack queries, ground field, monster motion
func (s *Scene) Tick(dt float64, in Input) {
	if dt <= 0 || !vmath.IsFinite(dt) {
		return
	}
	s.tick++
	s.now += dt

	jin := jump.Input{
		Hold:         in.Hold,
		JustPressed:  in.Hold && !s.prevHold,
		JustReleased: !in.Hold && s.prevHold,
	}
	s.prevHold = in.Hold

	lanes := s.director.Lanes()
	s.player.shiftLane(in.LaneShift, lanes)
	s.player.slide(lanes.Center(s.player.Lane), s.cfg.World.PlayerLaneSpeed, dt)

	s.cycle.Update(dt, jin, s.ground.SurfaceY(s.player.X))

	s.startAttack(in.Attack)
	if s.player.AttackPending() && s.now >= s.player.attackImpact {
		dir := s.player.pendingAttack
		s.player.pendingAttack = core.DirNone
		s.resolveAttack(director.Attack{X: s.player.X, Y: s.bodyCenterY(), Dir: dir})
	}
	if hit, ok := s.director.QueryDebuff(s.sample(), s.now); ok {
		s.applyDebuff(hit)
	}

	compression := 0.0
	if s.cycle.State() == jump.StateCharging {
		compression = s.cycle.Compression()
	}
	s.ground.Step(dt, compression, s.player.X)

	s.director.Tick(dt, s.sample())
	s.bt.Tick(dt)
	s.player.expirePoison(s.now)
}

func (s *Scene) bodyCenterY() float64 {
	return s.cycle.Altitude() + s.player.Radius
}

func (s *Scene) sample() director.PlayerSample {
	return director.PlayerSample{
		X:           s.player.X,
		Y:           s.bodyCenterY(),
		Airborne:    s.cycle.Airborne(),
		ImmuneUntil: s.player.ImmuneUntil,
	}
}

// startAttack queues a swing when off cooldown; body contact is ignored from swing start
func (s *Scene) startAttack(dir core.Direction) {
	if dir == core.DirNone || s.player.AttackPending() || s.now < s.player.attackReadyAt {
		return
	}
	cc := s.cfg.Combat
	s.player.pendingAttack = dir
	s.player.attackImpact = s.now + cc.AttackImpactDelay
	s.player.attackReadyAt = s.now + cc.AttackCooldown
	s.player.extendImmunity(s.now + cc.AttackSwingGrace)
}

func (s *Scene) resolveAttack(a director.Attack) director.SectorResult {
	res := s.director.QuerySector(a)
	if res.Kills == 0 {
		return res
	}

	s.player.extendImmunity(s.now + s.cfg.Combat.KillImmunity)
	for _, d := range res.Deaths {
		s.pickup.OnMonsterDeath(d.X, d.Y, d.Type, res.DropMultiplier)
		s.emit(event.EventMonsterKilled, &event.MonsterKilledPayload{
			MonsterID:      d.MonsterID,
			Type:           d.Type,
			X:              d.X,
			Y:              d.Y,
			DropMultiplier: res.DropMultiplier,
		})
	}
	s.bt.OnKills(res.Kills)
	s.log.Debug("sector kill", slog.Int("kills", res.Kills), slog.String("dir", a.Dir.String()))
	return res
}

// applyDebuff applies the touched type's effect and opens the hit grace window
func (s *Scene) applyDebuff(hit director.DebuffHit) {
	cc := s.cfg.Combat
	poison := hit.Type.Poisons()
	if poison {
		s.player.poison(cc, s.now)
	} else {
		s.cycle.DampVelocity(cc.CloudVelocityDamping)
	}
	s.player.extendImmunity(s.now + cc.HitGrace)

	s.emit(event.EventDebuffApplied, &event.DebuffAppliedPayload{
		MonsterID:    hit.MonsterID,
		Type:         hit.Type,
		Poison:       poison,
		PoisonStacks: s.player.PoisonStacks,
	})
}

// --- Cycle hooks ---

func (s *Scene) onLaunch(res jump.LaunchResult) {
	apexM := s.cfg.World.PixelsToMeters(res.ApexHeight)
	s.emit(event.EventLaunched, &event.LaunchedPayload{
		Rating:        res.Rating,
		Velocity:      res.Velocity,
		TargetHeight:  res.TargetHeight,
		ApexM:         apexM,
		Streak:        res.Streak,
		StreakApplied: res.StreakApplied,
	})

	if n := s.director.SpawnApexMonsters(apexM, res.Rating, s.now); n > 0 {
		w, _ := s.director.Window()
		s.emit(event.EventWaveSpawned, &event.WaveSpawnedPayload{
			Rating:      w.Rating,
			ApexM:       w.ApexM,
			RangeStartM: w.RangeStartM,
			RangeEndM:   w.RangeEndM,
			Count:       n,
		})
	}

	before := s.bt.TimeScale()
	s.bt.OnLaunch(res.Rating, apexM)
	s.emitBulletTimeChange(before)
}

func (s *Scene) onLand(l jump.Landing) {
	if n := s.director.ClearAll(); n > 0 {
		s.emit(event.EventWaveCleared, &event.WaveClearedPayload{Count: n})
	}
	s.ground.OnLandingImpact(s.player.X, l.ImpactSpeed)

	before := s.bt.TimeScale()
	s.bt.OnLand()
	s.emitBulletTimeChange(before)

	s.emit(event.EventLanded, &event.LandedPayload{
		X:           s.player.X,
		FallHeightM: s.cfg.World.PixelsToMeters(l.ApexHeight),
		ImpactSpeed: l.ImpactSpeed,
	})
}

func (s *Scene) onResolve(r jump.LandingReport) {
	dmg := jump.AssessLanding(s.cfg.Damage, r)
	s.lastReport, s.lastDamage = r, dmg
	s.health.OnLanding(r, dmg)

	s.emit(event.EventResolved, &event.ResolvedPayload{
		Rating:      r.Rating,
		Settled:     r.Settled,
		HoldLockout: r.HoldLockout,
	})
	switch {
	case dmg.InstantDeath:
		s.log.Info("instant death", slog.Float64("fall_m", r.FallHeightM), slog.Bool("lockout", r.HoldLockout))
		s.emit(event.EventInstantDeath, &event.DamagePayload{Fraction: dmg.Fraction, FallHeightM: r.FallHeightM})
	case dmg.Fraction > 0:
		s.emit(event.EventPlayerDamaged, &event.DamagePayload{Fraction: dmg.Fraction, FallHeightM: r.FallHeightM})
	}
}

func (s *Scene) emitBulletTimeChange(before float64) {
	if after := s.bt.TimeScale(); after != before {
		s.emit(event.EventBulletTime, &event.BulletTimePayload{Active: after < 1})
	}
}

func (s *Scene) emit(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: s.tick, RunID: s.runID})
}

// --- Read access for hosts and observers ---

func (s *Scene) Config() config.Config { return s.cfg }

func (s *Scene) Cycle() *jump.Cycle { return s.cycle }

func (s *Scene) Ground() *ground.Field { return s.ground }

func (s *Scene) Director() *director.Director { return s.director }

// Player returns a copy of the lateral body and combat state
func (s *Scene) Player() Player { return s.player }

func (s *Scene) Events() *event.Queue { return s.events }

// Now is the accumulated simulation time in seconds
func (s *Scene) Now() float64 { return s.now }

func (s *Scene) Ticks() uint64 { return s.tick }

func (s *Scene) RunID() string { return s.runID }

// TimeScale is the dt scale the host clock should apply to the next frame
func (s *Scene) TimeScale() float64 { return s.bt.TimeScale() }

// LastOutcome returns the most recent resolved cycle and its damage
func (s *Scene) LastOutcome() (jump.LandingReport, jump.Damage) { return s.lastReport, s.lastDamage }
