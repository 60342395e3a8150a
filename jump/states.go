package jump

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/engine/fsm"
	"github.com/lixenwraith/coilhop/physics"
	"github.com/lixenwraith/coilhop/vmath"
)

// newCycleMachine wires the three cycle states
// Work happens in OnUpdate; guards only read the request flags it raises
func newCycleMachine() *fsm.Machine[*Cycle] {
	m := fsm.NewMachine[*Cycle]()

	m.AddState(&fsm.Node[*Cycle]{
		ID:       StateIdle,
		Name:     "Idle",
		OnEnter:  []fsm.ActionFunc[*Cycle]{(*Cycle).enterIdle},
		OnUpdate: []fsm.UpdateFunc[*Cycle]{(*Cycle).updateIdle},
	})
	m.AddState(&fsm.Node[*Cycle]{
		ID:       StateCharging,
		Name:     "Charging",
		OnEnter:  []fsm.ActionFunc[*Cycle]{(*Cycle).enterCharging},
		OnUpdate: []fsm.UpdateFunc[*Cycle]{(*Cycle).updateCharging},
		OnExit:   []fsm.ActionFunc[*Cycle]{(*Cycle).exitCharging},
	})
	m.AddState(&fsm.Node[*Cycle]{
		ID:       StateAirborne,
		Name:     "Airborne",
		OnEnter:  []fsm.ActionFunc[*Cycle]{(*Cycle).enterAirborne},
		OnUpdate: []fsm.UpdateFunc[*Cycle]{(*Cycle).updateAirborne},
		OnExit:   []fsm.ActionFunc[*Cycle]{(*Cycle).exitAirborne},
	})

	m.AddTransition(StateIdle, StateCharging, func(c *Cycle) bool { return c.in.Hold })
	m.AddTransition(StateCharging, StateAirborne, func(c *Cycle) bool { return c.launched })
	m.AddTransition(StateCharging, StateIdle, func(c *Cycle) bool { return c.settled })
	m.AddTransition(StateAirborne, StateCharging, func(c *Cycle) bool { return c.landed })

	return m
}

// --- Idle ---

func (c *Cycle) enterIdle() {
	c.compression = 0
	c.body = physics.Kinetic{Y: c.surfaceY}
	c.apexHeightOfFall = c.cfg.Jump.IdleLaunchHeight
	c.fallDistance = 0
	c.fastFallDistance = 0
}

func (c *Cycle) updateIdle(dt float64) {
	c.body.Y = c.surfaceY
	c.body.VY = 0
}

// --- Charging ---

func (c *Cycle) enterCharging() {
	c.params = ComputeDifficulty(c.cfg.Difficulty, c.cfg.World.PixelsToMeters(c.apexHeightOfFall))
	c.targetCompression = c.cfg.Jump.TargetCompression
	c.compression = 0
	c.reachedPeak = false
	c.postPeakHoldTime = 0
	c.holdLockout = false
	c.chargeEfficiency = 1
	c.isInYellowZone = false
	c.yellowZoneStart = 0
	c.chargeClock = 0
	// A release on the contact tick was spent in Airborne; it fires on the first charge update
	c.contactHasInput = c.in.Hold || c.in.JustReleased
	c.releasePending = c.in.JustReleased
	c.rating = core.RatingNone
	c.launched = false
	c.settled = false

	c.body.Y = c.surfaceY
	c.body.VY = 0
}

func (c *Cycle) exitCharging() {
	c.releasePending = false
	c.launched = false
	c.settled = false
}

func (c *Cycle) updateCharging(dt float64) {
	c.body.Y = c.surfaceY
	c.body.VY = 0

	if (c.in.JustReleased || c.releasePending) && c.contactHasInput {
		c.releasePending = false
		c.release()
		return
	}
	if c.in.Hold {
		c.contactHasInput = true
	}

	c.chargeClock += dt
	j := c.cfg.Jump

	if !c.reachedPeak {
		alpha := vmath.ExpAlpha(dt, c.params.CompressTime)
		c.compression += (c.targetCompression - c.compression) * alpha
		c.compression = vmath.Clamp(c.compression, 0, c.targetCompression)

		ratio := c.compression / (c.targetCompression + vmath.Epsilon)
		if ratio > j.YellowZoneRatio {
			if !c.isInYellowZone {
				c.isInYellowZone = true
				c.yellowZoneStart = c.chargeClock
			}
			if c.chargeClock-c.yellowZoneStart > c.params.YellowDuration {
				c.hitPeak("auto")
			}
		}
		if !c.reachedPeak && ratio >= j.PeakRatio {
			c.hitPeak("natural")
		}
		return
	}

	c.postPeakHoldTime += dt
	if c.postPeakHoldTime <= c.params.SweetGrace {
		c.compression = c.targetCompression
		return
	}

	over := c.postPeakHoldTime - c.params.SweetGrace
	accel := 1 + c.params.OverHoldGain*(1-math.Exp(-over/j.OverHoldAccelTime))
	c.compression *= math.Exp(-j.RelaxRate * accel * dt)
	c.chargeEfficiency *= math.Exp(-j.EfficiencyDecay * accel * dt)
	c.chargeEfficiency = vmath.Clamp01(c.chargeEfficiency)

	if !c.holdLockout && c.postPeakHoldTime > c.params.FailHoldTime {
		c.holdLockout = true
		c.log.Debug("hold lockout", slog.Float64("post_peak", c.postPeakHoldTime))
	}

	if c.compression <= j.SettleEpsilon {
		c.settle()
	}
}

func (c *Cycle) hitPeak(kind string) {
	c.reachedPeak = true
	c.postPeakHoldTime = 0
	c.compression = c.targetCompression
	c.log.Debug("charge peak", slog.String("kind", kind), slog.Float64("t", c.chargeClock))
}

// release rates the cycle and launches
func (c *Cycle) release() {
	rating := c.rate()
	res := Launch(c.cfg.Launch, c.cfg.World.Gravity, LaunchInput{
		Rating:         rating,
		LastApexHeight: c.apexHeightOfFall,
		PressRatio:     PressRatio(c.fastFallDistance, c.fallDistance),
		Streak:         c.perfectStreak,
	})
	c.perfectStreak = res.Streak
	c.lastLaunch = res
	c.launched = true

	c.log.Debug("release",
		slog.String("rating", rating.String()),
		slog.Float64("fall_px", c.apexHeightOfFall),
		slog.Float64("target_px", res.TargetHeight),
		slog.Float64("velocity", res.Velocity),
		slog.Int("streak", res.Streak),
	)

	if c.hooks.OnResolve != nil {
		c.hooks.OnResolve(c.report(false))
	}
	if c.hooks.OnLaunch != nil {
		c.hooks.OnLaunch(res)
	}
}

// settle ends a cycle that relaxed out without a release
// Settling latches lockout whether or not FailHoldTime has passed
func (c *Cycle) settle() {
	c.holdLockout = true
	c.rating = core.RatingFailed
	c.perfectStreak = 0
	c.settled = true
	c.compression = 0

	rep := c.report(true)
	c.log.Debug("settle failure",
		slog.Float64("fall_m", rep.FallHeightM),
		slog.Bool("had_input", rep.EverHadInput),
	)
	if c.hooks.OnResolve != nil {
		c.hooks.OnResolve(rep)
	}
}

// --- Airborne ---

func (c *Cycle) enterAirborne() {
	c.compression = 0
	c.landed = false
	c.everHadInput = false
	c.fallDistance = 0
	c.fastFallDistance = 0

	c.body = physics.Kinetic{Y: c.surfaceY, VY: c.lastLaunch.Velocity}
	c.flightApex = c.body.Y
}

func (c *Cycle) exitAirborne() {
	c.landed = false
}

func (c *Cycle) updateAirborne(dt float64) {
	g := c.cfg.World.Gravity
	descending := c.body.VY < 0
	if descending && c.in.Hold {
		g *= c.cfg.World.FastFallGravityScale
	}
	c.body.AY = -g

	prevY := c.body.Y
	physics.Integrate(&c.body, dt)

	if c.body.Y > c.flightApex {
		c.flightApex = c.body.Y
	}

	if c.body.VY < 0 {
		drop := prevY - math.Max(c.body.Y, c.surfaceY)
		if drop > 0 {
			c.fallDistance += drop
			if c.in.Hold {
				c.fastFallDistance += drop
			}
		}
	}

	if c.body.Y <= c.surfaceY && c.body.VY <= 0 {
		impact := -c.body.VY
		c.body.Y = c.surfaceY
		c.body.VY = 0
		c.body.AY = 0
		c.apexHeightOfFall = math.Max(0, c.flightApex-c.surfaceY)
		c.landed = true

		if c.hooks.OnLand != nil {
			c.hooks.OnLand(Landing{
				ApexHeight:    c.apexHeightOfFall,
				ImpactSpeed:   impact,
				FallDistance:  c.fallDistance,
				FastFallRatio: PressRatio(c.fastFallDistance, c.fallDistance),
			})
		}
	}
}
