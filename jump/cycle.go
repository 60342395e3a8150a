// Package jump implements the charge-and-release timing cycle, its difficulty curve,
// the launch transform and the landing damage policy
package jump

import (
	"log/slog"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/engine/fsm"
	"github.com/lixenwraith/coilhop/physics"
)

// State identifiers of the cycle machine
const (
	StateIdle fsm.StateID = iota + 1
	StateCharging
	StateAirborne
)

// Input is the per-tick hold signal with its derived edges
type Input struct {
	Hold         bool
	JustPressed  bool
	JustReleased bool
}

// Landing describes a ground contact ending a flight
type Landing struct {
	ApexHeight    float64 // Peak altitude of the flight, the next cycle's fall height (px)
	ImpactSpeed   float64 // Downward speed at contact (px/s)
	FallDistance  float64
	FastFallRatio float64
}

// Hooks receive cycle outcomes; nil hooks are skipped
type Hooks struct {
	OnLaunch  func(LaunchResult)
	OnLand    func(Landing)
	OnResolve func(LandingReport)
}

// Cycle is the player's jump cycle: one instance, reset on every landing
type Cycle struct {
	cfg   config.Config
	log   *slog.Logger
	hooks Hooks
	fsm   *fsm.Machine[*Cycle]

	// Tick inputs
	in       Input
	surfaceY float64

	// Charge state
	compression       float64
	targetCompression float64
	reachedPeak       bool
	postPeakHoldTime  float64
	holdLockout       bool
	chargeEfficiency  float64
	isInYellowZone    bool
	yellowZoneStart   float64
	chargeClock       float64
	contactHasInput   bool
	releasePending    bool
	everHadInput      bool
	params            Params
	rating            core.Rating

	// Fall bookkeeping for the next launch
	apexHeightOfFall float64
	fallDistance     float64
	fastFallDistance float64
	flightApex       float64
	perfectStreak    int

	body       physics.Kinetic
	lastLaunch LaunchResult

	// Transition requests raised inside OnUpdate, consumed by guards
	launched bool
	settled  bool
	landed   bool
}

// NewCycle creates a cycle resting in Idle on the ground
func NewCycle(cfg config.Config, log *slog.Logger, hooks Hooks) *Cycle {
	if log == nil {
		log = slog.Default()
	}
	c := &Cycle{
		cfg:               cfg,
		log:               log,
		hooks:             hooks,
		targetCompression: cfg.Jump.TargetCompression,
		chargeEfficiency:  1,
		apexHeightOfFall:  cfg.Jump.IdleLaunchHeight,
	}
	c.fsm = newCycleMachine()
	// Init only fails on an unregistered state
	_ = c.fsm.Init(c, StateIdle)
	return c
}

// Update advances the cycle by dt simulated seconds
// surfaceY is the ground surface altitude under the player (px)
func (c *Cycle) Update(dt float64, in Input, surfaceY float64) {
	c.in = in
	c.surfaceY = surfaceY
	if in.Hold {
		c.everHadInput = true
	}
	c.fsm.Update(c, dt)
}

// rate resolves the release quality exactly once per cycle
func (c *Cycle) rate() core.Rating {
	if c.rating != core.RatingNone {
		return c.rating
	}
	switch {
	case c.holdLockout || c.chargeEfficiency <= c.cfg.Jump.DeadEfficiency:
		c.rating = core.RatingFailed
	case c.isInYellowZone && !c.reachedPeak:
		c.rating = core.RatingPerfect
	case c.reachedPeak && c.postPeakHoldTime <= c.params.SweetGrace:
		c.rating = core.RatingPerfect
	default:
		c.rating = core.RatingNormal
	}
	return c.rating
}

func (c *Cycle) report(settled bool) LandingReport {
	return LandingReport{
		FallHeightM:  c.cfg.World.PixelsToMeters(c.apexHeightOfFall),
		Rating:       c.rating,
		HoldLockout:  c.holdLockout,
		Settled:      settled,
		EverHadInput: c.everHadInput,
		Streak:       c.perfectStreak,
	}
}

// --- Read access for the scene, ground and observers ---

func (c *Cycle) State() fsm.StateID { return c.fsm.Active() }
func (c *Cycle) StateName() string { return c.fsm.ActiveName() }
func (c *Cycle) Compression() float64 { return c.compression }
func (c *Cycle) TargetCompression() float64 { return c.targetCompression }

// CompressionRatio is compression over target in [0,1]
func (c *Cycle) CompressionRatio() float64 {
	if c.targetCompression <= 0 {
		return 0
	}
	return c.compression / c.targetCompression
}

func (c *Cycle) ReachedPeak() bool { return c.reachedPeak }
func (c *Cycle) HoldLockout() bool { return c.holdLockout }
func (c *Cycle) ChargeEfficiency() float64 { return c.chargeEfficiency }
func (c *Cycle) InYellowZone() bool { return c.isInYellowZone }
func (c *Cycle) PostPeakHoldTime() float64 { return c.postPeakHoldTime }
func (c *Cycle) Rating() core.Rating { return c.rating }
func (c *Cycle) Params() Params { return c.params }
func (c *Cycle) PerfectStreak() int { return c.perfectStreak }
func (c *Cycle) LastLaunch() LaunchResult { return c.lastLaunch }

// ApexHeightOfFall is the height in px the current cycle fell from
func (c *Cycle) ApexHeightOfFall() float64 { return c.apexHeightOfFall }

// Altitude is the player's feet altitude (px)
func (c *Cycle) Altitude() float64 { return c.body.Y }

// VelocityY is the vertical velocity, positive upward (px/s)
func (c *Cycle) VelocityY() float64 { return c.body.VY }

// Airborne reports whether the player is in flight
func (c *Cycle) Airborne() bool { return c.fsm.Active() == StateAirborne }

// DampVelocity scales the vertical velocity (cloud contact)
func (c *Cycle) DampVelocity(factor float64) {
	c.body.VY *= factor
}

// PressRatio is the fast-fall share of the current or last fall
func (c *Cycle) PressRatio() float64 {
	return PressRatio(c.fastFallDistance, c.fallDistance)
}
