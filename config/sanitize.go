package config

import (
	"log/slog"

	"github.com/lixenwraith/coilhop/vmath"
)

// sanitizer replaces invalid entries with defaults and logs each fallback
type sanitizer struct {
	log   *slog.Logger
	fixed int
}

func (s *sanitizer) warn(key string, got, def any) {
	s.fixed++
	s.log.Warn("config value invalid, using default",
		slog.String("key", key),
		slog.Any("value", got),
		slog.Any("default", def),
	)
}

// positive requires a finite value > 0
func (s *sanitizer) positive(key string, v *float64, def float64) {
	if !vmath.IsFinite(*v) || *v <= 0 {
		s.warn(key, *v, def)
		*v = def
	}
}

// nonNegative requires a finite value >= 0
func (s *sanitizer) nonNegative(key string, v *float64, def float64) {
	if !vmath.IsFinite(*v) || *v < 0 {
		s.warn(key, *v, def)
		*v = def
	}
}

// unit requires a finite value in [0, 1]
func (s *sanitizer) unit(key string, v *float64, def float64) {
	if !vmath.IsFinite(*v) || *v < 0 || *v > 1 {
		s.warn(key, *v, def)
		*v = def
	}
}

func (s *sanitizer) count(key string, v *int, def int) {
	if *v < 1 {
		s.warn(key, *v, def)
		*v = def
	}
}

// Sanitize returns a copy with every invalid entry replaced by its default
// Simulation code relies on the result for its epsilon guards
func (c Config) Sanitize(log *slog.Logger) Config {
	if log == nil {
		log = slog.Default()
	}
	d := DefaultConfig()
	s := &sanitizer{log: log}

	w := &c.World
	s.positive("world.pixelsPerMeter", &w.PixelsPerMeter, d.World.PixelsPerMeter)
	s.positive("world.screenWidth", &w.ScreenWidth, d.World.ScreenWidth)
	s.count("world.laneCount", &w.LaneCount, d.World.LaneCount)
	s.unit("world.centerLaneNudge", &w.CenterLaneNudge, d.World.CenterLaneNudge)
	s.nonNegative("world.laneMargin", &w.LaneMargin, d.World.LaneMargin)
	s.positive("world.gravity", &w.Gravity, d.World.Gravity)
	s.positive("world.fastFallGravityScale", &w.FastFallGravityScale, d.World.FastFallGravityScale)
	s.positive("world.playerLaneSpeed", &w.PlayerLaneSpeed, d.World.PlayerLaneSpeed)
	s.positive("world.playerRadius", &w.PlayerRadius, d.World.PlayerRadius)
	if 2*w.LaneMargin >= w.ScreenWidth/float64(w.LaneCount) {
		s.warn("world.laneMargin", w.LaneMargin, 0)
		w.LaneMargin = 0
	}

	j := &c.Jump
	s.positive("jump.targetCompression", &j.TargetCompression, d.Jump.TargetCompression)
	s.unit("jump.yellowZoneRatio", &j.YellowZoneRatio, d.Jump.YellowZoneRatio)
	s.unit("jump.peakRatio", &j.PeakRatio, d.Jump.PeakRatio)
	if j.PeakRatio <= j.YellowZoneRatio {
		s.warn("jump.peakRatio", j.PeakRatio, d.Jump.PeakRatio)
		j.YellowZoneRatio, j.PeakRatio = d.Jump.YellowZoneRatio, d.Jump.PeakRatio
	}
	s.positive("jump.settleEpsilon", &j.SettleEpsilon, d.Jump.SettleEpsilon)
	s.positive("jump.relaxRate", &j.RelaxRate, d.Jump.RelaxRate)
	s.positive("jump.overHoldAccelTime", &j.OverHoldAccelTime, d.Jump.OverHoldAccelTime)
	s.nonNegative("jump.efficiencyDecay", &j.EfficiencyDecay, d.Jump.EfficiencyDecay)
	s.unit("jump.deadEfficiency", &j.DeadEfficiency, d.Jump.DeadEfficiency)
	s.positive("jump.idleLaunchHeight", &j.IdleLaunchHeight, d.Jump.IdleLaunchHeight)

	df := &c.Difficulty
	s.positive("difficulty.heightRef", &df.HeightRef, d.Difficulty.HeightRef)
	s.positive("difficulty.compressTimeBase", &df.CompressTimeBase, d.Difficulty.CompressTimeBase)
	s.nonNegative("difficulty.compressTimeLogScale", &df.CompressTimeLogScale, d.Difficulty.CompressTimeLogScale)
	s.positive("difficulty.yellowDurationBase", &df.YellowDurationBase, d.Difficulty.YellowDurationBase)
	s.positive("difficulty.yellowDurationMin", &df.YellowDurationMin, d.Difficulty.YellowDurationMin)
	s.nonNegative("difficulty.yellowDurationLogScale", &df.YellowDurationLogScale, d.Difficulty.YellowDurationLogScale)
	s.positive("difficulty.sweetGraceBase", &df.SweetGraceBase, d.Difficulty.SweetGraceBase)
	s.positive("difficulty.sweetGraceMin", &df.SweetGraceMin, d.Difficulty.SweetGraceMin)
	s.positive("difficulty.failHoldBase", &df.FailHoldBase, d.Difficulty.FailHoldBase)
	s.positive("difficulty.failHoldMin", &df.FailHoldMin, d.Difficulty.FailHoldMin)
	s.nonNegative("difficulty.logScale", &df.LogScale, d.Difficulty.LogScale)
	if !vmath.IsFinite(df.Max) || df.Max < 1 {
		s.warn("difficulty.max", df.Max, d.Difficulty.Max)
		df.Max = d.Difficulty.Max
	}
	s.nonNegative("difficulty.overHoldGainBase", &df.OverHoldGainBase, d.Difficulty.OverHoldGainBase)
	s.nonNegative("difficulty.overHoldGainSlope", &df.OverHoldGainSlope, d.Difficulty.OverHoldGainSlope)
	if df.SweetGraceMin > df.SweetGraceBase {
		s.warn("difficulty.sweetGraceMin", df.SweetGraceMin, df.SweetGraceBase)
		df.SweetGraceMin = df.SweetGraceBase
	}
	if df.FailHoldMin > df.FailHoldBase {
		s.warn("difficulty.failHoldMin", df.FailHoldMin, df.FailHoldBase)
		df.FailHoldMin = df.FailHoldBase
	}

	l := &c.Launch
	s.nonNegative("launch.perfectNoPressFactor", &l.PerfectNoPressFactor, d.Launch.PerfectNoPressFactor)
	s.nonNegative("launch.growthBase", &l.GrowthBase, d.Launch.GrowthBase)
	s.nonNegative("launch.growthLogScale", &l.GrowthLogScale, d.Launch.GrowthLogScale)
	s.positive("launch.growthLogRef", &l.GrowthLogRef, d.Launch.GrowthLogRef)
	s.count("launch.streakThreshold", &l.StreakThreshold, d.Launch.StreakThreshold)
	s.positive("launch.streakMultiplier", &l.StreakMultiplier, d.Launch.StreakMultiplier)
	s.nonNegative("launch.normalHeightFactor", &l.NormalHeightFactor, d.Launch.NormalHeightFactor)
	s.nonNegative("launch.failedHeightFactor", &l.FailedHeightFactor, d.Launch.FailedHeightFactor)
	s.positive("launch.minLaunchHeight", &l.MinLaunchHeight, d.Launch.MinLaunchHeight)
	s.nonNegative("launch.baseLaunchVelocity", &l.BaseLaunchVelocity, d.Launch.BaseLaunchVelocity)
	s.positive("launch.softCapVelocity", &l.SoftCapVelocity, d.Launch.SoftCapVelocity)
	s.unit("launch.softCapFactor", &l.SoftCapFactor, d.Launch.SoftCapFactor)
	s.positive("launch.hardCapVelocity", &l.HardCapVelocity, d.Launch.HardCapVelocity)

	dm := &c.Damage
	s.nonNegative("damage.safeFallHeight", &dm.SafeFallHeight, d.Damage.SafeFallHeight)
	s.positive("damage.instantDeathHeight", &dm.InstantDeathHeight, d.Damage.InstantDeathHeight)
	if dm.InstantDeathHeight <= dm.SafeFallHeight {
		s.warn("damage.instantDeathHeight", dm.InstantDeathHeight, d.Damage.InstantDeathHeight)
		dm.SafeFallHeight, dm.InstantDeathHeight = d.Damage.SafeFallHeight, d.Damage.InstantDeathHeight
	}

	g := &c.Ground
	s.positive("ground.blockSize", &g.BlockSize, d.Ground.BlockSize)
	if g.ColumnMargin < 0 {
		s.warn("ground.columnMargin", g.ColumnMargin, d.Ground.ColumnMargin)
		g.ColumnMargin = d.Ground.ColumnMargin
	}
	s.nonNegative("ground.tension", &g.Tension, d.Ground.Tension)
	s.positive("ground.stiffness", &g.Stiffness, d.Ground.Stiffness)
	s.positive("ground.damping", &g.Damping, d.Ground.Damping)
	s.positive("ground.maxOffset", &g.MaxOffset, d.Ground.MaxOffset)
	s.unit("ground.upwardRatio", &g.UpwardRatio, d.Ground.UpwardRatio)
	s.nonNegative("ground.pressureScale", &g.PressureScale, d.Ground.PressureScale)
	if g.ForceRadius < 0 {
		s.warn("ground.forceRadius", g.ForceRadius, d.Ground.ForceRadius)
		g.ForceRadius = d.Ground.ForceRadius
	}
	s.positive("ground.forceSigma", &g.ForceSigma, d.Ground.ForceSigma)
	s.count("ground.subSteps", &g.SubSteps, d.Ground.SubSteps)
	s.positive("ground.rippleFrequency", &g.RippleFrequency, d.Ground.RippleFrequency)
	s.positive("ground.rippleDampingRatio", &g.RippleDampingRatio, d.Ground.RippleDampingRatio)
	s.unit("ground.rippleCoupling", &g.RippleCoupling, d.Ground.RippleCoupling)
	if g.RippleRadius < 0 {
		s.warn("ground.rippleRadius", g.RippleRadius, d.Ground.RippleRadius)
		g.RippleRadius = d.Ground.RippleRadius
	}
	s.nonNegative("ground.rippleImpactScale", &g.RippleImpactScale, d.Ground.RippleImpactScale)

	dr := &c.Director
	s.nonNegative("director.minApex", &dr.MinApex, d.Director.MinApex)
	s.unit("director.rangeStartFactor", &dr.RangeStartFactor, d.Director.RangeStartFactor)
	s.unit("director.rangeEndBase", &dr.RangeEndBase, d.Director.RangeEndBase)
	s.unit("director.rangeEndMin", &dr.RangeEndMin, d.Director.RangeEndMin)
	if dr.RangeEndMin <= dr.RangeStartFactor || dr.RangeEndBase < dr.RangeEndMin {
		s.warn("director.rangeEnd", dr.RangeEndMin, d.Director.RangeEndMin)
		dr.RangeStartFactor = d.Director.RangeStartFactor
		dr.RangeEndBase, dr.RangeEndMin = d.Director.RangeEndBase, d.Director.RangeEndMin
	}
	s.positive("director.rangeEndTau", &dr.RangeEndTau, d.Director.RangeEndTau)
	s.count("director.baseCount", &dr.BaseCount, d.Director.BaseCount)
	s.positive("director.countRefHeight", &dr.CountRefHeight, d.Director.CountRefHeight)
	s.nonNegative("director.countGrowthFactor", &dr.CountGrowthFactor, d.Director.CountGrowthFactor)
	if dr.MaxCount < dr.BaseCount {
		s.warn("director.maxCount", dr.MaxCount, dr.BaseCount)
		dr.MaxCount = dr.BaseCount
	}
	s.positive("director.speedRefHeight", &dr.SpeedRefHeight, d.Director.SpeedRefHeight)
	s.nonNegative("director.speedGrowthFactor", &dr.SpeedGrowthFactor, d.Director.SpeedGrowthFactor)
	if !vmath.IsFinite(dr.MaxSpeedMultiplier) || dr.MaxSpeedMultiplier < 1 {
		s.warn("director.maxSpeedMultiplier", dr.MaxSpeedMultiplier, d.Director.MaxSpeedMultiplier)
		dr.MaxSpeedMultiplier = d.Director.MaxSpeedMultiplier
	}
	s.nonNegative("director.typeWeightMin", &dr.TypeWeightMin, d.Director.TypeWeightMin)
	s.positive("director.baseSpacing", &dr.BaseSpacing, d.Director.BaseSpacing)
	s.positive("director.spacingBonusRef", &dr.SpacingBonusRef, d.Director.SpacingBonusRef)
	s.nonNegative("director.spacingMaxBonus", &dr.SpacingMaxBonus, d.Director.SpacingMaxBonus)
	s.nonNegative("director.sameSideBonus", &dr.SameSideBonus, d.Director.SameSideBonus)
	s.nonNegative("director.diagonalBonus", &dr.DiagonalBonus, d.Director.DiagonalBonus)
	s.nonNegative("director.spawnJitter", &dr.SpawnJitter, d.Director.SpawnJitter)
	if !validCurve(dr.AlternateChance) {
		s.warn("director.alternateChance", dr.AlternateChance, d.Director.AlternateChance)
		dr.AlternateChance = d.Director.AlternateChance
	}

	m := &c.Monster
	s.nonNegative("monster.baseSpeed", &m.BaseSpeed, d.Monster.BaseSpeed)
	s.positive("monster.turnMin", &m.TurnMin, d.Monster.TurnMin)
	s.positive("monster.turnMax", &m.TurnMax, d.Monster.TurnMax)
	if m.TurnMax < m.TurnMin {
		s.warn("monster.turnMax", m.TurnMax, m.TurnMin)
		m.TurnMax = m.TurnMin
	}
	s.positive("monster.bodyRadius", &m.BodyRadius, d.Monster.BodyRadius)
	s.positive("monster.chaseRadius", &m.ChaseRadius, d.Monster.ChaseRadius)
	s.nonNegative("monster.chaseTriggerMargin", &m.ChaseTriggerMargin, d.Monster.ChaseTriggerMargin)
	s.nonNegative("monster.chaseBaseSpeed", &m.ChaseBaseSpeed, d.Monster.ChaseBaseSpeed)
	s.nonNegative("monster.chaseAccel", &m.ChaseAccel, d.Monster.ChaseAccel)
	s.positive("monster.chaseMaxSpeed", &m.ChaseMaxSpeed, d.Monster.ChaseMaxSpeed)
	s.nonNegative("monster.spawnGrace", &m.SpawnGrace, d.Monster.SpawnGrace)
	s.nonNegative("monster.debuffInterval", &m.DebuffInterval, d.Monster.DebuffInterval)

	cb := &c.Combat
	s.nonNegative("combat.attackImpactDelay", &cb.AttackImpactDelay, d.Combat.AttackImpactDelay)
	s.nonNegative("combat.attackCooldown", &cb.AttackCooldown, d.Combat.AttackCooldown)
	s.positive("combat.attackReach", &cb.AttackReach, d.Combat.AttackReach)
	s.nonNegative("combat.attackBackTolerance", &cb.AttackBackTolerance, d.Combat.AttackBackTolerance)
	s.positive("combat.attackVerticalTolerance", &cb.AttackVerticalTolerance, d.Combat.AttackVerticalTolerance)
	s.nonNegative("combat.attackSwingGrace", &cb.AttackSwingGrace, d.Combat.AttackSwingGrace)
	s.nonNegative("combat.killImmunity", &cb.KillImmunity, d.Combat.KillImmunity)
	s.nonNegative("combat.hitGrace", &cb.HitGrace, d.Combat.HitGrace)
	s.count("combat.poisonMaxStacks", &cb.PoisonMaxStacks, d.Combat.PoisonMaxStacks)
	s.positive("combat.poisonDuration", &cb.PoisonDuration, d.Combat.PoisonDuration)
	s.unit("combat.cloudVelocityDamping", &cb.CloudVelocityDamping, d.Combat.CloudVelocityDamping)
	s.unit("combat.bulletTimeScale", &cb.BulletTimeScale, d.Combat.BulletTimeScale)
	if cb.BulletTimeScale == 0 {
		s.warn("combat.bulletTimeScale", cb.BulletTimeScale, d.Combat.BulletTimeScale)
		cb.BulletTimeScale = d.Combat.BulletTimeScale
	}
	s.nonNegative("combat.bulletTimeAutoApex", &cb.BulletTimeAutoApex, d.Combat.BulletTimeAutoApex)
	s.unit("combat.bulletTimeMinEnergy", &cb.BulletTimeMinEnergy, d.Combat.BulletTimeMinEnergy)
	s.nonNegative("combat.bulletTimeDrainRate", &cb.BulletTimeDrainRate, d.Combat.BulletTimeDrainRate)
	s.unit("combat.bulletTimeKillRefund", &cb.BulletTimeKillRefund, d.Combat.BulletTimeKillRefund)

	ck := &c.Clock
	if ck.FixedStep <= 0 {
		s.warn("clock.fixedStep", ck.FixedStep, d.Clock.FixedStep)
		ck.FixedStep = d.Clock.FixedStep
	}
	s.count("clock.maxStepsPerFrame", &ck.MaxStepsPerFrame, d.Clock.MaxStepsPerFrame)

	if s.fixed > 0 {
		log.Debug("config sanitized", slog.Int("replaced", s.fixed))
	}
	return c
}

// validCurve requires at least one point, finite values and strictly ascending heights
func validCurve(pts []CurvePoint) bool {
	if len(pts) == 0 {
		return false
	}
	for _, p := range pts {
		if !vmath.IsFinite(p.Height) || !vmath.IsFinite(p.Chance) {
			return false
		}
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Height <= pts[i-1].Height {
			return false
		}
	}
	return true
}
