package engine

import (
	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/vmath"
)

// BulletTime is the slow-motion meter
// A PERFECT launch to a tall apex auto-activates it when enough energy is banked;
// it drains while active, refunds on kills and ends on landing
type BulletTime struct {
	cfg    config.CombatConfig
	energy float64
	active bool
}

var _ BulletTimeSink = (*BulletTime)(nil)

// NewBulletTime starts with a full meter
func NewBulletTime(cfg config.CombatConfig) *BulletTime {
	return &BulletTime{cfg: cfg, energy: 1}
}

func (b *BulletTime) OnLaunch(rating core.Rating, apexM float64) {
	if rating == core.RatingPerfect && apexM >= b.cfg.BulletTimeAutoApex && b.energy >= b.cfg.BulletTimeMinEnergy {
		b.active = true
	}
}

func (b *BulletTime) OnKills(n int) {
	if n <= 0 {
		return
	}
	b.energy = vmath.Clamp01(b.energy + float64(n)*b.cfg.BulletTimeKillRefund)
}

func (b *BulletTime) OnLand() { b.active = false }

// Tick drains energy by simulated dt while active
func (b *BulletTime) Tick(dt float64) {
	if !b.active || dt <= 0 {
		return
	}
	b.energy -= b.cfg.BulletTimeDrainRate * dt
	if b.energy <= 0 {
		b.energy = 0
		b.active = false
	}
}

func (b *BulletTime) TimeScale() float64 {
	if b.active {
		return b.cfg.BulletTimeScale
	}
	return 1
}

func (b *BulletTime) Active() bool { return b.active }

func (b *BulletTime) Energy() float64 { return b.energy }
