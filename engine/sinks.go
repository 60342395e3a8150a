package engine

import (
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/jump"
)

// HealthSink receives the resolved outcome of every charge cycle
type HealthSink interface {
	OnLanding(report jump.LandingReport, dmg jump.Damage)
}

// PickupSink receives one call per killed monster for drop spawning
type PickupSink interface {
	OnMonsterDeath(x, y float64, t core.MonsterType, dropMultiplier float64)
}

// BulletTimeSink decides slow motion from launches and kills
type BulletTimeSink interface {
	OnLaunch(rating core.Rating, apexM float64)
	OnKills(n int)
	OnLand()
	Tick(dt float64)
	TimeScale() float64
}

type nopHealth struct{}

func (nopHealth) OnLanding(jump.LandingReport, jump.Damage) {}

type nopPickup struct{}

func (nopPickup) OnMonsterDeath(float64, float64, core.MonsterType, float64) {}
