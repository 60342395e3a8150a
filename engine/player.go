package engine

import (
	"math"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/director"
)

// Player holds the lateral body and combat timers; vertical motion lives in the jump cycle
type Player struct {
	X      float64
	Lane   int
	Radius float64

	PoisonStacks int
	poisonUntil  float64

	// Body contact is ignored before this simulation time
	ImmuneUntil float64

	attackReadyAt float64
	pendingAttack core.Direction
	attackImpact  float64
}

func newPlayer(w config.WorldConfig, lanes director.Lanes) Player {
	lane := lanes.Count() / 2
	return Player{
		X:      lanes.Center(lane),
		Lane:   lane,
		Radius: w.PlayerRadius,
	}
}

// shiftLane moves the lane target by delta, clamped to the layout
func (p *Player) shiftLane(delta int, lanes director.Lanes) {
	if delta == 0 {
		return
	}
	p.Lane += delta
	if p.Lane < 0 {
		p.Lane = 0
	}
	if p.Lane >= lanes.Count() {
		p.Lane = lanes.Count() - 1
	}
}

// slide approaches the current lane center at the lane speed
func (p *Player) slide(target, speed, dt float64) {
	d := target - p.X
	step := speed * dt
	if math.Abs(d) <= step {
		p.X = target
		return
	}
	if d > 0 {
		p.X += step
	} else {
		p.X -= step
	}
}

func (p *Player) extendImmunity(until float64) {
	if until > p.ImmuneUntil {
		p.ImmuneUntil = until
	}
}

// poison adds a stack up to the cap and refreshes the duration
func (p *Player) poison(cc config.CombatConfig, now float64) {
	if p.PoisonStacks < cc.PoisonMaxStacks {
		p.PoisonStacks++
	}
	p.poisonUntil = now + cc.PoisonDuration
}

func (p *Player) expirePoison(now float64) {
	if p.PoisonStacks > 0 && now >= p.poisonUntil {
		p.PoisonStacks = 0
	}
}

// Poisoned reports whether any stack is active
func (p Player) Poisoned() bool { return p.PoisonStacks > 0 }

// AttackPending reports a swing waiting for its impact frame
func (p Player) AttackPending() bool { return p.pendingAttack != core.DirNone }
