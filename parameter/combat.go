package parameter

// Sector attack
const (
	// AttackImpactDelay is the swing time between attack input and the impact frame (s)
	AttackImpactDelay = 0.08

	// AttackCooldown is the minimum time between swings (s)
	AttackCooldown = 0.35

	// AttackReach is the forward X range of a swing (px)
	AttackReach = 180.0

	// AttackBackTolerance is the backward X range still hit behind the player (px)
	AttackBackTolerance = 30.0

	// AttackVerticalTolerance is the half-height of the hit band (px)
	AttackVerticalTolerance = 90.0
)

// Immunity windows
const (
	// AttackSwingGrace ignores body contact from swing start (s)
	AttackSwingGrace = 0.25

	// KillImmunity ignores body contact after a swing kills anything (s)
	KillImmunity = 0.4

	// HitGrace ignores body contact after a debuff was applied (s)
	HitGrace = 0.6
)

// Debuff effects
const (
	// PoisonMaxStacks caps poison stacks
	PoisonMaxStacks = 3

	// PoisonDuration is the poison lifetime, refreshed on every new stack (s)
	PoisonDuration = 4.0

	// CloudVelocityDamping is the one-shot vertical velocity retention on cloud contact
	CloudVelocityDamping = 0.55
)

// Bullet time
const (
	// BulletTimeScale is the dt scale while bullet time is active
	BulletTimeScale = 0.35

	// BulletTimeAutoApex is the predicted apex in meters that auto-activates bullet time on PERFECT
	BulletTimeAutoApex = 300.0

	// BulletTimeMinEnergy is the energy required to activate
	BulletTimeMinEnergy = 0.25

	// BulletTimeDrainRate is energy spent per simulated second while active
	BulletTimeDrainRate = 0.4

	// BulletTimeKillRefund is energy refunded per kill
	BulletTimeKillRefund = 0.15
)
