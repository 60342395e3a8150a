package parameter

// Monster motion
const (
	// MonsterBaseSpeed is the lateral patrol speed at speed multiplier 1 (px/s)
	MonsterBaseSpeed = 60.0

	// MonsterTurnMin and MonsterTurnMax bound the randomized direction reversal timer (s)
	MonsterTurnMin = 1.2
	MonsterTurnMax = 3.0

	// MonsterBodyRadius is the patrol collision radius (px)
	MonsterBodyRadius = 22.0

	// MonsterChaseRadius is the collision radius while pursuing (px)
	MonsterChaseRadius = 10.0
)

// Chase mode (A02)
const (
	// ChaseTriggerMargin is how far above a monster the player must be before pursuit starts (px)
	ChaseTriggerMargin = 40.0

	// ChaseBaseSpeed is the initial pursuit speed (px/s)
	ChaseBaseSpeed = 120.0

	// ChaseAccel is the pursuit speed gain (px/s²)
	ChaseAccel = 260.0

	// ChaseMaxSpeed caps pursuit speed before the speed multiplier (px/s)
	ChaseMaxSpeed = 520.0
)

// Debuff throttle
const (
	// MonsterSpawnGrace is the window after creation in which a monster cannot debuff (s)
	MonsterSpawnGrace = 0.3

	// MonsterDebuffInterval is the per-monster minimum time between debuffs (s)
	MonsterDebuffInterval = 1.0
)
