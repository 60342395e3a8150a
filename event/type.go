package event

// EventType represents the type of simulation event
type EventType int

const (
	EventNone EventType = iota

	// EventLaunched signals the player left the ground
	// Trigger: Charge cycle release
	// Consumer: Scene (wave spawn, bullet time), sandbox log | Payload: *LaunchedPayload
	EventLaunched

	// EventResolved signals a charge cycle ended with a rating
	// Trigger: Release or settle | Payload: *ResolvedPayload
	EventResolved

	// EventLanded signals ground contact after a flight
	// Trigger: Airborne state on surface contact
	// Consumer: Scene (damage, cleanup, ripple) | Payload: *LandedPayload
	EventLanded

	// EventWaveSpawned signals the director placed a wave
	// Payload: *WaveSpawnedPayload
	EventWaveSpawned

	// EventWaveCleared signals landing cleanup removed the remaining wave
	// Payload: *WaveClearedPayload
	EventWaveCleared

	// EventMonsterKilled signals one monster died to a sector swing
	// Consumer: Pickup sink | Payload: *MonsterKilledPayload
	EventMonsterKilled

	// EventDebuffApplied signals body contact from a monster
	// Payload: *DebuffAppliedPayload
	EventDebuffApplied

	// EventPlayerDamaged signals non-lethal fall damage
	// Payload: *DamagePayload
	EventPlayerDamaged

	// EventInstantDeath signals a lethal landing
	// Payload: *DamagePayload
	EventInstantDeath

	// EventBulletTime toggles slow motion
	// Payload: *BulletTimePayload
	EventBulletTime
)

var eventNames = map[EventType]string{
	EventNone:          "None",
	EventLaunched:      "Launched",
	EventResolved:      "Resolved",
	EventLanded:        "Landed",
	EventWaveSpawned:   "WaveSpawned",
	EventWaveCleared:   "WaveCleared",
	EventMonsterKilled: "MonsterKilled",
	EventDebuffApplied: "DebuffApplied",
	EventPlayerDamaged: "PlayerDamaged",
	EventInstantDeath:  "InstantDeath",
	EventBulletTime:    "BulletTime",
}

func (t EventType) String() string {
	if n, ok := eventNames[t]; ok {
		return n
	}
	return "Unknown"
}

// ParseEventType resolves a name as printed by String
func ParseEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return t, true
		}
	}
	return EventNone, false
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Fixed-step tick the event was raised on
	RunID   string
}
