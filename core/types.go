package core

// Rating is the release quality of one charge cycle
type Rating uint8

const (
	RatingNone Rating = iota
	RatingPerfect
	RatingNormal
	RatingFailed
)

func (r Rating) String() string {
	switch r {
	case RatingPerfect:
		return "PERFECT"
	case RatingNormal:
		return "NORMAL"
	case RatingFailed:
		return "FAILED"
	default:
		return "NONE"
	}
}

// CountMultiplier scales the director's spawn count for a launch of this rating
func (r Rating) CountMultiplier() float64 {
	switch r {
	case RatingPerfect:
		return 1.0
	case RatingNormal:
		return 0.5
	default:
		return 0
	}
}

// DropMultiplier scales material drops from monsters of a wave launched at this rating
func (r Rating) DropMultiplier() float64 {
	return r.CountMultiplier()
}

// MonsterType identifies a monster archetype
type MonsterType uint8

const (
	MonsterA01 MonsterType = iota
	MonsterA02
	MonsterA03
	MonsterCloudA
)

// AllMonsterTypes lists every archetype in weight-table order
var AllMonsterTypes = [...]MonsterType{MonsterA01, MonsterA02, MonsterA03, MonsterCloudA}

func (t MonsterType) String() string {
	switch t {
	case MonsterA01:
		return "A01"
	case MonsterA02:
		return "A02"
	case MonsterA03:
		return "A03"
	case MonsterCloudA:
		return "CloudA"
	default:
		return "unknown"
	}
}

// Poisons reports whether body contact with this type applies poison
func (t MonsterType) Poisons() bool {
	return t != MonsterCloudA
}

// Direction is a horizontal swipe or facing
type Direction int8

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Sign returns -1, 0 or 1 along the X axis
func (d Direction) Sign() float64 {
	return float64(d)
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
