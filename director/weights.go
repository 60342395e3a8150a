package director

import (
	"math"

	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/vmath"
)

// TypeWeight returns the spawn weight of a monster type at altitude h (m)
func TypeWeight(t core.MonsterType, h float64) float64 {
	switch t {
	case core.MonsterA01:
		switch {
		case h < 200:
			return 1
		case h < 600:
			return 1 - (h-200)/400
		}
		return 0

	case core.MonsterA02:
		switch {
		case h >= 200 && h < 600:
			return (h - 200) / 400
		case h >= 600 && h < 1000:
			return math.Exp(-3 * (h - 600) / 400)
		}
		return 0

	case core.MonsterA03:
		switch {
		case h >= 1000:
			return 1
		case h >= 600:
			return (h - 600) / 400
		}
		return 0

	case core.MonsterCloudA:
		switch {
		case h >= 400 && h < 800:
			return (h - 400) / 400
		case h >= 800 && h < 1100:
			return 1 - 0.9*(h-800)/300
		}
		return 0
	}
	return 0
}

// PickType draws one type at altitude h among types weighing more than minWeight
// Falls back to the high-altitude type when no type qualifies
func PickType(rng vmath.Rand, h, minWeight float64) core.MonsterType {
	var weights [len(core.AllMonsterTypes)]float64
	total := 0.0
	for i, t := range core.AllMonsterTypes {
		if w := TypeWeight(t, h); w > minWeight {
			weights[i] = w
			total += w
		}
	}
	if total <= 0 {
		return core.MonsterA03
	}

	r := rng.Float64() * total
	for i, w := range weights {
		if w == 0 {
			continue
		}
		if r < w {
			return core.AllMonsterTypes[i]
		}
		r -= w
	}
	// Float residue lands on the last candidate
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return core.AllMonsterTypes[i]
		}
	}
	return core.MonsterA03
}
