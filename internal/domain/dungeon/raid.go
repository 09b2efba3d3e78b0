package dungeon

import "shadowrise/internal/domain/hunter"

const (
	// A raid clears when the jittered power ratio reaches this threshold.
	successThreshold = 0.7

	rewardDivisor      = 10
	consolationDivisor = 50
	dropChance         = 0.3

	clearTimeMinSeconds = 300
	clearTimeMaxSeconds = 1800
)

type RaidResult struct {
	Success          bool              `json:"success"`
	SuccessRate      float64           `json:"success_rate"`
	ExperienceGained int               `json:"exp_gained"`
	DamageTaken      int               `json:"damage_taken"`
	ClearTimeSeconds int               `json:"clear_time,omitempty"`
	Drop             *hunter.Equipment `json:"equipment_drop,omitempty"`
}

// SimulateRaid resolves one dungeon run. The power ratio against the
// difficulty requirement, jittered ±20%, must reach the success threshold.
// A cleared dungeon pays a tenth of the required power in experience and
// rolls a 30% equipment drop; a failed run pays a fiftieth and bleeds at
// least a third of the hunter's current HP, never all of it.
func SimulateRaid(p hunter.Player, d Dungeon, rng hunter.Rand) RaidResult {
	required := RequiredPower(d.Difficulty)
	ratio := float64(hunter.CombatPower(p)) / float64(required)
	if ratio > 1 {
		ratio = 1
	}
	rate := ratio * uniform(rng, 0.8, 1.2)

	out := RaidResult{SuccessRate: rate}
	if rate >= successThreshold {
		out.Success = true
		out.ExperienceGained = required / rewardDivisor
		if rng.Float64() < dropChance {
			item := hunter.GenerateEquipment(p.Level, hunter.RollDropRarity(rng), rng)
			out.Drop = &item
		}
		out.ClearTimeSeconds = randint(rng, clearTimeMinSeconds, clearTimeMaxSeconds)
		out.DamageTaken = randint(rng, 0, p.HP/3)
	} else {
		out.ExperienceGained = required / consolationDivisor
		out.DamageTaken = randint(rng, p.HP/3, p.HP-1)
	}
	return out
}

func uniform(rng hunter.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randint draws an integer in [lo, hi] inclusive.
func randint(rng hunter.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	v := lo + int(rng.Float64()*float64(hi-lo+1))
	if v > hi {
		v = hi
	}
	return v
}
