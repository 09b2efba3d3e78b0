package hunter

import "math"

// Rand is the uniform-[0,1) source behind every stochastic outcome. Injected
// so extraction results are reproducible under test.
type Rand interface {
	Float64() float64
}

// EffectiveSuccessRate combines an enemy's base rate with the hunter's flat
// per-level bonus. The result never reaches certainty.
func EffectiveSuccessRate(enemy Enemy, playerLevel int) float64 {
	if playerLevel < 0 {
		playerLevel = 0
	}
	rate := enemy.SuccessRate + float64(playerLevel)*ExtractionLevelBonus
	return math.Min(ExtractionRateCap, rate)
}

// ResolveExtraction runs the single Bernoulli trial for an extraction attempt.
func ResolveExtraction(rate float64, rng Rand) bool {
	return rng.Float64() < rate
}

// ShadowFromEnemy builds the level-1 shadow a successful extraction yields.
// Stats scale off the enemy's power level.
func ShadowFromEnemy(enemy Enemy) Shadow {
	return Shadow{
		Name:   enemy.Name,
		Type:   enemy.Type,
		Level:  1,
		Rarity: enemy.Rarity,
		Stats: ShadowStats{
			Attack:  enemy.PowerLevel / 2,
			Defense: enemy.PowerLevel / 3,
			HP:      enemy.PowerLevel * 4,
			MP:      enemy.PowerLevel * 2,
		},
		Skills:        nil,
		Loyalty:       ShadowBaseLoyalty,
		Experience:    0,
		MaxExperience: ShadowBaseMaxXP,
	}
}

// UpgradeShadow consumes a full experience bar to raise the shadow one level.
// Returns false without mutating when the bar is not full.
func UpgradeShadow(s *Shadow) bool {
	if s.Experience < s.MaxExperience {
		return false
	}
	s.Experience -= s.MaxExperience
	s.MaxExperience = int(float64(s.MaxExperience) * ShadowUpgradeBarScale)
	s.Level++
	s.Stats.Attack = int(float64(s.Stats.Attack) * ShadowUpgradeStatScale)
	s.Stats.Defense = int(float64(s.Stats.Defense) * ShadowUpgradeStatScale)
	s.Stats.HP = int(float64(s.Stats.HP) * ShadowUpgradeStatScale)
	s.Stats.MP = int(float64(s.Stats.MP) * ShadowUpgradeStatScale)
	s.Loyalty += ShadowUpgradeLoyalty
	if s.Loyalty > ShadowLoyaltyCap {
		s.Loyalty = ShadowLoyaltyCap
	}
	return true
}
