package hunter

import "math"

type CombatStats struct {
	AttackPower int `json:"attack_power"`
	Defense     int `json:"defense"`
	MagicPower  int `json:"magic_power"`
}

// DeriveCombatStats maps raw attributes to displayed combat values.
func DeriveCombatStats(p Player) CombatStats {
	return CombatStats{
		AttackPower: int(float64(p.Stats.Strength) * AttackPerStrength),
		Defense:     int(float64(p.Stats.Vitality) * DefensePerVitality),
		MagicPower:  int(float64(p.Stats.Intelligence) * MagicPerIntelligence),
	}
}

// XPBar returns the experience bar fill ratio, clamped to [0,1]. Display only.
func XPBar(p Player) float64 {
	if p.ExperienceToNext <= 0 {
		return 0
	}
	ratio := float64(p.Experience) / float64(p.ExperienceToNext)
	return math.Min(1, math.Max(0, ratio))
}

// CombatPower is the aggregate power score used for rankings and dungeon
// difficulty checks.
func CombatPower(p Player) int {
	base := float64(p.Stats.Strength)*2 +
		float64(p.Stats.Agility)*1.5 +
		float64(p.Stats.Intelligence)*1.8 +
		float64(p.Stats.Vitality)*1.2 +
		float64(p.Stats.Sense)*1.0
	return int(base)
}

// DeriveMaxVitals computes max HP/MP from attributes and level.
func DeriveMaxVitals(p Player) (hp, mp int) {
	hp = BaseHP + p.Stats.Vitality*HPPerVitality + p.Level*HPPerLevel
	mp = BaseMP + p.Stats.Intelligence*MPPerIntelligence + p.Level*MPPerLevel
	return hp, mp
}
