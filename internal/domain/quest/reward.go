package quest

import "shadowrise/internal/domain/hunter"

// ApplyTo grants the bundle to a player: attributes land first so a level-up
// re-derives vitals from the improved vitality.
func (r Reward) ApplyTo(p *hunter.Player) hunter.LevelUpResult {
	p.Stats.Strength += r.Strength
	p.Stats.Vitality += r.Vitality
	p.Stats.Agility += r.Agility
	return hunter.GrantExperience(p, r.Experience)
}
