package status

import "shadowrise/internal/domain/hunter"

type Request struct {
	PlayerID string
}

type Response struct {
	Player      hunter.Player      `json:"player"`
	CombatStats hunter.CombatStats `json:"combat_stats"`
	CombatPower int                `json:"combat_power"`
	XPBar       float64            `json:"xp_bar"`
	ShadowCount int                `json:"shadow_count"`
	Equipment   []hunter.Equipment `json:"equipment,omitempty"`
}
