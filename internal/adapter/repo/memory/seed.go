package memory

import (
	"time"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
)

// DemoPlayer returns the demo hunter used when no database is configured.
func DemoPlayer(now time.Time) hunter.Player {
	return hunter.Player{
		ID:               "player_1",
		Name:             "Sung Jin-Woo",
		Level:            47,
		Rank:             hunter.RankS,
		Title:            "Shadow Monarch",
		Experience:       89750,
		ExperienceToNext: 95000,
		Stats: hunter.Stats{
			Strength:     156,
			Agility:      142,
			Intelligence: 98,
			Vitality:     134,
			Sense:        87,
		},
		HP:         2680,
		MaxHP:      2680,
		MP:         980,
		MaxMP:      980,
		ShadowArmy: hunter.ShadowArmy{Capacity: 50, Current: 3},
		Guild:      hunter.Guild{Name: "Ahjin Guild", Position: "Guild Master", Members: 15},
		Version:    1,
		UpdatedAt:  now,
	}
}

// DemoShadows returns the demo hunter's named roster.
func DemoShadows(now time.Time) []hunter.Shadow {
	shadows := []hunter.Shadow{
		{
			ID: "shadow_1", PlayerID: "player_1",
			Name: "Igris", Type: "Knight", Level: 45, Rarity: hunter.RarityMythic,
			Stats:   hunter.ShadowStats{Attack: 890, Defense: 650, HP: 3200, MP: 800},
			Skills:  []string{"Flame Slash", "Shield Bash", "Intimidation"},
			Loyalty: 100, Experience: 45670, MaxExperience: 50000,
		},
		{
			ID: "shadow_2", PlayerID: "player_1",
			Name: "Iron", Type: "Warrior", Level: 42, Rarity: hunter.RarityLegendary,
			Stats:   hunter.ShadowStats{Attack: 720, Defense: 580, HP: 2800, MP: 600},
			Skills:  []string{"Berserker Rage", "Whirlwind", "Block"},
			Loyalty: 95, Experience: 42100, MaxExperience: 45000,
		},
		{
			ID: "shadow_3", PlayerID: "player_1",
			Name: "Tank", Type: "Shield Bearer", Level: 38, Rarity: hunter.RarityEpic,
			Stats:   hunter.ShadowStats{Attack: 450, Defense: 890, HP: 4200, MP: 400},
			Skills:  []string{"Taunt", "Shield Wall", "Protect"},
			Loyalty: 88, Experience: 38200, MaxExperience: 42000,
		},
	}
	for i := range shadows {
		shadows[i].CreatedAt = now
	}
	return shadows
}

// SeedDemoRoster loads the demo hunter and his named shadows so the server
// answers requests without a database behind it.
func SeedDemoRoster(store *Store, now time.Time) {
	store.SeedPlayer(DemoPlayer(now))
	for _, s := range DemoShadows(now) {
		store.SeedShadow(s)
	}
}

var (
	_ ports.PlayerRepository         = PlayerRepo{}
	_ ports.DailyQuestRepository     = DailyQuestRepo{}
	_ ports.PenaltySessionRepository = PenaltySessionRepo{}
	_ ports.ShadowRepository         = ShadowRepo{}
	_ ports.EquipmentRepository      = EquipmentRepo{}
	_ ports.EventRepository          = EventRepo{}
	_ ports.TxManager                = TxManager{}
)
