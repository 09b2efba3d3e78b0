// Package dungeon holds the instant-dungeon catalog and the raid simulation.
package dungeon

import "shadowrise/internal/domain/hunter"

type Dungeon struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Difficulty       hunter.Rank `json:"difficulty"`
	RecommendedLevel int         `json:"recommended_level"`
	Monsters         []string    `json:"monsters"`
	Rewards          []string    `json:"rewards"`
}

// Catalog lists the gates currently open to hunters.
var Catalog = []Dungeon{
	{
		ID:               "dungeon_1",
		Name:             "Demon Castle",
		Difficulty:       hunter.RankS,
		RecommendedLevel: 45,
		Monsters:         []string{"Demon Soldiers", "Demon General", "Demon King"},
		Rewards:          []string{"Demon King's Equipment", "Shadow Essence", "Experience"},
	},
	{
		ID:               "dungeon_2",
		Name:             "Red Gate",
		Difficulty:       hunter.RankA,
		RecommendedLevel: 38,
		Monsters:         []string{"Ice Elves", "Ice Bears", "Ice Monarch"},
		Rewards:          []string{"Ice Crystals", "Cold Resistance Gear", "Experience"},
	},
	{
		ID:               "dungeon_3",
		Name:             "Jeju Island",
		Difficulty:       hunter.RankS,
		RecommendedLevel: 50,
		Monsters:         []string{"Ant Soldiers", "Ant Queen", "Ant King"},
		Rewards:          []string{"Ant King's Equipment", "Rare Materials", "Experience"},
	},
}

// ByID looks a dungeon up in the catalog.
func ByID(id string) (Dungeon, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Dungeon{}, false
}

// RequiredPower is the combat power a dungeon of the given difficulty expects.
func RequiredPower(r hunter.Rank) int {
	switch r {
	case hunter.RankE:
		return 100
	case hunter.RankD:
		return 300
	case hunter.RankC:
		return 800
	case hunter.RankB:
		return 2000
	case hunter.RankA:
		return 5000
	default:
		return 12000
	}
}
