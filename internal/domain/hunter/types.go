package hunter

import "time"

type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

type Stats struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`
	Sense        int `json:"sense"`
}

type ShadowArmy struct {
	Capacity int `json:"capacity"`
	Current  int `json:"current"`
}

type Guild struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Members  int    `json:"members"`
}

type Player struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Level            int        `json:"level"`
	Rank             Rank       `json:"rank"`
	Title            string     `json:"title"`
	Experience       int        `json:"experience"`
	ExperienceToNext int        `json:"experience_to_next"`
	Stats            Stats      `json:"stats"`
	StatPoints       int        `json:"stat_points"`
	HP               int        `json:"hp"`
	MaxHP            int        `json:"max_hp"`
	MP               int        `json:"mp"`
	MaxMP            int        `json:"max_mp"`
	ShadowArmy       ShadowArmy `json:"shadow_army"`
	Guild            Guild      `json:"guild"`
	Version          int64      `json:"version"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ShadowStats struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	HP      int `json:"hp"`
	MP      int `json:"mp"`
}

type Shadow struct {
	ID            string      `json:"id"`
	PlayerID      string      `json:"player_id"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	Level         int         `json:"level"`
	Rarity        Rarity      `json:"rarity"`
	Stats         ShadowStats `json:"stats"`
	Skills        []string    `json:"skills"`
	Loyalty       int         `json:"loyalty"`
	Experience    int         `json:"experience"`
	MaxExperience int         `json:"max_experience"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Enemy describes an extraction target: a defeated monster whose soul can be
// bound into the shadow army.
type Enemy struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Rarity      Rarity  `json:"rarity"`
	PowerLevel  int     `json:"power_level"`
	SuccessRate float64 `json:"success_rate"`
	ManaCost    int     `json:"mana_cost"`
}
