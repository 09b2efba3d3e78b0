package hunter

import "math"

// LevelRequirement is the experience needed to advance from level to level+1.
func LevelRequirement(level int) int {
	if req, ok := levelExpRequirements[level]; ok {
		return req
	}
	if level < 1 {
		return levelExpRequirements[1]
	}
	return int(1000 * math.Pow(1.5, float64(level-1)))
}

// LevelFromExperience consumes per-level requirements from a total experience
// figure and returns the level it lands on.
func LevelFromExperience(total int) int {
	level := 1
	for total >= LevelRequirement(level) {
		total -= LevelRequirement(level)
		level++
	}
	return level
}

// StatBonusForLevel is the number of spendable stat points granted when
// reaching the given level.
func StatBonusForLevel(level int) int {
	switch {
	case level <= 10:
		return 3
	case level <= 25:
		return 4
	case level <= 50:
		return 5
	default:
		return 6
	}
}

// RankForLevel maps a hunter level onto the rank ladder.
func RankForLevel(level int) Rank {
	switch {
	case level < 10:
		return RankE
	case level < 20:
		return RankD
	case level < 30:
		return RankC
	case level < 40:
		return RankB
	case level < 50:
		return RankA
	default:
		return RankS
	}
}

type LevelUpResult struct {
	LeveledUp        bool `json:"leveled_up"`
	OldLevel         int  `json:"old_level"`
	NewLevel         int  `json:"new_level"`
	ExperienceGained int  `json:"experience_gained"`
	StatPointsGained int  `json:"stat_points_gained"`
	RankedUp         bool `json:"ranked_up"`
	NewRank          Rank `json:"new_rank,omitempty"`
}

// GrantExperience adds experience to the player and applies any level-ups:
// stat points accumulate, rank is re-evaluated and vitals are re-derived and
// refilled. Experience is tracked as a running total.
func GrantExperience(p *Player, xp int) LevelUpResult {
	if xp < 0 {
		xp = 0
	}
	out := LevelUpResult{
		OldLevel:         p.Level,
		NewLevel:         p.Level,
		ExperienceGained: xp,
	}
	p.Experience += xp

	newLevel := LevelFromExperience(p.Experience)
	if newLevel <= p.Level {
		return out
	}

	points := 0
	for l := p.Level + 1; l <= newLevel; l++ {
		points += StatBonusForLevel(l)
	}
	out.LeveledUp = true
	out.NewLevel = newLevel
	out.StatPointsGained = points

	p.Level = newLevel
	p.StatPoints += points
	p.ExperienceToNext = LevelRequirement(newLevel)

	if rank := RankForLevel(newLevel); rank != p.Rank {
		out.RankedUp = true
		out.NewRank = rank
		p.Rank = rank
	}

	hp, mp := DeriveMaxVitals(*p)
	p.MaxHP, p.MaxMP = hp, mp
	p.HP, p.MP = hp, mp
	return out
}
