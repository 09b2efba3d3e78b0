package gormrepo

import (
	"context"
	"errors"

	"shadowrise/internal/adapter/repo/gorm/model"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByID(ctx context.Context, playerID string) (hunter.Player, error) {
	var m model.Player
	if err := dbFrom(ctx, r.db).Where("id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hunter.Player{}, ports.ErrNotFound
		}
		return hunter.Player{}, err
	}
	return playerFromModel(m), nil
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, p hunter.Player, expectedVersion int64) error {
	db := dbFrom(ctx, r.db)
	m := playerToModel(p)
	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.Player{}).
		Where("id = ? AND version = ?", p.ID, expectedVersion).
		Updates(playerUpdates(m))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func playerFromModel(m model.Player) hunter.Player {
	return hunter.Player{
		ID:               m.ID,
		Name:             m.Name,
		Level:            int(m.Level),
		Rank:             hunter.Rank(m.Rank),
		Title:            m.Title,
		Experience:       int(m.Experience),
		ExperienceToNext: int(m.ExperienceToNext),
		Stats: hunter.Stats{
			Strength:     int(m.Strength),
			Agility:      int(m.Agility),
			Intelligence: int(m.Intelligence),
			Vitality:     int(m.Vitality),
			Sense:        int(m.Sense),
		},
		StatPoints: int(m.StatPoints),
		HP:         int(m.Hp),
		MaxHP:      int(m.MaxHp),
		MP:         int(m.Mp),
		MaxMP:      int(m.MaxMp),
		ShadowArmy: hunter.ShadowArmy{Capacity: int(m.ArmyCapacity), Current: int(m.ArmyCurrent)},
		Guild: hunter.Guild{
			Name:     m.GuildName,
			Position: m.GuildPosition,
			Members:  int(m.GuildMembers),
		},
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}
}

func playerToModel(p hunter.Player) model.Player {
	return model.Player{
		ID:               p.ID,
		Name:             p.Name,
		Level:            int32(p.Level),
		Rank:             string(p.Rank),
		Title:            p.Title,
		Experience:       int64(p.Experience),
		ExperienceToNext: int64(p.ExperienceToNext),
		Strength:         int32(p.Stats.Strength),
		Agility:          int32(p.Stats.Agility),
		Intelligence:     int32(p.Stats.Intelligence),
		Vitality:         int32(p.Stats.Vitality),
		Sense:            int32(p.Stats.Sense),
		StatPoints:       int32(p.StatPoints),
		Hp:               int32(p.HP),
		MaxHp:            int32(p.MaxHP),
		Mp:               int32(p.MP),
		MaxMp:            int32(p.MaxMP),
		ArmyCapacity:     int32(p.ShadowArmy.Capacity),
		ArmyCurrent:      int32(p.ShadowArmy.Current),
		GuildName:        p.Guild.Name,
		GuildPosition:    p.Guild.Position,
		GuildMembers:     int32(p.Guild.Members),
		Version:          p.Version,
		UpdatedAt:        p.UpdatedAt,
	}
}

func playerUpdates(m model.Player) map[string]any {
	return map[string]any{
		"name":               m.Name,
		"level":              m.Level,
		"rank":               m.Rank,
		"title":              m.Title,
		"experience":         m.Experience,
		"experience_to_next": m.ExperienceToNext,
		"strength":           m.Strength,
		"agility":            m.Agility,
		"intelligence":       m.Intelligence,
		"vitality":           m.Vitality,
		"sense":              m.Sense,
		"stat_points":        m.StatPoints,
		"hp":                 m.Hp,
		"max_hp":             m.MaxHp,
		"mp":                 m.Mp,
		"max_mp":             m.MaxMp,
		"army_capacity":      m.ArmyCapacity,
		"army_current":       m.ArmyCurrent,
		"guild_name":         m.GuildName,
		"guild_position":     m.GuildPosition,
		"guild_members":      m.GuildMembers,
		"version":            m.Version,
		"updated_at":         m.UpdatedAt,
	}
}
