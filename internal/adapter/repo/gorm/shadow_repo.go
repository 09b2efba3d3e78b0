package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"shadowrise/internal/adapter/repo/gorm/model"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShadowRepo struct {
	db *gorm.DB
}

func NewShadowRepo(db *gorm.DB) ShadowRepo {
	return ShadowRepo{db: db}
}

func (r ShadowRepo) GetByID(ctx context.Context, playerID, shadowID string) (hunter.Shadow, error) {
	var m model.Shadow
	err := dbFrom(ctx, r.db).
		Where("id = ? AND player_id = ?", shadowID, playerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hunter.Shadow{}, ports.ErrNotFound
		}
		return hunter.Shadow{}, err
	}
	return shadowFromModel(m), nil
}

func (r ShadowRepo) ListByPlayer(ctx context.Context, playerID string) ([]hunter.Shadow, error) {
	rows := []model.Shadow{}
	err := dbFrom(ctx, r.db).
		Where("player_id = ?", playerID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]hunter.Shadow, 0, len(rows))
	for _, row := range rows {
		out = append(out, shadowFromModel(row))
	}
	return out, nil
}

// Save upserts on the shadow id. Shadows carry no version column; the owning
// player row is the concurrency anchor for extraction.
func (r ShadowRepo) Save(ctx context.Context, s hunter.Shadow) error {
	m := shadowToModel(s)
	return dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func shadowFromModel(m model.Shadow) hunter.Shadow {
	var skills []string
	if len(m.Skills) > 0 {
		_ = json.Unmarshal(m.Skills, &skills)
	}
	return hunter.Shadow{
		ID:       m.ID,
		PlayerID: m.PlayerID,
		Name:     m.Name,
		Type:     m.Type,
		Level:    int(m.Level),
		Rarity:   hunter.Rarity(m.Rarity),
		Stats: hunter.ShadowStats{
			Attack:  int(m.Attack),
			Defense: int(m.Defense),
			HP:      int(m.Hp),
			MP:      int(m.Mp),
		},
		Skills:        skills,
		Loyalty:       int(m.Loyalty),
		Experience:    int(m.Experience),
		MaxExperience: int(m.MaxExperience),
		CreatedAt:     m.CreatedAt,
	}
}

func shadowToModel(s hunter.Shadow) model.Shadow {
	var skills []byte
	if len(s.Skills) > 0 {
		skills, _ = json.Marshal(s.Skills)
	}
	return model.Shadow{
		ID:            s.ID,
		PlayerID:      s.PlayerID,
		Name:          s.Name,
		Type:          s.Type,
		Level:         int32(s.Level),
		Rarity:        string(s.Rarity),
		Attack:        int32(s.Stats.Attack),
		Defense:       int32(s.Stats.Defense),
		Hp:            int32(s.Stats.HP),
		Mp:            int32(s.Stats.MP),
		Skills:        skills,
		Loyalty:       int32(s.Loyalty),
		Experience:    int64(s.Experience),
		MaxExperience: int64(s.MaxExperience),
		CreatedAt:     s.CreatedAt,
	}
}
