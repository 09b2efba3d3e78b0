package gormrepo

import (
	"context"

	"shadowrise/internal/adapter/repo/gorm/model"
	"shadowrise/internal/domain/hunter"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EquipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) EquipmentRepo {
	return EquipmentRepo{db: db}
}

func (r EquipmentRepo) ListByPlayer(ctx context.Context, playerID string) ([]hunter.Equipment, error) {
	rows := []model.Equipment{}
	err := dbFrom(ctx, r.db).
		Where("player_id = ?", playerID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]hunter.Equipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, equipmentFromModel(row))
	}
	return out, nil
}

// Save upserts on the item id. Equipment carries no version column; the
// owning player row anchors raid concurrency.
func (r EquipmentRepo) Save(ctx context.Context, e hunter.Equipment) error {
	m := equipmentToModel(e)
	return dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func equipmentFromModel(m model.Equipment) hunter.Equipment {
	return hunter.Equipment{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		Name:       m.Name,
		Type:       hunter.EquipmentType(m.Type),
		Category:   m.Category,
		Rarity:     hunter.Rarity(m.Rarity),
		Attack:     int(m.Attack),
		Defense:    int(m.Defense),
		Effect:     m.Effect,
		Durability: int(m.Durability),
		Equipped:   m.Equipped,
		CreatedAt:  m.CreatedAt,
	}
}

func equipmentToModel(e hunter.Equipment) model.Equipment {
	return model.Equipment{
		ID:         e.ID,
		PlayerID:   e.PlayerID,
		Name:       e.Name,
		Type:       string(e.Type),
		Category:   e.Category,
		Rarity:     string(e.Rarity),
		Attack:     int32(e.Attack),
		Defense:    int32(e.Defense),
		Effect:     e.Effect,
		Durability: int32(e.Durability),
		Equipped:   e.Equipped,
		CreatedAt:  e.CreatedAt,
	}
}
