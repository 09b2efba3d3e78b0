package gormrepo

import (
	"context"
	"encoding/json"

	"shadowrise/internal/adapter/repo/gorm/model"
	"shadowrise/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []ports.EventRecord) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.DomainEvent{
			ID:         e.ID,
			PlayerID:   playerID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return dbFrom(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPlayer(ctx context.Context, playerID string, limit int) ([]ports.EventRecord, error) {
	rows := []model.DomainEvent{}
	query := dbFrom(ctx, r.db).
		Where("player_id = ?", playerID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.EventRecord, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ports.EventRecord{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
