package gormrepo

import (
	"context"
	"errors"

	"shadowrise/internal/adapter/repo/gorm/model"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/quest"

	"gorm.io/gorm"
)

type PenaltySessionRepo struct {
	db *gorm.DB
}

func NewPenaltySessionRepo(db *gorm.DB) PenaltySessionRepo {
	return PenaltySessionRepo{db: db}
}

func (r PenaltySessionRepo) GetByID(ctx context.Context, playerID, sessionID string) (quest.PenaltySession, error) {
	var m model.PenaltySession
	err := dbFrom(ctx, r.db).
		Where("id = ? AND player_id = ?", sessionID, playerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quest.PenaltySession{}, ports.ErrNotFound
		}
		return quest.PenaltySession{}, err
	}
	return sessionFromModel(m), nil
}

func (r PenaltySessionRepo) GetOpenByPlayer(ctx context.Context, playerID string) (quest.PenaltySession, error) {
	var m model.PenaltySession
	err := dbFrom(ctx, r.db).
		Where("player_id = ? AND status = ?", playerID, string(quest.PenaltySurviving)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quest.PenaltySession{}, ports.ErrNotFound
		}
		return quest.PenaltySession{}, err
	}
	return sessionFromModel(m), nil
}

func (r PenaltySessionRepo) SaveWithVersion(ctx context.Context, s quest.PenaltySession, expectedVersion int64) error {
	db := dbFrom(ctx, r.db)
	m := sessionToModel(s)
	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.PenaltySession{}).
		Where("id = ? AND version = ?", s.ID, expectedVersion).
		Updates(map[string]any{
			"status":                 m.Status,
			"progress_percent":       m.ProgressPercent,
			"remaining_minutes":      m.RemainingMinutes,
			"centipedes_encountered": m.CentipedesEncountered,
			"damage_taken":           m.DamageTaken,
			"version":                m.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func sessionFromModel(m model.PenaltySession) quest.PenaltySession {
	return quest.PenaltySession{
		ID:                    m.ID,
		PlayerID:              m.PlayerID,
		QuestID:               m.QuestID,
		Status:                quest.PenaltyStatus(m.Status),
		ProgressPercent:       m.ProgressPercent,
		RemainingMinutes:      int(m.RemainingMinutes),
		CentipedesEncountered: int(m.CentipedesEncountered),
		DamageTaken:           int(m.DamageTaken),
		DurationMinutes:       int(m.DurationMinutes),
		StartedAt:             m.StartedAt,
		Version:               m.Version,
	}
}

func sessionToModel(s quest.PenaltySession) model.PenaltySession {
	return model.PenaltySession{
		ID:                    s.ID,
		PlayerID:              s.PlayerID,
		QuestID:               s.QuestID,
		Status:                string(s.Status),
		ProgressPercent:       s.ProgressPercent,
		RemainingMinutes:      int32(s.RemainingMinutes),
		CentipedesEncountered: int32(s.CentipedesEncountered),
		DamageTaken:           int32(s.DamageTaken),
		DurationMinutes:       int32(s.DurationMinutes),
		StartedAt:             s.StartedAt,
		Version:               s.Version,
	}
}
