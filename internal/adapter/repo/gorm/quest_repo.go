package gormrepo

import (
	"context"
	"errors"

	"shadowrise/internal/adapter/repo/gorm/model"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/quest"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyQuestRepo struct {
	db *gorm.DB
}

func NewDailyQuestRepo(db *gorm.DB) DailyQuestRepo {
	return DailyQuestRepo{db: db}
}

func (r DailyQuestRepo) GetCurrent(ctx context.Context, playerID string) (quest.DailyQuest, error) {
	var m model.DailyQuest
	err := dbFrom(ctx, r.db).
		Where("player_id = ?", playerID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
		}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quest.DailyQuest{}, ports.ErrNotFound
		}
		return quest.DailyQuest{}, err
	}
	return questFromModel(m), nil
}

func (r DailyQuestRepo) GetByID(ctx context.Context, playerID, questID string) (quest.DailyQuest, error) {
	var m model.DailyQuest
	err := dbFrom(ctx, r.db).
		Where("id = ? AND player_id = ?", questID, playerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quest.DailyQuest{}, ports.ErrNotFound
		}
		return quest.DailyQuest{}, err
	}
	return questFromModel(m), nil
}

func (r DailyQuestRepo) GetPenaltyCandidate(ctx context.Context, playerID string) (quest.DailyQuest, error) {
	var m model.DailyQuest
	err := dbFrom(ctx, r.db).
		Where("player_id = ? AND penalty_served = false AND state IN ?", playerID,
			[]string{string(quest.StateFailed), string(quest.StatePenaltyActive)}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
		}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quest.DailyQuest{}, ports.ErrNotFound
		}
		return quest.DailyQuest{}, err
	}
	return questFromModel(m), nil
}

func (r DailyQuestRepo) SaveWithVersion(ctx context.Context, q quest.DailyQuest, expectedVersion int64) error {
	db := dbFrom(ctx, r.db)
	m := questToModel(q)
	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.DailyQuest{}).
		Where("id = ? AND version = ?", q.ID, expectedVersion).
		Updates(map[string]any{
			"pushups":        m.Pushups,
			"situps":         m.Situps,
			"running_km":     m.RunningKm,
			"state":          m.State,
			"reward_granted": m.RewardGranted,
			"penalty_served": m.PenaltyServed,
			"version":        m.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func questFromModel(m model.DailyQuest) quest.DailyQuest {
	return quest.DailyQuest{
		ID:            m.ID,
		PlayerID:      m.PlayerID,
		Date:          m.Date,
		Pushups:       int(m.Pushups),
		Situps:        int(m.Situps),
		RunningKM:     m.RunningKm,
		State:         quest.State(m.State),
		RewardGranted: m.RewardGranted,
		PenaltyServed: m.PenaltyServed,
		CreatedAt:     m.CreatedAt,
		Deadline:      m.Deadline,
		Version:       m.Version,
	}
}

func questToModel(q quest.DailyQuest) model.DailyQuest {
	return model.DailyQuest{
		ID:            q.ID,
		PlayerID:      q.PlayerID,
		Date:          q.Date,
		Pushups:       int32(q.Pushups),
		Situps:        int32(q.Situps),
		RunningKm:     q.RunningKM,
		State:         string(q.State),
		RewardGranted: q.RewardGranted,
		PenaltyServed: q.PenaltyServed,
		CreatedAt:     q.CreatedAt,
		Deadline:      q.Deadline,
		Version:       q.Version,
	}
}
