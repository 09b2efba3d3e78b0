package memory

import (
	"context"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/quest"
)

type DailyQuestRepo struct {
	store *Store
}

func NewDailyQuestRepo(store *Store) DailyQuestRepo {
	return DailyQuestRepo{store: store}
}

func (r DailyQuestRepo) GetCurrent(ctx context.Context, playerID string) (quest.DailyQuest, error) {
	defer r.store.rlock(ctx)()
	quests := r.store.quests[playerID]
	if len(quests) == 0 {
		return quest.DailyQuest{}, ports.ErrNotFound
	}
	return quests[len(quests)-1], nil
}

func (r DailyQuestRepo) GetByID(ctx context.Context, playerID, questID string) (quest.DailyQuest, error) {
	defer r.store.rlock(ctx)()
	for _, q := range r.store.quests[playerID] {
		if q.ID == questID {
			return q, nil
		}
	}
	return quest.DailyQuest{}, ports.ErrNotFound
}

func (r DailyQuestRepo) GetPenaltyCandidate(ctx context.Context, playerID string) (quest.DailyQuest, error) {
	defer r.store.rlock(ctx)()
	quests := r.store.quests[playerID]
	for i := len(quests) - 1; i >= 0; i-- {
		q := quests[i]
		if q.PenaltyServed {
			continue
		}
		if q.State == quest.StateFailed || q.State == quest.StatePenaltyActive {
			return q, nil
		}
	}
	return quest.DailyQuest{}, ports.ErrNotFound
}

func (r DailyQuestRepo) SaveWithVersion(ctx context.Context, q quest.DailyQuest, expectedVersion int64) error {
	defer r.store.lock(ctx)()
	quests := r.store.quests[q.PlayerID]
	for i, existing := range quests {
		if existing.ID != q.ID {
			continue
		}
		if existing.Version != expectedVersion {
			return ports.ErrConflict
		}
		quests[i] = q
		return nil
	}
	if expectedVersion != 0 {
		return ports.ErrConflict
	}
	r.store.quests[q.PlayerID] = append(quests, q)
	return nil
}
