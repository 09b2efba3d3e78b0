package memory

import (
	"context"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/quest"
)

type PenaltySessionRepo struct {
	store *Store
}

func NewPenaltySessionRepo(store *Store) PenaltySessionRepo {
	return PenaltySessionRepo{store: store}
}

func (r PenaltySessionRepo) GetByID(ctx context.Context, playerID, sessionID string) (quest.PenaltySession, error) {
	defer r.store.rlock(ctx)()
	s, ok := r.store.sessions[sessionID]
	if !ok || s.PlayerID != playerID {
		return quest.PenaltySession{}, ports.ErrNotFound
	}
	return s, nil
}

func (r PenaltySessionRepo) GetOpenByPlayer(ctx context.Context, playerID string) (quest.PenaltySession, error) {
	defer r.store.rlock(ctx)()
	for _, s := range r.store.sessions {
		if s.PlayerID == playerID && s.Status == quest.PenaltySurviving {
			return s, nil
		}
	}
	return quest.PenaltySession{}, ports.ErrNotFound
}

func (r PenaltySessionRepo) SaveWithVersion(ctx context.Context, s quest.PenaltySession, expectedVersion int64) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.sessions[s.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.sessions[s.ID] = s
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.sessions[s.ID] = s
	return nil
}
