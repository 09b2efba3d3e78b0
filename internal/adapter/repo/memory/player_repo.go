package memory

import (
	"context"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetByID(ctx context.Context, playerID string) (hunter.Player, error) {
	defer r.store.rlock(ctx)()
	p, ok := r.store.players[playerID]
	if !ok {
		return hunter.Player{}, ports.ErrNotFound
	}
	return p, nil
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, p hunter.Player, expectedVersion int64) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.players[p.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.players[p.ID] = p
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.players[p.ID] = p
	return nil
}
