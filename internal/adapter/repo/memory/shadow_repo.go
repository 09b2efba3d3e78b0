package memory

import (
	"context"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
)

type ShadowRepo struct {
	store *Store
}

func NewShadowRepo(store *Store) ShadowRepo {
	return ShadowRepo{store: store}
}

func (r ShadowRepo) GetByID(ctx context.Context, playerID, shadowID string) (hunter.Shadow, error) {
	defer r.store.rlock(ctx)()
	for _, s := range r.store.shadows[playerID] {
		if s.ID == shadowID {
			return s, nil
		}
	}
	return hunter.Shadow{}, ports.ErrNotFound
}

func (r ShadowRepo) ListByPlayer(ctx context.Context, playerID string) ([]hunter.Shadow, error) {
	defer r.store.rlock(ctx)()
	shadows := r.store.shadows[playerID]
	out := make([]hunter.Shadow, len(shadows))
	copy(out, shadows)
	return out, nil
}

func (r ShadowRepo) Save(ctx context.Context, s hunter.Shadow) error {
	defer r.store.lock(ctx)()
	shadows := r.store.shadows[s.PlayerID]
	for i, existing := range shadows {
		if existing.ID == s.ID {
			shadows[i] = s
			return nil
		}
	}
	r.store.shadows[s.PlayerID] = append(shadows, s)
	return nil
}
