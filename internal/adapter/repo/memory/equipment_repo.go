package memory

import (
	"context"

	"shadowrise/internal/domain/hunter"
)

type EquipmentRepo struct {
	store *Store
}

func NewEquipmentRepo(store *Store) EquipmentRepo {
	return EquipmentRepo{store: store}
}

func (r EquipmentRepo) ListByPlayer(ctx context.Context, playerID string) ([]hunter.Equipment, error) {
	defer r.store.rlock(ctx)()
	items := r.store.gear[playerID]
	out := make([]hunter.Equipment, len(items))
	copy(out, items)
	return out, nil
}

func (r EquipmentRepo) Save(ctx context.Context, e hunter.Equipment) error {
	defer r.store.lock(ctx)()
	items := r.store.gear[e.PlayerID]
	for i, existing := range items {
		if existing.ID == e.ID {
			items[i] = e
			return nil
		}
	}
	r.store.gear[e.PlayerID] = append(items, e)
	return nil
}
