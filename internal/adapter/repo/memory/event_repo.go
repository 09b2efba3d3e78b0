package memory

import (
	"context"

	"shadowrise/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []ports.EventRecord) error {
	defer r.store.lock(ctx)()
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

// ListByPlayer returns the newest events first.
func (r EventRepo) ListByPlayer(ctx context.Context, playerID string, limit int) ([]ports.EventRecord, error) {
	defer r.store.rlock(ctx)()
	all := r.store.events[playerID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	out := make([]ports.EventRecord, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
