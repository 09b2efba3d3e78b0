package memory

import (
	"context"
	"sync"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
	"shadowrise/internal/domain/quest"
)

type Store struct {
	mu       sync.RWMutex
	players  map[string]hunter.Player
	quests   map[string][]quest.DailyQuest
	sessions map[string]quest.PenaltySession
	shadows  map[string][]hunter.Shadow
	gear     map[string][]hunter.Equipment
	events   map[string][]ports.EventRecord
}

func NewStore() *Store {
	return &Store{
		players:  make(map[string]hunter.Player),
		quests:   make(map[string][]quest.DailyQuest),
		sessions: make(map[string]quest.PenaltySession),
		shadows:  make(map[string][]hunter.Shadow),
		gear:     make(map[string][]hunter.Equipment),
		events:   make(map[string][]ports.EventRecord),
	}
}

func (s *Store) SeedPlayer(p hunter.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}

func (s *Store) SeedShadow(sh hunter.Shadow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shadows[sh.PlayerID] = append(s.shadows[sh.PlayerID], sh)
}

type txKey struct{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// rlock guards a read issued outside a transaction. Inside one, RunInTx
// already holds the write lock.
func (s *Store) rlock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
