package ports

import (
	"context"
	"time"

	"shadowrise/internal/domain/hunter"
	"shadowrise/internal/domain/quest"
)

type PlayerRepository interface {
	GetByID(ctx context.Context, playerID string) (hunter.Player, error)
	// SaveWithVersion creates when expectedVersion is 0, otherwise performs an
	// optimistic-concurrency update and reports ErrConflict on a stale read.
	SaveWithVersion(ctx context.Context, p hunter.Player, expectedVersion int64) error
}

type DailyQuestRepository interface {
	// GetCurrent returns the most recent quest for the player, which may
	// belong to an elapsed day window.
	GetCurrent(ctx context.Context, playerID string) (quest.DailyQuest, error)
	GetByID(ctx context.Context, playerID, questID string) (quest.DailyQuest, error)
	// GetPenaltyCandidate returns the most recent failed, unserved quest:
	// the one a penalty session would open against.
	GetPenaltyCandidate(ctx context.Context, playerID string) (quest.DailyQuest, error)
	SaveWithVersion(ctx context.Context, q quest.DailyQuest, expectedVersion int64) error
}

type PenaltySessionRepository interface {
	GetByID(ctx context.Context, playerID, sessionID string) (quest.PenaltySession, error)
	GetOpenByPlayer(ctx context.Context, playerID string) (quest.PenaltySession, error)
	SaveWithVersion(ctx context.Context, s quest.PenaltySession, expectedVersion int64) error
}

type EquipmentRepository interface {
	ListByPlayer(ctx context.Context, playerID string) ([]hunter.Equipment, error)
	Save(ctx context.Context, e hunter.Equipment) error
}

type ShadowRepository interface {
	GetByID(ctx context.Context, playerID, shadowID string) (hunter.Shadow, error)
	ListByPlayer(ctx context.Context, playerID string) ([]hunter.Shadow, error)
	Save(ctx context.Context, s hunter.Shadow) error
}

type EventRecord struct {
	ID         string         `json:"id"`
	PlayerID   string         `json:"player_id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type EventRepository interface {
	Append(ctx context.Context, playerID string, events []EventRecord) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]EventRecord, error)
}

// StoryProvider serves narrative chapter content. Cosmetic: nothing in the
// engine branches on it.
type StoryProvider interface {
	Index(ctx context.Context) ([]byte, error)
	Chapter(ctx context.Context, number int) ([]byte, error)
}
