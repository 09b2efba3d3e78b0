package client

import (
	"context"
	"time"

	"shadowrise/internal/domain/quest"
)

const DefaultPollInterval = 5 * time.Second

// PenaltySource produces authoritative penalty-zone snapshots.
type PenaltySource interface {
	PollPenaltyZone(ctx context.Context, playerID, sessionID string) (quest.PenaltySession, error)
}

// Poller drives a penalty session by polling on a fixed interval. Each
// snapshot replaces the previous one wholesale; fn never sees a merge.
type Poller struct {
	Source   PenaltySource
	Interval time.Duration
}

// Run polls until the session escapes, the context is cancelled, or a poll
// fails. A failed poll is surfaced immediately; there is no retry.
func (p Poller) Run(ctx context.Context, playerID, sessionID string, fn func(quest.PenaltySession)) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s, err := p.Source.PollPenaltyZone(ctx, playerID, sessionID)
			if err != nil {
				return err
			}
			if fn != nil {
				fn(s)
			}
			if s.Status == quest.PenaltyEscaped {
				return nil
			}
		}
	}
}
