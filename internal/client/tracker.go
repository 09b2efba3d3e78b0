package client

import (
	"context"
	"sync"
	"time"

	"shadowrise/internal/domain/quest"
)

type pollHandle struct {
	cancel context.CancelFunc
}

// Tracker enforces the one-poller-per-player rule: starting a poller for a
// player cancels any poller already running for them.
type Tracker struct {
	Source   PenaltySource
	Interval time.Duration

	mu      sync.Mutex
	running map[string]*pollHandle
}

func NewTracker(source PenaltySource) *Tracker {
	return &Tracker{Source: source, running: make(map[string]*pollHandle)}
}

// Start launches a poller for the player's session and returns a channel that
// yields the poller's terminal error (nil on escape).
func (t *Tracker) Start(ctx context.Context, playerID, sessionID string, fn func(quest.PenaltySession)) <-chan error {
	runCtx, cancel := context.WithCancel(ctx)
	handle := &pollHandle{cancel: cancel}

	t.mu.Lock()
	if prev, ok := t.running[playerID]; ok {
		prev.cancel()
	}
	t.running[playerID] = handle
	t.mu.Unlock()

	p := Poller{Source: t.Source, Interval: t.Interval}
	done := make(chan error, 1)
	go func() {
		defer cancel()
		err := p.Run(runCtx, playerID, sessionID, fn)

		t.mu.Lock()
		if t.running[playerID] == handle {
			delete(t.running, playerID)
		}
		t.mu.Unlock()

		done <- err
	}()
	return done
}

// Stop cancels the player's running poller, if any.
func (t *Tracker) Stop(playerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if handle, ok := t.running[playerID]; ok {
		handle.cancel()
		delete(t.running, playerID)
	}
}
