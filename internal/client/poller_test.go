package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shadowrise/internal/domain/quest"
)

type scriptedSource struct {
	mu    sync.Mutex
	snaps []quest.PenaltySession
	errs  []error
	calls int
}

func (s *scriptedSource) PollPenaltyZone(_ context.Context, _, _ string) (quest.PenaltySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return quest.PenaltySession{}, s.errs[i]
	}
	if i >= len(s.snaps) {
		return s.snaps[len(s.snaps)-1], nil
	}
	return s.snaps[i], nil
}

func (s *scriptedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func surviving(progress float64) quest.PenaltySession {
	return quest.PenaltySession{ID: "s1", PlayerID: "p1", Status: quest.PenaltySurviving, ProgressPercent: progress}
}

func escaped() quest.PenaltySession {
	return quest.PenaltySession{ID: "s1", PlayerID: "p1", Status: quest.PenaltyEscaped, ProgressPercent: 100}
}

func TestPollerStopsOnEscape(t *testing.T) {
	source := &scriptedSource{snaps: []quest.PenaltySession{surviving(25), surviving(50), escaped()}}
	p := Poller{Source: source, Interval: time.Millisecond}

	var seen []quest.PenaltySession
	err := p.Run(context.Background(), "p1", "s1", func(s quest.PenaltySession) {
		seen = append(seen, s)
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := source.callCount(); got != 3 {
		t.Fatalf("polls = %d, want 3", got)
	}
	if len(seen) != 3 || seen[2].Status != quest.PenaltyEscaped {
		t.Fatalf("unexpected snapshots: %+v", seen)
	}

	// The ticker must be released; no further polls happen after return.
	time.Sleep(5 * time.Millisecond)
	if got := source.callCount(); got != 3 {
		t.Fatalf("polls after stop = %d, want 3", got)
	}
}

func TestPollerSurfacesFirstTransportError(t *testing.T) {
	wantErr := errors.New("connection refused")
	source := &scriptedSource{errs: []error{wantErr}}
	p := Poller{Source: source, Interval: time.Millisecond}

	err := p.Run(context.Background(), "p1", "s1", nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if got := source.callCount(); got != 1 {
		t.Fatalf("polls = %d, want 1 (no retry)", got)
	}
}

func TestPollerStopsOnCancel(t *testing.T) {
	source := &scriptedSource{snaps: []quest.PenaltySession{surviving(10)}}
	p := Poller{Source: source, Interval: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.Run(ctx, "p1", "s1", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestTrackerReplacesRunningPoller(t *testing.T) {
	slow := &scriptedSource{snaps: []quest.PenaltySession{surviving(10)}}
	tracker := NewTracker(slow)
	tracker.Interval = time.Millisecond

	first := tracker.Start(context.Background(), "p1", "s1", nil)

	fast := &scriptedSource{snaps: []quest.PenaltySession{escaped()}}
	tracker.Source = fast
	second := tracker.Start(context.Background(), "p1", "s2", nil)

	select {
	case err := <-first:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("first poller err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("first poller was not cancelled")
	}

	select {
	case err := <-second:
		if err != nil {
			t.Fatalf("second poller err = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second poller did not finish")
	}
}

func TestTrackerStop(t *testing.T) {
	source := &scriptedSource{snaps: []quest.PenaltySession{surviving(10)}}
	tracker := NewTracker(source)
	tracker.Interval = time.Millisecond

	done := tracker.Start(context.Background(), "p1", "s1", nil)
	time.Sleep(5 * time.Millisecond)
	tracker.Stop("p1")

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}
