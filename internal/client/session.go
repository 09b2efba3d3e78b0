package client

import (
	"context"
	"sync"

	"shadowrise/internal/app/daily"
	"shadowrise/internal/app/status"
	"shadowrise/internal/domain/hunter"
	"shadowrise/internal/domain/quest"
)

// QuestService is the slice of the gateway a session needs.
type QuestService interface {
	Player(ctx context.Context, playerID string) (status.Response, error)
	DailyQuest(ctx context.Context, playerID string) (QuestSnapshot, error)
	UpdateDailyQuest(ctx context.Context, playerID string, u quest.Update) (QuestSnapshot, error)
}

// Session holds one player's cached server state. Writes go through a
// two-phase flow: project the update locally for immediate feedback, then
// replace the projection with the authoritative response, rolling back when
// the round trip fails in transport.
type Session struct {
	PlayerID string
	Service  QuestService

	mu     sync.Mutex
	player hunter.Player
	quest  daily.QuestView
	loaded bool
}

func NewSession(playerID string, service QuestService) *Session {
	return &Session{PlayerID: playerID, Service: service}
}

// Refresh pulls the player record and the current daily quest.
func (s *Session) Refresh(ctx context.Context) error {
	st, err := s.Service.Player(ctx, s.PlayerID)
	if err != nil {
		return err
	}
	snap, err := s.Service.DailyQuest(ctx, s.PlayerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.player = st.Player
	s.quest = snap.Quest
	s.loaded = true
	return nil
}

func (s *Session) Player() hunter.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

func (s *Session) Quest() daily.QuestView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quest
}

// LogExercise submits absolute progress values. The cached quest state gates
// the call locally first, so a completed or terminal day never reaches the
// wire.
func (s *Session) LogExercise(ctx context.Context, u quest.Update) (QuestSnapshot, error) {
	if u.Empty() {
		return QuestSnapshot{}, ErrBadRequest
	}

	s.mu.Lock()
	if s.loaded && s.quest.State != quest.StateActive {
		state := s.quest.State
		s.mu.Unlock()
		if state == quest.StateCompleted {
			return QuestSnapshot{}, quest.ErrAlreadyComplete
		}
		return QuestSnapshot{}, quest.ErrQuestTerminal
	}
	rollback := s.quest
	s.project(u)
	s.mu.Unlock()

	snap, err := s.Service.UpdateDailyQuest(ctx, s.PlayerID, u)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.quest = rollback
		return QuestSnapshot{}, err
	}

	s.quest = snap.Quest
	s.loaded = true
	if snap.RewardGranted && snap.Player != nil {
		// Reward is applied server-side exactly once; mirror, never recompute.
		s.player = *snap.Player
	}
	return snap, nil
}

// project folds the optimistic update into the cached view. Values below the
// cached metric are ignored, matching the server's never-backwards rule.
func (s *Session) project(u quest.Update) {
	if u.Pushups != nil && *u.Pushups > s.quest.Pushups {
		s.quest.Pushups = min(*u.Pushups, quest.PushupsMax)
	}
	if u.Situps != nil && *u.Situps > s.quest.Situps {
		s.quest.Situps = min(*u.Situps, quest.SitupsMax)
	}
	if u.RunningKM != nil && *u.RunningKM > s.quest.RunningKM {
		s.quest.RunningKM = *u.RunningKM
		if s.quest.RunningKM > quest.RunningKMMax {
			s.quest.RunningKM = quest.RunningKMMax
		}
	}
}
