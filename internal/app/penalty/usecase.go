package penalty

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
	"shadowrise/internal/domain/quest"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid penalty zone request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Quests    ports.DailyQuestRepository
	Sessions  ports.PenaltySessionRepository
	Events    ports.EventRepository
	Metrics   ports.GameMetrics
	Rand      hunter.Rand
	Now       func() time.Time
	NewID     func() string
}

type EnterRequest struct {
	PlayerID string
}

type PollRequest struct {
	PlayerID  string
	SessionID string
}

type Response struct {
	Session quest.PenaltySession `json:"session"`
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return uuid.NewString()
}

func (u UseCase) rand() hunter.Rand {
	if u.Rand != nil {
		return u.Rand
	}
	return globalRand{}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Enter opens a penalty session against the player's failed quest. Explicit
// opt-in; while a session is already open the call is idempotent and returns
// it unchanged.
func (u UseCase) Enter(ctx context.Context, req EnterRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Players.GetByID(txCtx, req.PlayerID); err != nil {
			return err
		}

		if open, err := u.Sessions.GetOpenByPlayer(txCtx, req.PlayerID); err == nil {
			out.Session = open
			return nil
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		q, err := u.Quests.GetPenaltyCandidate(txCtx, req.PlayerID)
		if errors.Is(err, ports.ErrNotFound) {
			return quest.ErrQuestNotFailed
		}
		if err != nil {
			return err
		}
		if err := q.EnterPenalty(); err != nil {
			return err
		}
		questVersion := q.Version
		q.Version++
		if err := u.Quests.SaveWithVersion(txCtx, q, questVersion); err != nil {
			return err
		}

		s := quest.NewPenaltySession(u.newID(), q, now)
		s.Version = 1
		if err := u.Sessions.SaveWithVersion(txCtx, s, 0); err != nil {
			return err
		}

		if u.Metrics != nil {
			u.Metrics.RecordPenaltyEntered()
		}
		if err := u.appendEvent(txCtx, req.PlayerID, "penalty_zone_entered", map[string]any{
			"session_id": s.ID,
			"quest_id":   q.ID,
		}, now); err != nil {
			return err
		}

		out.Session = s
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

// Poll advances the session simulation to now and returns the authoritative
// snapshot. Crossing into ESCAPED closes the quest's penalty arc in the same
// transaction.
func (u UseCase) Poll(ctx context.Context, req PollRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" || strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		s, err := u.Sessions.GetByID(txCtx, req.PlayerID, req.SessionID)
		if err != nil {
			return err
		}
		if s.Status == quest.PenaltyEscaped {
			out.Session = s
			return nil
		}

		escaped := quest.Advance(&s, now, u.rand())
		version := s.Version
		s.Version++
		if err := u.Sessions.SaveWithVersion(txCtx, s, version); err != nil {
			return err
		}

		if escaped {
			q, err := u.Quests.GetByID(txCtx, req.PlayerID, s.QuestID)
			if err != nil {
				return err
			}
			if err := q.MarkEscaped(); err == nil {
				questVersion := q.Version
				q.Version++
				if err := u.Quests.SaveWithVersion(txCtx, q, questVersion); err != nil {
					return err
				}
			}
			if u.Metrics != nil {
				u.Metrics.RecordPenaltyEscaped()
			}
			if err := u.appendEvent(txCtx, req.PlayerID, "penalty_zone_escaped", map[string]any{
				"session_id": s.ID,
				"damage":     s.DamageTaken,
			}, now); err != nil {
				return err
			}
		}

		out.Session = s
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) appendEvent(ctx context.Context, playerID, kind string, payload map[string]any, now time.Time) error {
	if u.Events == nil {
		return nil
	}
	return u.Events.Append(ctx, playerID, []ports.EventRecord{{
		ID:         u.newID(),
		PlayerID:   playerID,
		Type:       kind,
		OccurredAt: now,
		Payload:    payload,
	}})
}
