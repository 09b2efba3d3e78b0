package daily

import (
	"context"
	"errors"
	"strings"
	"time"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/quest"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid daily quest request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Quests    ports.DailyQuestRepository
	Shadows   ports.ShadowRepository
	Events    ports.EventRepository
	Metrics   ports.GameMetrics
	Clock     quest.DayClock
	Now       func() time.Time
	NewID     func() string
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

// Get returns the player's quest for the current day window, rolling an
// elapsed quest over (and failing it if it never completed) on the way.
func (u UseCase) Get(ctx context.Context, req GetRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Players.GetByID(txCtx, req.PlayerID); err != nil {
			return err
		}
		q, err := u.ensureCurrent(txCtx, req.PlayerID, now)
		if err != nil {
			return err
		}
		out = Response{Quest: viewOf(q, now)}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

// Update folds a progress update into the active quest. The completion
// transition and its reward grant commit atomically with the progress write.
func (u UseCase) Update(ctx context.Context, req UpdateRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Update.Empty() {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		player, err := u.Players.GetByID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		q, err := u.ensureCurrent(txCtx, req.PlayerID, now)
		if err != nil {
			return err
		}

		if err := q.Apply(req.Update); err != nil {
			return err
		}

		if reward, granted := q.TryComplete(); granted {
			levelUp := reward.ApplyTo(&player)
			playerVersion := player.Version
			player.Version++
			player.UpdatedAt = now
			if err := u.Players.SaveWithVersion(txCtx, player, playerVersion); err != nil {
				return err
			}
			if err := u.feedShadows(txCtx, req.PlayerID); err != nil {
				return err
			}
			if u.Metrics != nil {
				u.Metrics.RecordQuestCompleted()
			}
			if err := u.appendEvent(txCtx, req.PlayerID, "daily_quest_completed", map[string]any{
				"quest_id":   q.ID,
				"experience": reward.Experience,
			}, now); err != nil {
				return err
			}
			out.RewardGranted = true
			out.Reward = &reward
			out.LevelUp = &levelUp
			out.Player = &player
		}

		questVersion := q.Version
		q.Version++
		if err := u.Quests.SaveWithVersion(txCtx, q, questVersion); err != nil {
			return err
		}
		out.Quest = viewOf(q, now)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

// ensureCurrent loads the quest for the current window, creating today's and
// retiring yesterday's when the day has rolled over.
func (u UseCase) ensureCurrent(ctx context.Context, playerID string, now time.Time) (quest.DailyQuest, error) {
	q, err := u.Quests.GetCurrent(ctx, playerID)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return u.openQuest(ctx, playerID, now)
	case err != nil:
		return quest.DailyQuest{}, err
	}

	if u.Clock.SameDay(q.CreatedAt, now) {
		return q, nil
	}

	// Day rolled over. An unfinished quest fails at its deadline before a
	// fresh one opens.
	if q.MarkFailedIfExpired(now) {
		version := q.Version
		q.Version++
		if err := u.Quests.SaveWithVersion(ctx, q, version); err != nil {
			return quest.DailyQuest{}, err
		}
		if u.Metrics != nil {
			u.Metrics.RecordQuestFailed()
		}
		if err := u.appendEvent(ctx, playerID, "daily_quest_failed", map[string]any{
			"quest_id": q.ID,
		}, now); err != nil {
			return quest.DailyQuest{}, err
		}
	}
	return u.openQuest(ctx, playerID, now)
}

func (u UseCase) openQuest(ctx context.Context, playerID string, now time.Time) (quest.DailyQuest, error) {
	q := quest.NewDailyQuest(u.newID(), playerID, now, u.Clock)
	q.Version = 1
	if err := u.Quests.SaveWithVersion(ctx, q, 0); err != nil {
		return quest.DailyQuest{}, err
	}
	return q, nil
}

// feedShadows grants every shadow in the roster its share of the day's
// discipline.
func (u UseCase) feedShadows(ctx context.Context, playerID string) error {
	if u.Shadows == nil {
		return nil
	}
	shadows, err := u.Shadows.ListByPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	for _, s := range shadows {
		s.Experience += quest.ShadowExperiencePerQuest
		if err := u.Shadows.Save(ctx, s); err != nil {
			return err
		}
	}
	return nil
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
