package extraction

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest   = errors.New("invalid extraction request")
	ErrInsufficientMana = errors.New("insufficient mana for extraction")
	ErrShadowArmyFull   = errors.New("shadow army at capacity")
	ErrShadowNotReady   = errors.New("shadow has not filled its experience bar")
)

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Shadows   ports.ShadowRepository
	Events    ports.EventRepository
	Metrics   ports.GameMetrics
	Rand      hunter.Rand
	Now       func() time.Time
	NewID     func() string
}

type ExtractRequest struct {
	PlayerID    string
	EnemyName   string
	SuccessRate float64
	ManaCost    int
}

type ExtractResponse struct {
	Success       bool           `json:"success"`
	EffectiveRate float64        `json:"effective_rate"`
	Shadow        *hunter.Shadow `json:"shadow,omitempty"`
	Message       string         `json:"message"`
	Player        hunter.Player  `json:"player"`
}

type UpgradeRequest struct {
	PlayerID string
	ShadowID string
}

type UpgradeResponse struct {
	Shadow hunter.Shadow `json:"shadow"`
}

type ListRequest struct {
	PlayerID string
}

type ListResponse struct {
	Shadows []hunter.Shadow `json:"shadows"`
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

// Extract attempts to bind a defeated enemy's soul. The mana gate and the
// capacity gate both reject before the Bernoulli trial runs; a rejected
// attempt moves no mana. An attempted trial consumes the ritual cost whether
// or not the soul yields.
func (u UseCase) Extract(ctx context.Context, req ExtractRequest) (ExtractResponse, error) {
	req.EnemyName = strings.TrimSpace(req.EnemyName)
	if req.PlayerID == "" || req.EnemyName == "" {
		return ExtractResponse{}, ErrInvalidRequest
	}

	enemy, known := hunter.EnemyByName(req.EnemyName)
	if !known {
		// Off-catalog enemies ride on the caller-supplied descriptor.
		if req.SuccessRate <= 0 || req.SuccessRate > 1 || req.ManaCost <= 0 {
			return ExtractResponse{}, ErrInvalidRequest
		}
		enemy = hunter.Enemy{
			Name:        req.EnemyName,
			Type:        "Unknown",
			Rarity:      hunter.RarityCommon,
			PowerLevel:  req.ManaCost * 3,
			SuccessRate: req.SuccessRate,
			ManaCost:    req.ManaCost,
		}
	}

	now := u.now()
	var out ExtractResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		player, err := u.Players.GetByID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if player.MP < enemy.ManaCost {
			return ErrInsufficientMana
		}
		if player.ShadowArmy.Current >= player.ShadowArmy.Capacity {
			return ErrShadowArmyFull
		}

		rate := hunter.EffectiveSuccessRate(enemy, player.Level)
		success := hunter.ResolveExtraction(rate, u.rand())

		player.MP -= enemy.ManaCost
		out = ExtractResponse{Success: success, EffectiveRate: rate}

		if success {
			s := hunter.ShadowFromEnemy(enemy)
			s.ID = u.newID()
			s.PlayerID = req.PlayerID
			s.CreatedAt = now
			if err := u.Shadows.Save(txCtx, s); err != nil {
				return err
			}
			player.ShadowArmy.Current++
			out.Shadow = &s
			out.Message = "Arise."
		} else {
			out.Message = "The soul resisted extraction."
		}

		playerVersion := player.Version
		player.Version++
		player.UpdatedAt = now
		if err := u.Players.SaveWithVersion(txCtx, player, playerVersion); err != nil {
			return err
		}
		out.Player = player

		if u.Metrics != nil {
			u.Metrics.RecordExtraction(enemy.Rarity, success)
		}
		return u.appendEvent(txCtx, req.PlayerID, "shadow_extraction", map[string]any{
			"enemy":   enemy.Name,
			"rarity":  string(enemy.Rarity),
			"success": success,
		}, now)
	})
	if err != nil {
		return ExtractResponse{}, err
	}
	return out, nil
}

// Upgrade levels a shadow whose experience bar is full.
func (u UseCase) Upgrade(ctx context.Context, req UpgradeRequest) (UpgradeResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" || strings.TrimSpace(req.ShadowID) == "" {
		return UpgradeResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out UpgradeResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		s, err := u.Shadows.GetByID(txCtx, req.PlayerID, req.ShadowID)
		if err != nil {
			return err
		}
		if !hunter.UpgradeShadow(&s) {
			return ErrShadowNotReady
		}
		if err := u.Shadows.Save(txCtx, s); err != nil {
			return err
		}
		out.Shadow = s
		return u.appendEvent(txCtx, req.PlayerID, "shadow_upgraded", map[string]any{
			"shadow_id": s.ID,
			"level":     s.Level,
		}, now)
	})
	if err != nil {
		return UpgradeResponse{}, err
	}
	return out, nil
}

// List returns the player's roster.
func (u UseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return ListResponse{}, ErrInvalidRequest
	}
	shadows, err := u.Shadows.ListByPlayer(ctx, req.PlayerID)
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{Shadows: shadows}, nil
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
