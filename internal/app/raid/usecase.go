package raid

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/dungeon"
	"shadowrise/internal/domain/hunter"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid raid request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Equipment ports.EquipmentRepository
	Events    ports.EventRepository
	Metrics   ports.GameMetrics
	Rand      hunter.Rand
	Now       func() time.Time
	NewID     func() string
}

type ListRequest struct {
	PlayerID string
}

type ListResponse struct {
	Dungeons []dungeon.Dungeon `json:"dungeons"`
}

type CombatRequest struct {
	PlayerID  string
	DungeonID string
}

type CombatResponse struct {
	Dungeon dungeon.Dungeon      `json:"dungeon"`
	Result  dungeon.RaidResult   `json:"result"`
	LevelUp hunter.LevelUpResult `json:"level_up"`
	Player  hunter.Player        `json:"player"`
}

type InventoryRequest struct {
	PlayerID string
}

type InventoryResponse struct {
	Equipment []hunter.Equipment `json:"equipment"`
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

// List returns the open gates.
func (u UseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return ListResponse{}, ErrInvalidRequest
	}
	return ListResponse{Dungeons: dungeon.Catalog}, nil
}

// Combat runs one raid against a catalog dungeon: the simulation outcome is
// applied to the hunter (damage, experience, any drop) in a single
// transaction. Damage lands before experience, so a level-up refills the
// wounded vitals.
func (u UseCase) Combat(ctx context.Context, req CombatRequest) (CombatResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" || strings.TrimSpace(req.DungeonID) == "" {
		return CombatResponse{}, ErrInvalidRequest
	}
	d, ok := dungeon.ByID(req.DungeonID)
	if !ok {
		return CombatResponse{}, ports.ErrNotFound
	}

	now := u.now()
	var out CombatResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		player, err := u.Players.GetByID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}

		result := dungeon.SimulateRaid(player, d, u.rand())

		player.HP -= result.DamageTaken
		if player.HP < 1 {
			player.HP = 1
		}
		levelUp := hunter.GrantExperience(&player, result.ExperienceGained)

		if result.Drop != nil {
			item := *result.Drop
			item.ID = u.newID()
			item.PlayerID = req.PlayerID
			item.CreatedAt = now
			if err := u.Equipment.Save(txCtx, item); err != nil {
				return err
			}
			result.Drop = &item
		}

		playerVersion := player.Version
		player.Version++
		player.UpdatedAt = now
		if err := u.Players.SaveWithVersion(txCtx, player, playerVersion); err != nil {
			return err
		}

		out = CombatResponse{Dungeon: d, Result: result, LevelUp: levelUp, Player: player}
		if u.Metrics != nil {
			u.Metrics.RecordRaid(result.Success)
		}
		return u.appendEvent(txCtx, req.PlayerID, "dungeon_raid", map[string]any{
			"dungeon": d.Name,
			"success": result.Success,
			"exp":     result.ExperienceGained,
		}, now)
	})
	if err != nil {
		return CombatResponse{}, err
	}
	return out, nil
}

// Inventory lists the equipment a hunter has collected.
func (u UseCase) Inventory(ctx context.Context, req InventoryRequest) (InventoryResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return InventoryResponse{}, ErrInvalidRequest
	}
	items, err := u.Equipment.ListByPlayer(ctx, req.PlayerID)
	if err != nil {
		return InventoryResponse{}, err
	}
	return InventoryResponse{Equipment: items}, nil
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
