package status

import (
	"context"
	"errors"
	"strings"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Players   ports.PlayerRepository
	Shadows   ports.ShadowRepository
	Equipment ports.EquipmentRepository
}

// Execute returns the player record together with its derived display
// values. Read-only; nothing here mutates state. Combat power counts
// equipped gear when an equipment source is wired.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	player, err := u.Players.GetByID(ctx, req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	out := Response{
		Player:      player,
		CombatStats: hunter.DeriveCombatStats(player),
		CombatPower: hunter.CombatPower(player),
		XPBar:       hunter.XPBar(player),
	}
	if u.Equipment != nil {
		gear, err := u.Equipment.ListByPlayer(ctx, req.PlayerID)
		if err != nil {
			return Response{}, err
		}
		out.Equipment = gear
		out.CombatPower = hunter.CombatPowerWith(player, gear)
	}
	if u.Shadows != nil {
		shadows, err := u.Shadows.ListByPlayer(ctx, req.PlayerID)
		if err != nil {
			return Response{}, err
		}
		out.ShadowCount = len(shadows)
	}
	return out, nil
}
