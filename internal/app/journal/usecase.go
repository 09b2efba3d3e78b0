package journal

import (
	"context"
	"errors"
	"strings"

	"shadowrise/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid journal request")

const defaultLimit = 50

type UseCase struct {
	Events ports.EventRepository
}

type Request struct {
	PlayerID string
	Limit    int
}

type Response struct {
	Events []ports.EventRecord `json:"events"`
}

// Execute lists the player's most recent domain events, newest first.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = defaultLimit
	}
	events, err := u.Events.ListByPlayer(ctx, req.PlayerID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}
