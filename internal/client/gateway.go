package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"shadowrise/internal/app/daily"
	"shadowrise/internal/app/extraction"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/app/raid"
	"shadowrise/internal/app/status"
	"shadowrise/internal/domain/dungeon"
	"shadowrise/internal/domain/hunter"
	"shadowrise/internal/domain/quest"

	hzclient "github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// QuestSnapshot is the daily-quest wire payload as served, flavor included.
type QuestSnapshot struct {
	daily.Response
	Flavor string `json:"flavor,omitempty"`
}

type penaltyPayload struct {
	Session quest.PenaltySession `json:"session"`
}

// Gateway consumes the REST surface. All errors come back either as the
// sentinel matching the server's error code or wrapped in ErrTransport.
type Gateway struct {
	baseURL string
	http    *hzclient.Client
}

func NewGateway(baseURL string) (*Gateway, error) {
	c, err := hzclient.NewClient()
	if err != nil {
		return nil, err
	}
	return &Gateway{baseURL: strings.TrimRight(baseURL, "/"), http: c}, nil
}

func (g *Gateway) Player(ctx context.Context, playerID string) (status.Response, error) {
	var out status.Response
	err := g.do(ctx, consts.MethodGet, "/api/players/"+url.PathEscape(playerID), nil, &out)
	return out, err
}

func (g *Gateway) DailyQuest(ctx context.Context, playerID string) (QuestSnapshot, error) {
	var out QuestSnapshot
	err := g.do(ctx, consts.MethodGet, "/api/players/"+url.PathEscape(playerID)+"/daily-quest", nil, &out)
	return out, err
}

func (g *Gateway) UpdateDailyQuest(ctx context.Context, playerID string, u quest.Update) (QuestSnapshot, error) {
	var out QuestSnapshot
	err := g.do(ctx, consts.MethodPut, "/api/players/"+url.PathEscape(playerID)+"/daily-quest", u, &out)
	return out, err
}

func (g *Gateway) EnterPenaltyZone(ctx context.Context, playerID string) (quest.PenaltySession, error) {
	var out penaltyPayload
	err := g.do(ctx, consts.MethodPost, "/api/players/"+url.PathEscape(playerID)+"/penalty-zone", nil, &out)
	return out.Session, err
}

func (g *Gateway) PollPenaltyZone(ctx context.Context, playerID, sessionID string) (quest.PenaltySession, error) {
	var out penaltyPayload
	path := "/api/players/" + url.PathEscape(playerID) + "/penalty-zone/" + url.PathEscape(sessionID)
	err := g.do(ctx, consts.MethodGet, path, nil, &out)
	return out.Session, err
}

type ExtractParams struct {
	EnemyName   string  `json:"enemy_name"`
	SuccessRate float64 `json:"success_rate,omitempty"`
	ManaCost    int     `json:"mana_cost,omitempty"`
}

func (g *Gateway) ExtractShadow(ctx context.Context, playerID string, params ExtractParams) (extraction.ExtractResponse, error) {
	var out extraction.ExtractResponse
	err := g.do(ctx, consts.MethodPost, "/api/players/"+url.PathEscape(playerID)+"/extract-shadow", params, &out)
	return out, err
}

func (g *Gateway) UpgradeShadow(ctx context.Context, playerID, shadowID string) (hunter.Shadow, error) {
	var out extraction.UpgradeResponse
	path := "/api/players/" + url.PathEscape(playerID) + "/shadows/" + url.PathEscape(shadowID) + "/upgrade"
	err := g.do(ctx, consts.MethodPut, path, nil, &out)
	return out.Shadow, err
}

func (g *Gateway) Shadows(ctx context.Context, playerID string) ([]hunter.Shadow, error) {
	var out extraction.ListResponse
	err := g.do(ctx, consts.MethodGet, "/api/players/"+url.PathEscape(playerID)+"/shadows", nil, &out)
	return out.Shadows, err
}

func (g *Gateway) Dungeons(ctx context.Context, playerID string) ([]dungeon.Dungeon, error) {
	var out raid.ListResponse
	err := g.do(ctx, consts.MethodGet, "/api/players/"+url.PathEscape(playerID)+"/instant-dungeons", nil, &out)
	return out.Dungeons, err
}

func (g *Gateway) RaidDungeon(ctx context.Context, playerID, dungeonID string) (raid.CombatResponse, error) {
	var out raid.CombatResponse
	path := "/api/players/" + url.PathEscape(playerID) + "/instant-dungeons/" + url.PathEscape(dungeonID) + "/combat"
	err := g.do(ctx, consts.MethodPost, path, nil, &out)
	return out, err
}

func (g *Gateway) EquipmentInventory(ctx context.Context, playerID string) ([]hunter.Equipment, error) {
	var out raid.InventoryResponse
	err := g.do(ctx, consts.MethodGet, "/api/players/"+url.PathEscape(playerID)+"/equipment", nil, &out)
	return out.Equipment, err
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(g.baseURL + path)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req.SetBody(b)
		req.Header.SetContentTypeBytes([]byte("application/json"))
	}

	if err := g.http.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	code := resp.StatusCode()
	if code >= 500 {
		return fmt.Errorf("%w: server returned %d", ErrTransport, code)
	}
	if code >= 400 {
		return errorFromBody(code, resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return nil
}

// errorFromBody inverts the server's writeError mapping.
func errorFromBody(code int, body []byte) error {
	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("%w: status %d with undecodable error body", ErrTransport, code)
	}

	switch parsed.Error.Code {
	case "quest_already_complete":
		return quest.ErrAlreadyComplete
	case "quest_terminal":
		return quest.ErrQuestTerminal
	case "quest_not_failed":
		return quest.ErrQuestNotFailed
	case "penalty_not_active":
		return quest.ErrPenaltyNotActive
	case "invalid_progress":
		return quest.ErrInvalidProgress
	case "insufficient_mana":
		return extraction.ErrInsufficientMana
	case "shadow_army_full":
		return extraction.ErrShadowArmyFull
	case "shadow_not_ready":
		return extraction.ErrShadowNotReady
	case "not_found":
		return ports.ErrNotFound
	case "conflict":
		return ports.ErrConflict
	default:
		return fmt.Errorf("%w: %s (%s)", ErrBadRequest, parsed.Error.Message, parsed.Error.Code)
	}
}
