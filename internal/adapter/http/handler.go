package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shadowrise/internal/app/daily"
	"shadowrise/internal/app/extraction"
	"shadowrise/internal/app/journal"
	"shadowrise/internal/app/penalty"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/app/raid"
	"shadowrise/internal/app/status"
	"shadowrise/internal/app/story"
	"shadowrise/internal/domain/quest"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	DailyUC      daily.UseCase
	PenaltyUC    penalty.UseCase
	ExtractionUC extraction.UseCase
	RaidUC       raid.UseCase
	StatusUC     status.UseCase
	JournalUC    journal.UseCase
	StoryUC      story.UseCase
	KPI          kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	players := api.Group("/players/:playerID")
	players.GET("", h.playerStatus)
	players.GET("/daily-quest", h.getDailyQuest)
	players.PUT("/daily-quest", h.updateDailyQuest)
	players.POST("/penalty-zone", h.enterPenaltyZone)
	players.GET("/penalty-zone/:sessionID", h.pollPenaltyZone)
	players.POST("/extract-shadow", h.extractShadow)
	players.PUT("/shadows/:shadowID/upgrade", h.upgradeShadow)
	players.GET("/shadows", h.listShadows)
	players.GET("/instant-dungeons", h.listDungeons)
	players.POST("/instant-dungeons/:dungeonID/combat", h.dungeonCombat)
	players.GET("/equipment", h.listEquipment)
	players.GET("/journal", h.journal)

	api.GET("/story/chapters", h.storyIndex)
	api.GET("/story/chapters/:number", h.storyChapter)
	api.GET("/ops/kpi", h.kpi)
	api.GET("/health", h.health)
}

type updateQuestRequest struct {
	Pushups   *int     `json:"pushups,omitempty"`
	Situps    *int     `json:"situps,omitempty"`
	RunningKM *float64 `json:"running_km,omitempty"`
}

type extractRequest struct {
	EnemyName   string  `json:"enemy_name"`
	SuccessRate float64 `json:"success_rate,omitempty"`
	ManaCost    int     `json:"mana_cost,omitempty"`
}

type questResponse struct {
	daily.Response
	Flavor string `json:"flavor,omitempty"`
}

type penaltyResponse struct {
	penalty.Response
	Flavor string `json:"flavor,omitempty"`
}

func (h Handler) playerStatus(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: playerID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getDailyQuest(c context.Context, ctx *app.RequestContext) {
	resp, err := h.DailyUC.Get(c, daily.GetRequest{PlayerID: playerID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, questResponse{Response: resp, Flavor: questFlavor(resp.Quest)})
}

func (h Handler) updateDailyQuest(c context.Context, ctx *app.RequestContext) {
	var body updateQuestRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.DailyUC.Update(c, daily.UpdateRequest{
		PlayerID: playerID(ctx),
		Update: quest.Update{
			Pushups:   body.Pushups,
			Situps:    body.Situps,
			RunningKM: body.RunningKM,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, questResponse{Response: resp, Flavor: questFlavor(resp.Quest)})
}

func (h Handler) enterPenaltyZone(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PenaltyUC.Enter(c, penalty.EnterRequest{PlayerID: playerID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, penaltyResponse{Response: resp, Flavor: penaltyFlavor(resp.Session)})
}

func (h Handler) pollPenaltyZone(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PenaltyUC.Poll(c, penalty.PollRequest{
		PlayerID:  playerID(ctx),
		SessionID: string(ctx.Param("sessionID")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, penaltyResponse{Response: resp, Flavor: penaltyFlavor(resp.Session)})
}

func (h Handler) extractShadow(c context.Context, ctx *app.RequestContext) {
	var body extractRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ExtractionUC.Extract(c, extraction.ExtractRequest{
		PlayerID:    playerID(ctx),
		EnemyName:   body.EnemyName,
		SuccessRate: body.SuccessRate,
		ManaCost:    body.ManaCost,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) upgradeShadow(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ExtractionUC.Upgrade(c, extraction.UpgradeRequest{
		PlayerID: playerID(ctx),
		ShadowID: string(ctx.Param("shadowID")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listShadows(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ExtractionUC.List(c, extraction.ListRequest{PlayerID: playerID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listDungeons(c context.Context, ctx *app.RequestContext) {
	resp, err := h.RaidUC.List(c, raid.ListRequest{PlayerID: playerID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dungeonCombat(c context.Context, ctx *app.RequestContext) {
	resp, err := h.RaidUC.Combat(c, raid.CombatRequest{
		PlayerID:  playerID(ctx),
		DungeonID: string(ctx.Param("dungeonID")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listEquipment(c context.Context, ctx *app.RequestContext) {
	resp, err := h.RaidUC.Inventory(c, raid.InventoryRequest{PlayerID: playerID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.JournalUC.Execute(c, journal.Request{
		PlayerID: playerID(ctx),
		Limit:    limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) storyIndex(c context.Context, ctx *app.RequestContext) {
	b, err := h.StoryUC.Index(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", b)
}

func (h Handler) storyChapter(c context.Context, ctx *app.RequestContext) {
	number, err := strconv.Atoi(string(ctx.Param("number")))
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "invalid chapter number")
		return
	}
	b, err := h.StoryUC.Chapter(c, number)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", b)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "alive"})
}

func playerID(ctx *app.RequestContext) string {
	return strings.TrimSpace(string(ctx.Param("playerID")))
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, quest.ErrAlreadyComplete):
		writeErrorBody(ctx, consts.StatusConflict, "quest_already_complete", err.Error())
	case errors.Is(err, quest.ErrQuestTerminal):
		writeErrorBody(ctx, consts.StatusConflict, "quest_terminal", err.Error())
	case errors.Is(err, quest.ErrQuestNotFailed):
		writeErrorBody(ctx, consts.StatusConflict, "quest_not_failed", err.Error())
	case errors.Is(err, quest.ErrPenaltyNotActive):
		writeErrorBody(ctx, consts.StatusConflict, "penalty_not_active", err.Error())
	case errors.Is(err, extraction.ErrInsufficientMana):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_mana", err.Error())
	case errors.Is(err, extraction.ErrShadowArmyFull):
		writeErrorBody(ctx, consts.StatusConflict, "shadow_army_full", err.Error())
	case errors.Is(err, extraction.ErrShadowNotReady):
		writeErrorBody(ctx, consts.StatusConflict, "shadow_not_ready", err.Error())
	case errors.Is(err, quest.ErrInvalidProgress):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_progress", err.Error())
	case errors.Is(err, daily.ErrInvalidRequest),
		errors.Is(err, penalty.ErrInvalidRequest),
		errors.Is(err, extraction.ErrInvalidRequest),
		errors.Is(err, raid.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, journal.ErrInvalidRequest),
		errors.Is(err, story.ErrInvalidChapter):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
