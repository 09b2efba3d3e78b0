package extraction

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"shadowrise/internal/app/ports"
	"shadowrise/internal/domain/hunter"
)

type fakeTx struct{}

func (fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePlayers struct {
	players map[string]hunter.Player
}

func (r *fakePlayers) GetByID(_ context.Context, id string) (hunter.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return hunter.Player{}, ports.ErrNotFound
	}
	return p, nil
}

func (r *fakePlayers) SaveWithVersion(_ context.Context, p hunter.Player, expected int64) error {
	current, ok := r.players[p.ID]
	if ok && current.Version != expected {
		return ports.ErrConflict
	}
	if !ok && expected != 0 {
		return ports.ErrConflict
	}
	r.players[p.ID] = p
	return nil
}

type fakeShadows struct {
	shadows []hunter.Shadow
}

func (r *fakeShadows) GetByID(_ context.Context, playerID, shadowID string) (hunter.Shadow, error) {
	for _, s := range r.shadows {
		if s.PlayerID == playerID && s.ID == shadowID {
			return s, nil
		}
	}
	return hunter.Shadow{}, ports.ErrNotFound
}

func (r *fakeShadows) ListByPlayer(_ context.Context, playerID string) ([]hunter.Shadow, error) {
	out := []hunter.Shadow{}
	for _, s := range r.shadows {
		if s.PlayerID == playerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShadows) Save(_ context.Context, s hunter.Shadow) error {
	for i, existing := range r.shadows {
		if existing.ID == s.ID {
			r.shadows[i] = s
			return nil
		}
	}
	r.shadows = append(r.shadows, s)
	return nil
}

type fakeMetrics struct {
	total    int
	success  int
	byRarity map[hunter.Rarity]int
}

func (m *fakeMetrics) RecordQuestCompleted() {}
func (m *fakeMetrics) RecordQuestFailed()    {}
func (m *fakeMetrics) RecordExtraction(rarity hunter.Rarity, success bool) {
	if m.byRarity == nil {
		m.byRarity = map[hunter.Rarity]int{}
	}
	m.total++
	m.byRarity[rarity]++
	if success {
		m.success++
	}
}
func (m *fakeMetrics) RecordRaid(bool)       {}
func (m *fakeMetrics) RecordPenaltyEntered() {}
func (m *fakeMetrics) RecordPenaltyEscaped() {}

var (
	_ ports.TxManager        = fakeTx{}
	_ ports.PlayerRepository = (*fakePlayers)(nil)
	_ ports.ShadowRepository = (*fakeShadows)(nil)
	_ ports.GameMetrics      = (*fakeMetrics)(nil)
)

// countingRand returns a fixed roll and counts how often it was consumed.
type countingRand struct {
	v     float64
	calls int
}

func (r *countingRand) Float64() float64 {
	r.calls++
	return r.v
}

func newFixture(rng hunter.Rand) (UseCase, *fakePlayers, *fakeShadows, *fakeMetrics) {
	players := &fakePlayers{players: map[string]hunter.Player{
		"p1": {
			ID:         "p1",
			Name:       "Hunter",
			Level:      5,
			MP:         500,
			MaxMP:      500,
			ShadowArmy: hunter.ShadowArmy{Capacity: hunter.DefaultShadowCapacity},
			Version:    1,
		},
	}}
	shadows := &fakeShadows{}
	metrics := &fakeMetrics{}

	ids := 0
	uc := UseCase{
		TxManager: fakeTx{},
		Players:   players,
		Shadows:   shadows,
		Metrics:   metrics,
		Rand:      rng,
		Now:       func() time.Time { return time.Unix(1_700_000_000, 0) },
		NewID: func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		},
	}
	return uc, players, shadows, metrics
}

func TestExtract_SuccessBindsShadow(t *testing.T) {
	uc, players, shadows, metrics := newFixture(&countingRand{v: 0.0})

	resp, err := uc.Extract(context.Background(), ExtractRequest{PlayerID: "p1", EnemyName: "Goblin"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	// Goblin base 0.8 plus level 5 bonus.
	if resp.EffectiveRate != 0.9 {
		t.Fatalf("effective rate = %v, want 0.9", resp.EffectiveRate)
	}
	if resp.Message != "Arise." {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Shadow == nil || resp.Shadow.Name != "Goblin" || resp.Shadow.Level != 1 {
		t.Fatalf("shadow = %+v", resp.Shadow)
	}
	// Power level 150 scaled into the shadow statline.
	s := resp.Shadow.Stats
	if s.Attack != 75 || s.Defense != 50 || s.HP != 600 || s.MP != 300 {
		t.Fatalf("shadow stats = %+v", s)
	}

	p := players.players["p1"]
	if p.MP != 450 {
		t.Fatalf("mp = %d, want 450 after ritual cost", p.MP)
	}
	if p.ShadowArmy.Current != 1 {
		t.Fatalf("army current = %d, want 1", p.ShadowArmy.Current)
	}
	if len(shadows.shadows) != 1 {
		t.Fatalf("stored shadows = %d, want 1", len(shadows.shadows))
	}
	if metrics.total != 1 || metrics.success != 1 || metrics.byRarity[hunter.RarityCommon] != 1 {
		t.Fatalf("metrics = %+v", metrics)
	}
}

func TestExtract_FailureStillConsumesMana(t *testing.T) {
	uc, players, shadows, metrics := newFixture(&countingRand{v: 0.96})

	resp, err := uc.Extract(context.Background(), ExtractRequest{PlayerID: "p1", EnemyName: "Goblin"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if resp.Success || resp.Shadow != nil {
		t.Fatalf("expected failed attempt, got %+v", resp)
	}
	if resp.Message != "The soul resisted extraction." {
		t.Fatalf("message = %q", resp.Message)
	}
	if players.players["p1"].MP != 450 {
		t.Fatalf("mp = %d, want 450; a failed trial still costs mana", players.players["p1"].MP)
	}
	if len(shadows.shadows) != 0 {
		t.Fatalf("stored shadows = %d, want 0", len(shadows.shadows))
	}
	if metrics.total != 1 || metrics.success != 0 {
		t.Fatalf("metrics = %+v", metrics)
	}
}

func TestExtract_InsufficientManaRejectsBeforeTrial(t *testing.T) {
	rng := &countingRand{v: 0.0}
	uc, players, _, metrics := newFixture(rng)
	p := players.players["p1"]
	p.MP = 40
	players.players["p1"] = p

	_, err := uc.Extract(context.Background(), ExtractRequest{PlayerID: "p1", EnemyName: "Goblin"})
	if !errors.Is(err, ErrInsufficientMana) {
		t.Fatalf("err = %v, want ErrInsufficientMana", err)
	}
	if players.players["p1"].MP != 40 {
		t.Fatalf("mp = %d, want untouched 40", players.players["p1"].MP)
	}
	if rng.calls != 0 {
		t.Fatalf("rng consumed %d rolls, want 0", rng.calls)
	}
	if metrics.total != 0 {
		t.Fatalf("metrics recorded %d attempts, want 0", metrics.total)
	}
}

func TestExtract_ArmyAtCapacity(t *testing.T) {
	uc, players, _, _ := newFixture(&countingRand{v: 0.0})
	p := players.players["p1"]
	p.ShadowArmy.Current = p.ShadowArmy.Capacity
	players.players["p1"] = p

	_, err := uc.Extract(context.Background(), ExtractRequest{PlayerID: "p1", EnemyName: "Goblin"})
	if !errors.Is(err, ErrShadowArmyFull) {
		t.Fatalf("err = %v, want ErrShadowArmyFull", err)
	}
	if players.players["p1"].MP != 500 {
		t.Fatalf("mp = %d, want untouched 500", players.players["p1"].MP)
	}
}

func TestExtract_OffCatalogEnemyNeedsDescriptor(t *testing.T) {
	uc, _, _, _ := newFixture(&countingRand{v: 0.0})

	cases := []ExtractRequest{
		{PlayerID: "p1", EnemyName: "Orc"},
		{PlayerID: "p1", EnemyName: "Orc", SuccessRate: 1.2, ManaCost: 30},
		{PlayerID: "p1", EnemyName: "Orc", SuccessRate: 0.5, ManaCost: 0},
	}
	for _, req := range cases {
		if _, err := uc.Extract(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("req %+v: err = %v, want ErrInvalidRequest", req, err)
		}
	}

	resp, err := uc.Extract(context.Background(), ExtractRequest{
		PlayerID: "p1", EnemyName: "Orc", SuccessRate: 0.5, ManaCost: 30,
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if resp.EffectiveRate != 0.6 {
		t.Fatalf("effective rate = %v, want 0.6", resp.EffectiveRate)
	}
	if resp.Shadow == nil || resp.Shadow.Rarity != hunter.RarityCommon {
		t.Fatalf("shadow = %+v", resp.Shadow)
	}
}

func TestUpgrade_ConsumesFullBar(t *testing.T) {
	uc, _, shadows, _ := newFixture(&countingRand{v: 0.0})
	shadows.shadows = []hunter.Shadow{{
		ID: "sh1", PlayerID: "p1", Name: "Igris", Level: 3,
		Stats:      hunter.ShadowStats{Attack: 100, Defense: 90, HP: 500, MP: 200},
		Loyalty:    98,
		Experience: 1000, MaxExperience: 1000,
	}}

	resp, err := uc.Upgrade(context.Background(), UpgradeRequest{PlayerID: "p1", ShadowID: "sh1"})
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	s := resp.Shadow
	if s.Level != 4 {
		t.Fatalf("level = %d, want 4", s.Level)
	}
	if s.Experience != 0 || s.MaxExperience != 1500 {
		t.Fatalf("bar = %d/%d, want 0/1500", s.Experience, s.MaxExperience)
	}
	if s.Stats.Attack != 110 || s.Stats.Defense != 99 || s.Stats.HP != 550 || s.Stats.MP != 220 {
		t.Fatalf("stats = %+v", s.Stats)
	}
	if s.Loyalty != 100 {
		t.Fatalf("loyalty = %d, want capped 100", s.Loyalty)
	}
	if shadows.shadows[0].Level != 4 {
		t.Fatalf("upgrade was not persisted: %+v", shadows.shadows[0])
	}
}

func TestUpgrade_RejectsPartialBar(t *testing.T) {
	uc, _, shadows, _ := newFixture(&countingRand{v: 0.0})
	shadows.shadows = []hunter.Shadow{{
		ID: "sh1", PlayerID: "p1", Name: "Igris", Level: 3,
		Experience: 999, MaxExperience: 1000,
	}}

	if _, err := uc.Upgrade(context.Background(), UpgradeRequest{PlayerID: "p1", ShadowID: "sh1"}); !errors.Is(err, ErrShadowNotReady) {
		t.Fatalf("err = %v, want ErrShadowNotReady", err)
	}
	if shadows.shadows[0].Experience != 999 {
		t.Fatalf("shadow mutated on rejected upgrade: %+v", shadows.shadows[0])
	}
}

func TestList_ReturnsRoster(t *testing.T) {
	uc, _, shadows, _ := newFixture(&countingRand{v: 0.0})
	shadows.shadows = []hunter.Shadow{
		{ID: "sh1", PlayerID: "p1", Name: "Igris"},
		{ID: "sh2", PlayerID: "other", Name: "Tank"},
	}

	resp, err := uc.List(context.Background(), ListRequest{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Shadows) != 1 || resp.Shadows[0].ID != "sh1" {
		t.Fatalf("roster = %+v", resp.Shadows)
	}
}
