package raid

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

type fakeEquipment struct {
	items []hunter.Equipment
}

func (r *fakeEquipment) ListByPlayer(_ context.Context, playerID string) ([]hunter.Equipment, error) {
	out := []hunter.Equipment{}
	for _, e := range r.items {
		if e.PlayerID == playerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEquipment) Save(_ context.Context, e hunter.Equipment) error {
	r.items = append(r.items, e)
	return nil
}

type fakeEvents struct {
	events []ports.EventRecord
}

func (r *fakeEvents) Append(_ context.Context, _ string, events []ports.EventRecord) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *fakeEvents) ListByPlayer(_ context.Context, _ string, _ int) ([]ports.EventRecord, error) {
	return r.events, nil
}

type fakeMetrics struct {
	cleared int
	failed  int
}

func (m *fakeMetrics) RecordQuestCompleted()                    {}
func (m *fakeMetrics) RecordQuestFailed()                       {}
func (m *fakeMetrics) RecordExtraction(_ hunter.Rarity, _ bool) {}
func (m *fakeMetrics) RecordRaid(success bool) {
	if success {
		m.cleared++
	} else {
		m.failed++
	}
}
func (m *fakeMetrics) RecordPenaltyEntered() {}
func (m *fakeMetrics) RecordPenaltyEscaped() {}

var (
	_ ports.TxManager           = fakeTx{}
	_ ports.PlayerRepository    = (*fakePlayers)(nil)
	_ ports.EquipmentRepository = (*fakeEquipment)(nil)
	_ ports.EventRepository     = (*fakeEvents)(nil)
	_ ports.GameMetrics         = (*fakeMetrics)(nil)
)

type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i]
	s.i++
	return v
}

func newFixture(rng hunter.Rand) (UseCase, *fakePlayers, *fakeEquipment, *fakeEvents, *fakeMetrics) {
	players := &fakePlayers{players: map[string]hunter.Player{
		"p1": {
			ID:      "p1",
			Name:    "Hunter",
			Level:   47,
			Stats:   hunter.Stats{Strength: 1000, Agility: 1000, Intelligence: 1000, Vitality: 1000, Sense: 1000},
			HP:      300,
			MaxHP:   300,
			Version: 1,
		},
	}}
	equipment := &fakeEquipment{}
	events := &fakeEvents{}
	metrics := &fakeMetrics{}

	ids := 0
	uc := UseCase{
		TxManager: fakeTx{},
		Players:   players,
		Equipment: equipment,
		Events:    events,
		Metrics:   metrics,
		Rand:      rng,
		Now:       func() time.Time { return time.Unix(1_700_000_000, 0) },
		NewID: func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		},
	}
	return uc, players, equipment, events, metrics
}

func TestCombat_ClearAppliesDamageAndExperience(t *testing.T) {
	// Draws: rate jitter, drop roll (miss), clear time, damage.
	uc, players, equipment, events, metrics := newFixture(&seqRand{vals: []float64{0.5, 0.9, 0, 0.5}})

	resp, err := uc.Combat(context.Background(), CombatRequest{PlayerID: "p1", DungeonID: "dungeon_2"})
	if err != nil {
		t.Fatalf("combat: %v", err)
	}
	if !resp.Result.Success {
		t.Fatalf("expected clear, got %+v", resp.Result)
	}
	// Red Gate is an A gate: a tenth of 5000 required power.
	if resp.Result.ExperienceGained != 500 {
		t.Fatalf("exp = %d, want 500", resp.Result.ExperienceGained)
	}
	if resp.Result.DamageTaken != 50 {
		t.Fatalf("damage = %d, want 50", resp.Result.DamageTaken)
	}

	p := players.players["p1"]
	if p.HP != 250 {
		t.Fatalf("hp = %d, want 250", p.HP)
	}
	if p.Experience != 500 {
		t.Fatalf("experience = %d, want 500", p.Experience)
	}
	if p.Version != 2 {
		t.Fatalf("version = %d, want 2", p.Version)
	}
	if len(equipment.items) != 0 {
		t.Fatalf("stored equipment = %d, want 0", len(equipment.items))
	}
	if metrics.cleared != 1 || metrics.failed != 0 {
		t.Fatalf("metrics = %+v", metrics)
	}
	if len(events.events) != 1 || events.events[0].Type != "dungeon_raid" {
		t.Fatalf("events = %+v", events.events)
	}
}

func TestCombat_DropIsPersistedForThePlayer(t *testing.T) {
	// Draws: rate jitter, drop roll (hit), drop rarity, item rolls, clear
	// time, damage.
	uc, _, equipment, _, _ := newFixture(&seqRand{vals: []float64{0.5, 0.1, 0, 0, 0, 0, 0, 0, 0}})

	resp, err := uc.Combat(context.Background(), CombatRequest{PlayerID: "p1", DungeonID: "dungeon_2"})
	if err != nil {
		t.Fatalf("combat: %v", err)
	}
	if resp.Result.Drop == nil {
		t.Fatalf("expected a drop")
	}
	if len(equipment.items) != 1 {
		t.Fatalf("stored equipment = %d, want 1", len(equipment.items))
	}
	item := equipment.items[0]
	if item.ID != "id-1" || item.PlayerID != "p1" {
		t.Fatalf("item identity = %q/%q", item.ID, item.PlayerID)
	}
	if item.Rarity != hunter.RarityCommon || item.Type != hunter.EquipmentWeapon {
		t.Fatalf("item = %+v", item)
	}
	// level 47 × 5 base, ×1.0 Common, ×0.8 low jitter.
	if item.Attack != 188 {
		t.Fatalf("attack = %d, want 188", item.Attack)
	}
	if resp.Result.Drop.ID != "id-1" {
		t.Fatalf("response drop id = %q, want id-1", resp.Result.Drop.ID)
	}
}

func TestCombat_FailureBleedsAndPaysConsolation(t *testing.T) {
	// Demon Castle is an S gate: 7500 power against 12000 required misses
	// the threshold even at neutral jitter.
	uc, players, equipment, _, metrics := newFixture(&seqRand{vals: []float64{0.5, 0}})

	resp, err := uc.Combat(context.Background(), CombatRequest{PlayerID: "p1", DungeonID: "dungeon_1"})
	if err != nil {
		t.Fatalf("combat: %v", err)
	}
	if resp.Result.Success {
		t.Fatalf("expected failure, got %+v", resp.Result)
	}
	if resp.Result.ExperienceGained != 240 {
		t.Fatalf("consolation exp = %d, want 240", resp.Result.ExperienceGained)
	}
	if resp.Result.DamageTaken != 100 {
		t.Fatalf("damage = %d, want 100", resp.Result.DamageTaken)
	}
	if players.players["p1"].HP != 200 {
		t.Fatalf("hp = %d, want 200", players.players["p1"].HP)
	}
	if len(equipment.items) != 0 {
		t.Fatalf("failed raid dropped equipment: %+v", equipment.items)
	}
	if metrics.failed != 1 || metrics.cleared != 0 {
		t.Fatalf("metrics = %+v", metrics)
	}
}

func TestCombat_LevelUpRefillsWoundedVitals(t *testing.T) {
	uc, players, _, _, _ := newFixture(&seqRand{vals: []float64{0.5, 0.9, 0, 0.5}})
	players.players["p1"] = hunter.Player{
		ID:      "p1",
		Level:   1,
		Stats:   hunter.Stats{Strength: 2000, Agility: 2000, Intelligence: 2000, Vitality: 2000, Sense: 2000},
		HP:      300,
		MaxHP:   300,
		Version: 1,
	}

	resp, err := uc.Combat(context.Background(), CombatRequest{PlayerID: "p1", DungeonID: "dungeon_1"})
	if err != nil {
		t.Fatalf("combat: %v", err)
	}
	if !resp.Result.Success {
		t.Fatalf("expected clear, got %+v", resp.Result)
	}
	if !resp.LevelUp.LeveledUp || resp.LevelUp.NewLevel != 2 {
		t.Fatalf("level up = %+v", resp.LevelUp)
	}
	p := players.players["p1"]
	if p.HP != p.MaxHP {
		t.Fatalf("hp = %d/%d, want refilled on level-up", p.HP, p.MaxHP)
	}
}

func TestCombat_UnknownDungeon(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5}}
	uc, players, _, _, _ := newFixture(rng)

	_, err := uc.Combat(context.Background(), CombatRequest{PlayerID: "p1", DungeonID: "dungeon_99"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if rng.i != 0 {
		t.Fatalf("rng consumed %d rolls, want 0", rng.i)
	}
	if players.players["p1"].Version != 1 {
		t.Fatalf("player mutated on unknown dungeon")
	}
}

func TestCombat_RejectsBlankIdentifiers(t *testing.T) {
	uc, _, _, _, _ := newFixture(&seqRand{})

	for _, req := range []CombatRequest{
		{PlayerID: "", DungeonID: "dungeon_1"},
		{PlayerID: "p1", DungeonID: " "},
	} {
		if _, err := uc.Combat(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("req %+v: err = %v, want ErrInvalidRequest", req, err)
		}
	}
}

func TestList_ReturnsCatalog(t *testing.T) {
	uc, _, _, _, _ := newFixture(&seqRand{})

	resp, err := uc.List(context.Background(), ListRequest{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Dungeons) != 3 || resp.Dungeons[0].Name != "Demon Castle" {
		t.Fatalf("catalog = %+v", resp.Dungeons)
	}
}

func TestInventory_ListsOnlyOwnedEquipment(t *testing.T) {
	uc, _, equipment, _, _ := newFixture(&seqRand{})
	equipment.items = []hunter.Equipment{
		{ID: "e1", PlayerID: "p1", Name: "Epic Blade"},
		{ID: "e2", PlayerID: "other", Name: "Common Helm"},
	}

	resp, err := uc.Inventory(context.Background(), InventoryRequest{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(resp.Equipment) != 1 || resp.Equipment[0].ID != "e1" {
		t.Fatalf("inventory = %+v", resp.Equipment)
	}
}
