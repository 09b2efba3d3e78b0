package hunter

import "testing"

type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

func TestEffectiveSuccessRate_LevelBonusAndCap(t *testing.T) {
	goblin := Enemy{SuccessRate: 0.8}
	if got := EffectiveSuccessRate(goblin, 0); got != 0.8 {
		t.Fatalf("rate at level 0 = %v, want 0.8", got)
	}
	if got := EffectiveSuccessRate(goblin, 5); got != 0.9 {
		t.Fatalf("rate at level 5 = %v, want 0.9", got)
	}
	// Cap holds no matter how high the level climbs.
	for _, level := range []int{8, 50, 10000} {
		if got := EffectiveSuccessRate(goblin, level); got != ExtractionRateCap {
			t.Fatalf("rate at level %d = %v, want cap %v", level, got, ExtractionRateCap)
		}
	}
}

func TestEffectiveSuccessRate_MonotonicInLevel(t *testing.T) {
	dragon := Enemy{SuccessRate: 0.15}
	prev := 0.0
	for level := 0; level <= 60; level++ {
		got := EffectiveSuccessRate(dragon, level)
		if got < prev {
			t.Fatalf("rate decreased at level %d: %v < %v", level, got, prev)
		}
		prev = got
	}
}

func TestResolveExtraction_DeterministicUnderFixedRand(t *testing.T) {
	if !ResolveExtraction(0.5, fixedRand{v: 0.49}) {
		t.Fatalf("draw below rate should succeed")
	}
	if ResolveExtraction(0.5, fixedRand{v: 0.5}) {
		t.Fatalf("draw at rate should fail")
	}
	if ResolveExtraction(0.5, fixedRand{v: 0.99}) {
		t.Fatalf("draw above rate should fail")
	}
}

func TestShadowFromEnemy_ScalesOffPowerLevel(t *testing.T) {
	s := ShadowFromEnemy(Enemy{Name: "Ice Elf", Type: "Magical Creature", Rarity: RarityEpic, PowerLevel: 600})
	if s.Level != 1 || s.Rarity != RarityEpic {
		t.Fatalf("unexpected shadow: %+v", s)
	}
	if s.Stats.Attack != 300 || s.Stats.Defense != 200 || s.Stats.HP != 2400 || s.Stats.MP != 1200 {
		t.Fatalf("unexpected stats: %+v", s.Stats)
	}
	if s.Loyalty != ShadowBaseLoyalty || s.MaxExperience != ShadowBaseMaxXP {
		t.Fatalf("unexpected loyalty/bar: %+v", s)
	}
}

func TestUpgradeShadow_RequiresFullBar(t *testing.T) {
	s := Shadow{Level: 1, Experience: 999, MaxExperience: 1000, Stats: ShadowStats{Attack: 100}}
	if UpgradeShadow(&s) {
		t.Fatalf("upgrade with partial bar should be refused")
	}
	if s.Level != 1 || s.Experience != 999 {
		t.Fatalf("refused upgrade mutated shadow: %+v", s)
	}
}

func TestUpgradeShadow_ConsumesBarAndScales(t *testing.T) {
	s := Shadow{
		Level:         1,
		Experience:    1200,
		MaxExperience: 1000,
		Loyalty:       98,
		Stats:         ShadowStats{Attack: 100, Defense: 50, HP: 1000, MP: 500},
	}
	if !UpgradeShadow(&s) {
		t.Fatalf("upgrade with full bar refused")
	}
	if s.Level != 2 || s.Experience != 200 || s.MaxExperience != 1500 {
		t.Fatalf("bar bookkeeping wrong: %+v", s)
	}
	if s.Stats.Attack != 110 || s.Stats.Defense != 55 || s.Stats.HP != 1100 || s.Stats.MP != 550 {
		t.Fatalf("stats not scaled: %+v", s.Stats)
	}
	if s.Loyalty != 100 {
		t.Fatalf("loyalty = %d, want capped 100", s.Loyalty)
	}
}
