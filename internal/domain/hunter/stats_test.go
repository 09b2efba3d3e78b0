package hunter

import "testing"

func TestDeriveCombatStats_KnownValues(t *testing.T) {
	p := Player{Stats: Stats{Strength: 156, Vitality: 134, Intelligence: 98}}
	got := DeriveCombatStats(p)
	if got.AttackPower != 390 {
		t.Fatalf("AttackPower = %d, want 390", got.AttackPower)
	}
	if got.Defense != 268 {
		t.Fatalf("Defense = %d, want 268", got.Defense)
	}
	if got.MagicPower != 294 {
		t.Fatalf("MagicPower = %d, want 294", got.MagicPower)
	}
}

func TestXPBar_ClampsToUnitInterval(t *testing.T) {
	if got := XPBar(Player{Experience: 500, ExperienceToNext: 1000}); got != 0.5 {
		t.Fatalf("XPBar = %v, want 0.5", got)
	}
	if got := XPBar(Player{Experience: 5000, ExperienceToNext: 1000}); got != 1 {
		t.Fatalf("XPBar over full bar = %v, want 1", got)
	}
	if got := XPBar(Player{Experience: 100, ExperienceToNext: 0}); got != 0 {
		t.Fatalf("XPBar with zero requirement = %v, want 0", got)
	}
}

func TestCombatPower_WeightsAllAttributes(t *testing.T) {
	p := Player{Stats: Stats{Strength: 10, Agility: 10, Intelligence: 10, Vitality: 10, Sense: 10}}
	// 20 + 15 + 18 + 12 + 10
	if got := CombatPower(p); got != 75 {
		t.Fatalf("CombatPower = %d, want 75", got)
	}
}

func TestDeriveMaxVitals(t *testing.T) {
	p := Player{Level: 3, Stats: Stats{Vitality: 12, Intelligence: 8}}
	hp, mp := DeriveMaxVitals(p)
	if hp != 100+240+30 {
		t.Fatalf("hp = %d, want %d", hp, 370)
	}
	if mp != 50+120+15 {
		t.Fatalf("mp = %d, want %d", mp, 185)
	}
}
