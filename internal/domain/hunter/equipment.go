package hunter

import (
	"strconv"
	"time"
)

type EquipmentType string

const (
	EquipmentWeapon    EquipmentType = "weapon"
	EquipmentArmor     EquipmentType = "armor"
	EquipmentAccessory EquipmentType = "accessory"
)

// Equipment is loot dropped by instant dungeons. Weapons carry attack, armor
// carries defense, accessories carry a cosmetic effect line.
type Equipment struct {
	ID         string        `json:"id"`
	PlayerID   string        `json:"player_id"`
	Name       string        `json:"name"`
	Type       EquipmentType `json:"type"`
	Category   string        `json:"category"`
	Rarity     Rarity        `json:"rarity"`
	Attack     int           `json:"attack,omitempty"`
	Defense    int           `json:"defense,omitempty"`
	Effect     string        `json:"effect,omitempty"`
	Durability int           `json:"durability"`
	Equipped   bool          `json:"equipped"`
	CreatedAt  time.Time     `json:"created_at"`
}

// CombatPowerWith extends the base power score with equipped gear: full
// attack value, defense at eighty percent.
func CombatPowerWith(p Player, gear []Equipment) int {
	bonus := 0.0
	for _, item := range gear {
		if !item.Equipped {
			continue
		}
		bonus += float64(item.Attack)
		bonus += float64(item.Defense) * EquipDefensePowerScale
	}
	return CombatPower(p) + int(bonus)
}

var rarityStatMultipliers = map[Rarity]float64{
	RarityCommon:    1.0,
	RarityRare:      1.5,
	RarityEpic:      2.0,
	RarityLegendary: 3.0,
	RarityMythic:    4.0,
}

type equipmentArchetype struct {
	kind       EquipmentType
	categories []string
	baseNames  []string
}

var equipmentArchetypes = []equipmentArchetype{
	{EquipmentWeapon, []string{"sword", "dagger", "bow", "staff"}, []string{"Blade", "Sword", "Dagger", "Bow", "Staff"}},
	{EquipmentArmor, []string{"chest", "legs", "helmet", "boots"}, []string{"Armor", "Plate", "Helm", "Boots"}},
	{EquipmentAccessory, []string{"ring", "necklace", "earring"}, []string{"Ring", "Necklace", "Earring"}},
}

// GenerateEquipment rolls a random item scaled to the hunter's level. The
// primary stat is level×5 times the rarity multiplier, jittered ±20%.
func GenerateEquipment(playerLevel int, rarity Rarity, rng Rand) Equipment {
	arch := equipmentArchetypes[pick(rng, len(equipmentArchetypes))]
	category := arch.categories[pick(rng, len(arch.categories))]
	baseName := arch.baseNames[pick(rng, len(arch.baseNames))]

	mult := rarityStatMultipliers[rarity]
	baseValue := float64(playerLevel) * EquipBaseValuePerLevel

	item := Equipment{
		Name:       string(rarity) + " " + baseName,
		Type:       arch.kind,
		Category:   category,
		Rarity:     rarity,
		Durability: EquipBaseDurability,
	}

	switch arch.kind {
	case EquipmentWeapon:
		item.Attack = int(baseValue * mult * jitter(rng))
	case EquipmentArmor:
		item.Defense = int(baseValue * mult * jitter(rng))
	default:
		item.Effect = accessoryEffects(mult)[pick(rng, 5)]
	}
	return item
}

// RollDropRarity draws a drop rarity from the dungeon loot table.
func RollDropRarity(rng Rand) Rarity {
	roll := rng.Float64()
	acc := 0.0
	for _, tier := range dropRarityTable {
		acc += tier.weight
		if roll < acc {
			return tier.rarity
		}
	}
	return RarityMythic
}

var dropRarityTable = []struct {
	rarity Rarity
	weight float64
}{
	{RarityCommon, 0.4},
	{RarityRare, 0.3},
	{RarityEpic, 0.2},
	{RarityLegendary, 0.08},
	{RarityMythic, 0.02},
}

func accessoryEffects(mult float64) [5]string {
	return [5]string{
		"+" + strconv.Itoa(int(10*mult)) + " HP",
		"+" + strconv.Itoa(int(5*mult)) + " MP",
		"+" + strconv.Itoa(int(2*mult)) + " Strength",
		"+" + strconv.Itoa(int(2*mult)) + " Agility",
		"+" + strconv.Itoa(int(2*mult)) + " Intelligence",
	}
}

// pick maps one uniform draw onto an index in [0,n).
func pick(rng Rand, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// jitter draws the ±20% stat spread.
func jitter(rng Rand) float64 {
	return EquipJitterLow + rng.Float64()*(EquipJitterHigh-EquipJitterLow)
}
