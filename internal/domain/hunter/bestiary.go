package hunter

// Bestiary lists the extraction targets a hunter can attempt after combat.
// Base rates drop and mana costs climb with rarity.
var Bestiary = []Enemy{
	{Name: "Goblin", Type: "Basic Monster", Rarity: RarityCommon, PowerLevel: 150, SuccessRate: 0.8, ManaCost: 50},
	{Name: "Hobgoblin", Type: "Elite Monster", Rarity: RarityRare, PowerLevel: 300, SuccessRate: 0.65, ManaCost: 100},
	{Name: "Ice Elf", Type: "Magical Creature", Rarity: RarityEpic, PowerLevel: 600, SuccessRate: 0.5, ManaCost: 200},
	{Name: "Demon Soldier", Type: "Infernal Warrior", Rarity: RarityLegendary, PowerLevel: 1200, SuccessRate: 0.3, ManaCost: 400},
	{Name: "Dragon", Type: "Ancient Beast", Rarity: RarityMythic, PowerLevel: 2500, SuccessRate: 0.15, ManaCost: 800},
}

// EnemyByName looks an enemy up in the bestiary.
func EnemyByName(name string) (Enemy, bool) {
	for _, e := range Bestiary {
		if e.Name == name {
			return e, true
		}
	}
	return Enemy{}, false
}
