package hunter

const (
	AttackPerStrength    = 2.5
	DefensePerVitality   = 2.0
	MagicPerIntelligence = 3.0

	BaseHP            = 100
	BaseMP            = 50
	HPPerVitality     = 20
	HPPerLevel        = 10
	MPPerIntelligence = 15
	MPPerLevel        = 5

	// Flat extraction bonus per hunter level, hard-capped below certainty.
	ExtractionLevelBonus = 0.02
	ExtractionRateCap    = 0.95

	DefaultShadowCapacity = 10
	ShadowBaseLoyalty     = 50
	ShadowBaseMaxXP       = 1000

	ShadowUpgradeStatScale = 1.1
	ShadowUpgradeBarScale  = 1.5
	ShadowUpgradeLoyalty   = 5
	ShadowLoyaltyCap       = 100

	EquipBaseValuePerLevel = 5.0
	EquipBaseDurability    = 100
	EquipJitterLow         = 0.8
	EquipJitterHigh        = 1.2
	EquipDefensePowerScale = 0.8
)

// Experience required to advance from the given level to the next. The first
// five steps are hand-tuned; beyond that the curve grows by half each level.
var levelExpRequirements = map[int]int{
	1: 1000,
	2: 2000,
	3: 3500,
	4: 5500,
	5: 8000,
}
