package quest

import "time"

const (
	PushupsMax   = 100
	SitupsMax    = 100
	RunningKMMax = 10.0

	// The three weights must keep this exact split so the completion
	// threshold lands on 100 when every metric maxes out.
	PushupsWeight = 33.33
	SitupsWeight  = 33.33
	RunningWeight = 33.34

	QuestDayDuration = 24 * time.Hour

	RewardExperience = 1000
	RewardStrength   = 2
	RewardVitality   = 1
	RewardAgility    = 1

	// Each shadow in the roster feeds off its owner's discipline.
	ShadowExperiencePerQuest = 100

	PenaltyDurationMinutes = 120
	EncounterChance        = 0.35
	EncounterDamageMin     = 5
	EncounterDamageMax     = 15
)
