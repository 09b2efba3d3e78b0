package ports

import "shadowrise/internal/domain/hunter"

type GameMetrics interface {
	RecordQuestCompleted()
	RecordQuestFailed()
	RecordExtraction(rarity hunter.Rarity, success bool)
	RecordRaid(success bool)
	RecordPenaltyEntered()
	RecordPenaltyEscaped()
}
