package httpadapter

import (
	"shadowrise/internal/app/daily"
	"shadowrise/internal/domain/quest"
)

// Flavor strings are cosmetic. Nothing reads them back.

func questFlavor(q daily.QuestView) string {
	switch q.State {
	case quest.StateCompleted:
		return "Daily quest complete. The System acknowledges your effort."
	case quest.StateFailed:
		return "You have failed the daily quest. The penalty zone awaits."
	case quest.StatePenaltyActive:
		return "The penalty has begun. Survive."
	case quest.StateEscaped:
		return "The penalty is served. Do not fail again."
	}
	switch {
	case q.Progress == 0:
		return "The System has issued your daily quest."
	case q.Progress < 50:
		return "Keep moving. The System is watching."
	default:
		return "Almost there. Finish before the timer runs out."
	}
}

func penaltyFlavor(s quest.PenaltySession) string {
	if s.Status == quest.PenaltyEscaped {
		return "You have survived the penalty zone."
	}
	return "An endless desert. Giant centipedes stir beneath the sand."
}
