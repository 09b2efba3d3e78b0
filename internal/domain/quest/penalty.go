package quest

import (
	"math"
	"time"

	"shadowrise/internal/domain/hunter"
)

// NewPenaltySession opens the desert for a player whose quest failed.
func NewPenaltySession(id string, q DailyQuest, now time.Time) PenaltySession {
	return PenaltySession{
		ID:               id,
		PlayerID:         q.PlayerID,
		QuestID:          q.ID,
		Status:           PenaltySurviving,
		RemainingMinutes: PenaltyDurationMinutes,
		DurationMinutes:  PenaltyDurationMinutes,
		StartedAt:        now,
	}
}

// Advance recomputes the session snapshot for the given instant. Survival
// progress is purely elapsed time over duration; each advance while still
// surviving rolls one centipede encounter through the injected source.
// Returns true when this advance crossed into ESCAPED.
func Advance(s *PenaltySession, now time.Time, rng hunter.Rand) bool {
	if s.Status == PenaltyEscaped {
		return false
	}

	duration := time.Duration(s.DurationMinutes) * time.Minute
	elapsed := now.Sub(s.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed >= duration {
		s.Status = PenaltyEscaped
		s.ProgressPercent = 100
		s.RemainingMinutes = 0
		return true
	}

	s.ProgressPercent = math.Min(100, float64(elapsed)/float64(duration)*100)
	s.RemainingMinutes = int(math.Ceil((duration - elapsed).Minutes()))
	if rng.Float64() < EncounterChance {
		s.CentipedesEncountered++
		spread := EncounterDamageMax - EncounterDamageMin
		s.DamageTaken += EncounterDamageMin + int(rng.Float64()*float64(spread+1))
	}
	return false
}
