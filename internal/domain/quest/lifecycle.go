package quest

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidProgress  = errors.New("progress value out of range")
	ErrAlreadyComplete  = errors.New("daily quest already complete")
	ErrQuestTerminal    = errors.New("daily quest is terminal for the day")
	ErrQuestNotFailed   = errors.New("daily quest has not failed")
	ErrPenaltyNotActive = errors.New("no active penalty for this quest")
)

// NewDailyQuest opens the day's quest with all metrics at zero and the
// deadline at the end of the current day window.
func NewDailyQuest(id, playerID string, now time.Time, clock DayClock) DailyQuest {
	start, end := clock.WindowAt(now)
	return DailyQuest{
		ID:        id,
		PlayerID:  playerID,
		Date:      start.UTC().Format("2006-01-02"),
		State:     StateActive,
		CreatedAt: start,
		Deadline:  end,
	}
}

// Progress aggregates the three training metrics into a completion
// percentage in [0,100]. The weights sum to 100 by construction.
func Progress(q DailyQuest) float64 {
	p := float64(q.Pushups)/PushupsMax*PushupsWeight +
		float64(q.Situps)/SitupsMax*SitupsWeight +
		q.RunningKM/RunningKMMax*RunningWeight
	return math.Min(100, math.Max(0, p))
}

// Apply folds an absolute-value update into the quest. Metrics are clamped to
// their maxima and never move backwards; values below the current reading are
// ignored rather than rejected so duplicate client sends stay harmless.
// Only an Active quest accepts updates.
func (q *DailyQuest) Apply(u Update) error {
	switch q.State {
	case StateActive:
	case StateCompleted:
		return ErrAlreadyComplete
	default:
		return ErrQuestTerminal
	}
	if u.Pushups != nil && *u.Pushups < 0 {
		return ErrInvalidProgress
	}
	if u.Situps != nil && *u.Situps < 0 {
		return ErrInvalidProgress
	}
	if u.RunningKM != nil && *u.RunningKM < 0 {
		return ErrInvalidProgress
	}

	if u.Pushups != nil {
		q.Pushups = clampMetric(*u.Pushups, q.Pushups, PushupsMax)
	}
	if u.Situps != nil {
		q.Situps = clampMetric(*u.Situps, q.Situps, SitupsMax)
	}
	if u.RunningKM != nil {
		v := math.Min(*u.RunningKM, RunningKMMax)
		if v > q.RunningKM {
			q.RunningKM = v
		}
	}
	return nil
}

func clampMetric(v, current, max int) int {
	if v > max {
		v = max
	}
	if v < current {
		return current
	}
	return v
}

// TryComplete transitions Active -> Completed once aggregate progress reaches
// 100 and hands back the reward bundle. The RewardGranted flag guards against
// duplicate completion signals: the bundle is returned exactly once.
func (q *DailyQuest) TryComplete() (Reward, bool) {
	if q.State != StateActive || Progress(*q) < 100 {
		return Reward{}, false
	}
	q.State = StateCompleted
	if q.RewardGranted {
		return Reward{}, false
	}
	q.RewardGranted = true
	return DailyReward(), true
}

// MarkFailedIfExpired drives the wall-clock failure transition.
func (q *DailyQuest) MarkFailedIfExpired(now time.Time) bool {
	if q.State != StateActive || !now.After(q.Deadline) {
		return false
	}
	q.State = StateFailed
	return true
}

// EnterPenalty transitions a failed quest into the penalty zone. Explicit
// opt-in only; a served penalty cannot be re-entered.
func (q *DailyQuest) EnterPenalty() error {
	switch q.State {
	case StateFailed:
		q.State = StatePenaltyActive
		return nil
	case StatePenaltyActive:
		return nil
	case StateCompleted:
		return ErrAlreadyComplete
	case StateEscaped:
		return ErrQuestTerminal
	default:
		return ErrQuestNotFailed
	}
}

// MarkEscaped closes the penalty arc. Terminal for the day.
func (q *DailyQuest) MarkEscaped() error {
	if q.State != StatePenaltyActive {
		return ErrPenaltyNotActive
	}
	q.State = StateEscaped
	q.PenaltyServed = true
	return nil
}
