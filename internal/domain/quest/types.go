package quest

import "time"

type State string

const (
	StateActive        State = "ACTIVE"
	StateCompleted     State = "COMPLETED"
	StateFailed        State = "FAILED"
	StatePenaltyActive State = "PENALTY_ACTIVE"
	StateEscaped       State = "ESCAPED"
)

// DailyQuest is the per-player, per-day training record. Metrics only move
// up, and only while the quest is active.
type DailyQuest struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	Date          string    `json:"date"`
	Pushups       int       `json:"pushups"`
	Situps        int       `json:"situps"`
	RunningKM     float64   `json:"running_km"`
	State         State     `json:"state"`
	RewardGranted bool      `json:"reward_granted"`
	PenaltyServed bool      `json:"penalty_served"`
	CreatedAt     time.Time `json:"created_at"`
	Deadline      time.Time `json:"deadline"`
	Version       int64     `json:"version"`
}

func (q DailyQuest) Completed() bool { return q.State == StateCompleted }
func (q DailyQuest) Failed() bool {
	return q.State == StateFailed || q.State == StatePenaltyActive || q.State == StateEscaped
}

// Terminal reports whether the quest can no longer accept progress or
// penalty transitions for the day.
func (q DailyQuest) Terminal() bool {
	return q.State == StateCompleted || q.State == StateEscaped
}

// Update carries absolute target values for a partial progress update.
type Update struct {
	Pushups   *int     `json:"pushups,omitempty"`
	Situps    *int     `json:"situps,omitempty"`
	RunningKM *float64 `json:"running_km,omitempty"`
}

func (u Update) Empty() bool {
	return u.Pushups == nil && u.Situps == nil && u.RunningKM == nil
}

// Reward is the fixed bundle granted exactly once on quest completion.
type Reward struct {
	Experience int `json:"experience"`
	Strength   int `json:"strength"`
	Vitality   int `json:"vitality"`
	Agility    int `json:"agility"`
}

func DailyReward() Reward {
	return Reward{
		Experience: RewardExperience,
		Strength:   RewardStrength,
		Vitality:   RewardVitality,
		Agility:    RewardAgility,
	}
}

type PenaltyStatus string

const (
	PenaltySurviving PenaltyStatus = "SURVIVING"
	PenaltyEscaped   PenaltyStatus = "ESCAPED"
)

// PenaltySession is the timed punitive event entered after quest failure.
// Snapshots are authoritative server state; clients replace, never merge.
type PenaltySession struct {
	ID                    string        `json:"id"`
	PlayerID              string        `json:"player_id"`
	QuestID               string        `json:"quest_id"`
	Status                PenaltyStatus `json:"status"`
	ProgressPercent       float64       `json:"progress_percent"`
	RemainingMinutes      int           `json:"remaining_minutes"`
	CentipedesEncountered int           `json:"centipedes_encountered"`
	DamageTaken           int           `json:"damage_taken"`
	DurationMinutes       int           `json:"duration_minutes"`
	StartedAt             time.Time     `json:"started_at"`
	Version               int64         `json:"version"`
}
