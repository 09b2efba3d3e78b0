package daily

import (
	"fmt"
	"time"

	"shadowrise/internal/domain/hunter"
	"shadowrise/internal/domain/quest"
)

type GetRequest struct {
	PlayerID string
}

type UpdateRequest struct {
	PlayerID string
	Update   quest.Update
}

// QuestView is the wire shape of a daily quest snapshot.
type QuestView struct {
	ID            string      `json:"id"`
	PlayerID      string      `json:"player_id"`
	Date          string      `json:"date"`
	Pushups       int         `json:"pushups"`
	Situps        int         `json:"situps"`
	RunningKM     float64     `json:"running_km"`
	Progress      float64     `json:"progress"`
	Completed     bool        `json:"completed"`
	Failed        bool        `json:"failed"`
	PenaltyServed bool        `json:"penalty_served"`
	State         quest.State `json:"state"`
	TimeRemaining string      `json:"time_remaining"`
}

type Response struct {
	Quest         QuestView             `json:"quest"`
	RewardGranted bool                  `json:"reward_granted"`
	Reward        *quest.Reward         `json:"reward,omitempty"`
	LevelUp       *hunter.LevelUpResult `json:"level_up,omitempty"`
	Player        *hunter.Player        `json:"player,omitempty"`
}

func viewOf(q quest.DailyQuest, now time.Time) QuestView {
	return QuestView{
		ID:            q.ID,
		PlayerID:      q.PlayerID,
		Date:          q.Date,
		Pushups:       q.Pushups,
		Situps:        q.Situps,
		RunningKM:     q.RunningKM,
		Progress:      quest.Progress(q),
		Completed:     q.Completed(),
		Failed:        q.Failed(),
		PenaltyServed: q.PenaltyServed,
		State:         q.State,
		TimeRemaining: formatRemaining(q.Deadline.Sub(now)),
	}
}

func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
