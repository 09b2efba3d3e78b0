package quest

import "time"

type DayClockConfig struct {
	StartAt     time.Time
	DayDuration time.Duration
}

// DayClock slices wall-clock time into fixed quest-day windows. A quest is
// bound to the window it was created in; the window end is its deadline.
type DayClock struct {
	cfg DayClockConfig
}

func NewDayClock(cfg DayClockConfig) DayClock {
	if cfg.DayDuration <= 0 {
		cfg.DayDuration = QuestDayDuration
	}
	if cfg.StartAt.IsZero() {
		cfg.StartAt = time.Unix(0, 0)
	}
	return DayClock{cfg: cfg}
}

func DefaultDayClock() DayClock {
	return NewDayClock(DayClockConfig{})
}

// WindowAt returns the bounds of the quest day containing now.
func (c DayClock) WindowAt(now time.Time) (start, end time.Time) {
	elapsed := now.Sub(c.cfg.StartAt)
	if elapsed < 0 {
		elapsed = 0
	}
	offset := elapsed % c.cfg.DayDuration
	start = now.Add(-offset)
	return start, start.Add(c.cfg.DayDuration)
}

// Remaining is the time left before the current window closes.
func (c DayClock) Remaining(now time.Time) time.Duration {
	_, end := c.WindowAt(now)
	return end.Sub(now)
}

// SameDay reports whether two instants fall in the same quest-day window.
func (c DayClock) SameDay(a, b time.Time) bool {
	startA, _ := c.WindowAt(a)
	startB, _ := c.WindowAt(b)
	return startA.Equal(startB)
}
