package model

import "time"

type Player struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Level            int32
	Rank             string
	Title            string
	Experience       int64
	ExperienceToNext int64
	Strength         int32
	Agility          int32
	Intelligence     int32
	Vitality         int32
	Sense            int32
	StatPoints       int32
	Hp               int32
	MaxHp            int32
	Mp               int32
	MaxMp            int32
	ArmyCapacity     int32
	ArmyCurrent      int32
	GuildName        string
	GuildPosition    string
	GuildMembers     int32
	Version          int64
	UpdatedAt        time.Time
}

func (Player) TableName() string { return "players" }

type DailyQuest struct {
	ID            string `gorm:"primaryKey"`
	PlayerID      string
	Date          string
	Pushups       int32
	Situps        int32
	RunningKm     float64
	State         string
	RewardGranted bool
	PenaltyServed bool
	CreatedAt     time.Time
	Deadline      time.Time
	Version       int64
}

func (DailyQuest) TableName() string { return "daily_quests" }

type PenaltySession struct {
	ID                    string `gorm:"primaryKey"`
	PlayerID              string
	QuestID               string
	Status                string
	ProgressPercent       float64
	RemainingMinutes      int32
	CentipedesEncountered int32
	DamageTaken           int32
	DurationMinutes       int32
	StartedAt             time.Time
	Version               int64
}

func (PenaltySession) TableName() string { return "penalty_sessions" }

type Shadow struct {
	ID            string `gorm:"primaryKey"`
	PlayerID      string
	Name          string
	Type          string
	Level         int32
	Rarity        string
	Attack        int32
	Defense       int32
	Hp            int32
	Mp            int32
	Skills        []byte `gorm:"type:jsonb"`
	Loyalty       int32
	Experience    int64
	MaxExperience int64
	CreatedAt     time.Time
}

func (Shadow) TableName() string { return "shadows" }

type Equipment struct {
	ID         string `gorm:"primaryKey"`
	PlayerID   string
	Name       string
	Type       string
	Category   string
	Rarity     string
	Attack     int32
	Defense    int32
	Effect     string
	Durability int32
	Equipped   bool
	CreatedAt  time.Time
}

func (Equipment) TableName() string { return "equipment" }

type DomainEvent struct {
	ID         string `gorm:"primaryKey"`
	PlayerID   string
	Type       string
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
