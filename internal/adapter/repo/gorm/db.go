package gormrepo

import (
	"fmt"

	"shadowrise/internal/app/ports"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	_ ports.PlayerRepository         = PlayerRepo{}
	_ ports.DailyQuestRepository     = DailyQuestRepo{}
	_ ports.PenaltySessionRepository = PenaltySessionRepo{}
	_ ports.ShadowRepository         = ShadowRepo{}
	_ ports.EventRepository          = EventRepo{}
	_ ports.TxManager                = TxManager{}
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
