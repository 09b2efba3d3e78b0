package main

import (
	"context"
	"errors"
	"log"
	"time"

	httpadapter "shadowrise/internal/adapter/http"
	metricsinmem "shadowrise/internal/adapter/metrics/inmemory"
	gormrepo "shadowrise/internal/adapter/repo/gorm"
	memrepo "shadowrise/internal/adapter/repo/memory"
	staticstory "shadowrise/internal/adapter/story/static"
	"shadowrise/internal/app/daily"
	"shadowrise/internal/app/extraction"
	"shadowrise/internal/app/journal"
	"shadowrise/internal/app/penalty"
	"shadowrise/internal/app/ports"
	"shadowrise/internal/app/raid"
	"shadowrise/internal/app/status"
	"shadowrise/internal/app/story"
	"shadowrise/internal/domain/quest"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"
)

type config struct {
	Addr          string        `env:"SHADOWRISE_ADDR" envDefault:":8001"`
	DBDSN         string        `env:"SHADOWRISE_DB_DSN"`
	MigrationsDir string        `env:"SHADOWRISE_MIGRATIONS_DIR" envDefault:"./migrations"`
	StoryRoot     string        `env:"SHADOWRISE_STORY_ROOT" envDefault:"./story"`
	QuestDay      time.Duration `env:"SHADOWRISE_QUEST_DAY" envDefault:"24h"`
}

type repoSet struct {
	players   ports.PlayerRepository
	quests    ports.DailyQuestRepository
	sessions  ports.PenaltySessionRepository
	shadows   ports.ShadowRepository
	equipment ports.EquipmentRepository
	events    ports.EventRepository
	tx        ports.TxManager
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	repos := mustBuildRepos(cfg)
	recorder := metricsinmem.NewRecorder()
	clock := quest.NewDayClock(quest.DayClockConfig{DayDuration: cfg.QuestDay})

	h := httpadapter.Handler{
		DailyUC: daily.UseCase{
			TxManager: repos.tx,
			Players:   repos.players,
			Quests:    repos.quests,
			Shadows:   repos.shadows,
			Events:    repos.events,
			Metrics:   recorder,
			Clock:     clock,
		},
		PenaltyUC: penalty.UseCase{
			TxManager: repos.tx,
			Players:   repos.players,
			Quests:    repos.quests,
			Sessions:  repos.sessions,
			Events:    repos.events,
			Metrics:   recorder,
		},
		ExtractionUC: extraction.UseCase{
			TxManager: repos.tx,
			Players:   repos.players,
			Shadows:   repos.shadows,
			Events:    repos.events,
			Metrics:   recorder,
		},
		RaidUC: raid.UseCase{
			TxManager: repos.tx,
			Players:   repos.players,
			Equipment: repos.equipment,
			Events:    repos.events,
			Metrics:   recorder,
		},
		StatusUC: status.UseCase{
			Players:   repos.players,
			Shadows:   repos.shadows,
			Equipment: repos.equipment,
		},
		JournalUC: journal.UseCase{Events: repos.events},
		StoryUC:   story.UseCase{Provider: staticstory.Provider{Root: cfg.StoryRoot}},
		KPI:       recorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("shadowrise server listening on %s (demo hunter: player_1)", cfg.Addr)
	s.Spin()
}

func mustBuildRepos(cfg config) repoSet {
	if cfg.DBDSN == "" {
		log.Println("SHADOWRISE_DB_DSN not set, falling back to in-memory repositories")
		store := memrepo.NewStore()
		memrepo.SeedDemoRoster(store, time.Now())
		return repoSet{
			players:   memrepo.NewPlayerRepo(store),
			quests:    memrepo.NewDailyQuestRepo(store),
			sessions:  memrepo.NewPenaltySessionRepo(store),
			shadows:   memrepo.NewShadowRepo(store),
			equipment: memrepo.NewEquipmentRepo(store),
			events:    memrepo.NewEventRepo(store),
			tx:        memrepo.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	players := gormrepo.NewPlayerRepo(db)
	shadows := gormrepo.NewShadowRepo(db)
	seedDemoHunter(players, shadows)

	return repoSet{
		players:   players,
		quests:    gormrepo.NewDailyQuestRepo(db),
		sessions:  gormrepo.NewPenaltySessionRepo(db),
		shadows:   shadows,
		equipment: gormrepo.NewEquipmentRepo(db),
		events:    gormrepo.NewEventRepo(db),
		tx:        gormrepo.NewTxManager(db),
	}
}

func seedDemoHunter(players ports.PlayerRepository, shadows ports.ShadowRepository) {
	ctx := context.Background()
	now := time.Now()

	p := memrepo.DemoPlayer(now)
	if _, err := players.GetByID(ctx, p.ID); err == nil {
		return
	} else if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load demo hunter: %v", err)
	}
	if err := players.SaveWithVersion(ctx, p, 0); err != nil {
		log.Fatalf("seed demo hunter: %v", err)
	}
	for _, s := range memrepo.DemoShadows(now) {
		if err := shadows.Save(ctx, s); err != nil {
			log.Fatalf("seed demo shadow %s: %v", s.ID, err)
		}
	}
}
