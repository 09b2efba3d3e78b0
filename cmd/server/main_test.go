package main

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("SHADOWRISE_ADDR", "")
	t.Setenv("SHADOWRISE_QUEST_DAY", "")
	t.Setenv("SHADOWRISE_STORY_ROOT", "")

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8001" {
		t.Fatalf("addr = %q, want :8001", cfg.Addr)
	}
	if cfg.QuestDay != 24*time.Hour {
		t.Fatalf("quest day = %v, want 24h", cfg.QuestDay)
	}
	if cfg.StoryRoot != "./story" {
		t.Fatalf("story root = %q, want ./story", cfg.StoryRoot)
	}
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("SHADOWRISE_ADDR", ":9090")
	t.Setenv("SHADOWRISE_QUEST_DAY", "10m")

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.QuestDay != 10*time.Minute {
		t.Fatalf("quest day = %v, want 10m", cfg.QuestDay)
	}
}
