package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RUN_INTERVAL", "")
	t.Setenv("RUNNER_ENABLED", "")
	t.Setenv("PROVIDER", "")
	t.Setenv("NBA_API_KEY", "")
	t.Setenv("UPDATE_TOPIC", "")
	t.Setenv("UPDATE_SUBJECT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.RunInterval != 15*time.Minute {
		t.Fatalf("expected default interval, got %v", cfg.RunInterval)
	}
	if !cfg.RunnerEnabled {
		t.Fatal("expected runner enabled by default")
	}
	if cfg.Provider != "sportsdata" {
		t.Fatalf("expected default provider, got %s", cfg.Provider)
	}
	if cfg.Updates.Subject != "NBA Game Updates" {
		t.Fatalf("expected default subject, got %s", cfg.Updates.Subject)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if !cfg.Updates.Missing() {
		t.Fatal("expected required values to be missing by default")
	}
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("RUN_INTERVAL", "30s")
	t.Setenv("RUNNER_ENABLED", "false")
	t.Setenv("NBA_API_KEY", "secret")
	t.Setenv("UPDATE_TOPIC", "updates.nba")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_PORT", "9191")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.RunInterval != 30*time.Second {
		t.Fatalf("expected interval override, got %v", cfg.RunInterval)
	}
	if cfg.RunnerEnabled {
		t.Fatal("expected runner disabled")
	}
	if cfg.Updates.Missing() {
		t.Fatal("expected required values to be present")
	}
	if cfg.Redis.DB != 2 {
		t.Fatalf("expected redis db 2, got %d", cfg.Redis.DB)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9191" {
		t.Fatalf("expected metrics override, got %+v", cfg.Metrics)
	}
}

func TestDurationEnvRejectsGarbage(t *testing.T) {
	t.Setenv("RUN_INTERVAL", "soon")
	if cfg := Load(); cfg.RunInterval != 15*time.Minute {
		t.Fatalf("expected fallback to default, got %v", cfg.RunInterval)
	}
	t.Setenv("RUN_INTERVAL", "-5m")
	if cfg := Load(); cfg.RunInterval != 15*time.Minute {
		t.Fatalf("expected fallback for negative interval, got %v", cfg.RunInterval)
	}
}

func TestMissingRequiresBothValues(t *testing.T) {
	if (UpdatesConfig{APIKey: "k", Topic: "t"}).Missing() {
		t.Fatal("expected complete config to pass")
	}
	if !(UpdatesConfig{APIKey: "k"}).Missing() {
		t.Fatal("expected missing topic to be flagged")
	}
	if !(UpdatesConfig{Topic: "t"}).Missing() {
		t.Fatal("expected missing key to be flagged")
	}
}
