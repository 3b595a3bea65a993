package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTP.Addr != ":5000" {
		t.Errorf("unexpected default addr: %q", cfg.HTTP.Addr)
	}
	if cfg.Store.DatabasePath != "data/watchlist.db" {
		t.Errorf("unexpected default db path: %q", cfg.Store.DatabasePath)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("unexpected default session ttl: %v", cfg.Session.TTL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unexpected default log level: %q", cfg.Log.Level)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WATCHLIST_ADDR", ":8080")
	t.Setenv("WATCHLIST_DB_PATH", "/tmp/test.db")
	t.Setenv("WATCHLIST_SESSION_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr not read from env: %q", cfg.HTTP.Addr)
	}
	if cfg.Store.DatabasePath != "/tmp/test.db" {
		t.Errorf("db path not read from env: %q", cfg.Store.DatabasePath)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("session ttl not read from env: %v", cfg.Session.TTL)
	}
}
