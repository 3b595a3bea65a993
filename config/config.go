package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	HTTP    HTTPConfig
	Store   StoreConfig
	Session SessionConfig
	Log     LogConfig
}

type HTTPConfig struct {
	Addr         string        `env:"WATCHLIST_ADDR" env-default:":5000"`
	ReadTimeout  time.Duration `env:"WATCHLIST_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"WATCHLIST_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"WATCHLIST_IDLE_TIMEOUT" env-default:"60s"`
}

type StoreConfig struct {
	DatabasePath string `env:"WATCHLIST_DB_PATH" env-default:"data/watchlist.db"`
}

type SessionConfig struct {
	TTL time.Duration `env:"WATCHLIST_SESSION_TTL" env-default:"24h"`
}

type LogConfig struct {
	Level string `env:"WATCHLIST_LOG_LEVEL" env-default:"info"`
	// File enables rotated file output when set; empty logs to stderr only.
	File      string `env:"WATCHLIST_LOG_FILE" env-default:""`
	MaxSizeMB int    `env:"WATCHLIST_LOG_MAX_SIZE_MB" env-default:"20"`
	MaxAge    int    `env:"WATCHLIST_LOG_MAX_AGE_DAYS" env-default:"14"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}
