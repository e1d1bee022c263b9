package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (and .env, when present).
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	History        bool          `env:"HISTORY_ENABLED" envDefault:"true"`
	DBPath         string        `env:"DB_PATH" envDefault:"./data/hangman.db"`
	WordsFile      string        `env:"WORDS_FILE"`                    // empty uses the embedded list
	WordMode       string        `env:"WORD_MODE" envDefault:"random"` // random | daily
	DailySalt      string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.WordMode {
	case "random", "daily":
	default:
		return Config{}, fmt.Errorf("WORD_MODE must be random or daily, got %q", cfg.WordMode)
	}
	return cfg, nil
}
