package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/apps/go-server/internal/history"
	"github.com/robalobadob/hangman/apps/go-server/internal/httpserver"
	"github.com/robalobadob/hangman/apps/go-server/internal/store"
	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	var supplier words.Supplier = list
	if cfg.WordMode == "daily" {
		supplier = words.NewDaily(list, cfg.DailySalt)
	}

	var rec history.Recorder = history.Nop{}
	if cfg.History {
		db, err := history.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open history db")
		}
		defer db.Close()
		rec = history.NewStore(db)
	} else {
		log.Info().Msg("history disabled")
	}

	srv := httpserver.New(store.NewMemoryStore(supplier), rec, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
		WordCount:      list.Len(),
	})
	log.Info().Str("port", cfg.Port).Str("wordMode", cfg.WordMode).Int("words", list.Len()).Msg("starting go-server")
	if err := http.ListenAndServe(":"+cfg.Port, srv.Handler()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
