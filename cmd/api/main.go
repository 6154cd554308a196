package main

import (
	"context"

	"github.com/oswaldo-hello/capirubot/internal/api"
	"github.com/oswaldo-hello/capirubot/internal/config"
	"github.com/oswaldo-hello/capirubot/internal/ledger"
	"github.com/oswaldo-hello/capirubot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.RequireSheet(); err != nil {
		log.Fatal().Err(err).Msg("Missing configuration")
	}

	store, err := ledger.NewSheetsStore(context.Background(), cfg.SheetID, cfg.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets store")
	}

	router := api.NewRouter(store, log)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API server starting")
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("API server failed")
	}
}
