package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oswaldo-hello/capirubot/internal/archive"
	"github.com/oswaldo-hello/capirubot/internal/bot"
	"github.com/oswaldo-hello/capirubot/internal/config"
	"github.com/oswaldo-hello/capirubot/internal/dates"
	"github.com/oswaldo-hello/capirubot/internal/extract"
	"github.com/oswaldo-hello/capirubot/internal/ledger"
	"github.com/oswaldo-hello/capirubot/internal/logger"
	"github.com/oswaldo-hello/capirubot/internal/taxonomy"
	"github.com/oswaldo-hello/capirubot/internal/transcribe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.RequireBot(); err != nil {
		log.Fatal().Err(err).Msg("Missing configuration")
	}

	loc, err := dates.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := ledger.NewSheetsStore(ctx, cfg.SheetID, cfg.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets store")
	}

	tax := taxonomy.Default()

	extractor, err := extract.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, tax, loc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extractor")
	}

	transcriber, err := transcribe.NewGeminiTranscriber(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create transcriber")
	}

	tgBot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Telegram bot")
	}
	log.Info().Str("username", tgBot.Self.UserName).Msg("Bot authorized")

	var archiver bot.VoiceArchiver
	if cfg.AudioArchiveBucket != "" {
		archiver = archive.NewUploader(cfg.AudioArchiveBucket)
		log.Info().Str("bucket", cfg.AudioArchiveBucket).Msg("Voice archiving enabled")
	}

	handler := bot.NewHandler(bot.Deps{
		Extractor:   extractor,
		Transcriber: transcriber,
		Store:       store,
		Archiver:    archiver,
		Sender:      tgBot,
		Downloader:  bot.NewBotDownloader(tgBot),
		Taxonomy:    tax,
		Location:    loc,
		Log:         log,
	})

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := tgBot.GetUpdatesChan(updateCfg)

	// Shut down on interrupt; in-flight message handling finishes first.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Msg("Bot started, waiting for updates...")

	for {
		select {
		case <-quit:
			log.Info().Msg("Shutting down bot...")
			tgBot.StopReceivingUpdates()
			cancel()
			log.Info().Msg("Bot exited")
			return
		case update := <-updates:
			// One update at a time, handled to completion.
			handler.HandleUpdate(ctx, update)
		}
	}
}
