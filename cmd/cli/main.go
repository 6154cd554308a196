// Command cli records one movement from the command line, using the
// same extraction and ledger path as the bot. Useful for backfilling
// and for trying prompts without Telegram.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/oswaldo-hello/capirubot/internal/config"
	"github.com/oswaldo-hello/capirubot/internal/dates"
	"github.com/oswaldo-hello/capirubot/internal/extract"
	"github.com/oswaldo-hello/capirubot/internal/ledger"
	"github.com/oswaldo-hello/capirubot/internal/logger"
	"github.com/oswaldo-hello/capirubot/internal/taxonomy"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: cli <movement text>")
		fmt.Fprintln(os.Stderr, `example: cli "Gasté 35 soles en comida ayer"`)
		os.Exit(2)
	}
	text := strings.TrimSpace(strings.Join(os.Args[1:], " "))

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.RequireLedger(); err != nil {
		log.Fatal().Err(err).Msg("Missing configuration")
	}

	loc, err := dates.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}

	ctx := context.Background()
	tax := taxonomy.Default()

	store, err := ledger.NewSheetsStore(ctx, cfg.SheetID, cfg.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets store")
	}

	extractor, err := extract.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, tax, loc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extractor")
	}

	res, err := extractor.Extract(ctx, text)
	if err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}

	nowTime := time.Now().In(loc)
	norm := extract.Normalize(res, text, civil.DateOf(nowTime))
	if !norm.HasAmount() {
		log.Fatal().Str("text", text).Msg("Extraction produced no amount; nothing recorded")
	}

	row := ledger.Row{
		Date:        norm.Date,
		Category:    norm.Category,
		Subcategory: norm.Subcategory,
		Amount:      norm.Amount,
		Comment:     text,
		RecordedAt:  nowTime.Format("2006-01-02 15:04:05"),
	}
	if err := store.Append(ctx, row); err != nil {
		log.Fatal().Err(err).Msg("Failed to append row")
	}

	fmt.Printf("Recorded: %s | %s / %s | %s %s\n",
		norm.Date, norm.Category, norm.Subcategory, norm.Amount.String(), norm.Currency)
}
