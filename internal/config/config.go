package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries need from the environment.
type Config struct {
	// TelegramToken authenticates the bot against the Telegram Bot API.
	TelegramToken string

	// GeminiAPIKey authenticates extraction and transcription calls.
	GeminiAPIKey string

	// SheetID identifies the spreadsheet used as the transaction ledger.
	SheetID string

	// CredentialsFile is the path to a service-account JSON key. When
	// empty, Application Default Credentials are used.
	CredentialsFile string

	// AudioArchiveBucket, when set, enables archiving of raw voice
	// notes to GCS before transcription.
	AudioArchiveBucket string

	// HTTPAddr is the listen address for the read-only API server.
	HTTPAddr string

	// LogLevel selects the zerolog level for all binaries.
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the
// process environment. A missing .env file is not an error; missing
// required variables are.
func Load() (*Config, error) {
	// Populates the environment only for keys not already set.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		SheetID:            os.Getenv("GOOGLE_SHEET_ID"),
		CredentialsFile:    os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		AudioArchiveBucket: os.Getenv("AUDIO_ARCHIVE_BUCKET"),
		HTTPAddr:           os.Getenv("HTTP_ADDR"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	return cfg, nil
}

// RequireBot validates the variables the bot binary cannot run without.
func (c *Config) RequireBot() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("config: TELEGRAM_BOT_TOKEN is required")
	}
	return c.RequireLedger()
}

// RequireLedger validates the variables needed to talk to the sheet
// and the extraction service.
func (c *Config) RequireLedger() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config: GEMINI_API_KEY is required")
	}
	return c.RequireSheet()
}

// RequireSheet validates the variables needed for ledger access alone.
func (c *Config) RequireSheet() error {
	if c.SheetID == "" {
		return fmt.Errorf("config: GOOGLE_SHEET_ID is required")
	}
	return nil
}
