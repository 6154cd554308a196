package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the outbound Telegram seam; *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// FileDownloader fetches a Telegram file to a local path.
type FileDownloader interface {
	Download(ctx context.Context, fileID, destPath string) error
}

// BotDownloader is the concrete FileDownloader backed by the Bot API
// file endpoint.
type BotDownloader struct {
	bot *tgbotapi.BotAPI
}

// NewBotDownloader creates a downloader for the given bot.
func NewBotDownloader(bot *tgbotapi.BotAPI) *BotDownloader {
	return &BotDownloader{bot: bot}
}

// Download resolves the file's direct URL and streams it to destPath.
func (d *BotDownloader) Download(ctx context.Context, fileID, destPath string) error {
	url, err := d.bot.GetFileDirectURL(fileID)
	if err != nil {
		return fmt.Errorf("Download: resolve file URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("Download: build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("Download: fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Download: fetch file: unexpected status %s", resp.Status)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("Download: create temp file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("Download: write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Download: close temp file: %w", err)
	}

	return nil
}
