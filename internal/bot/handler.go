// Package bot handles incoming Telegram updates: text and voice notes
// describing financial movements, recorded one row at a time.
package bot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oswaldo-hello/capirubot/internal/extract"
	"github.com/oswaldo-hello/capirubot/internal/ledger"
	"github.com/oswaldo-hello/capirubot/internal/taxonomy"
	"github.com/oswaldo-hello/capirubot/internal/transcribe"
)

// User-visible replies. The bot speaks Spanish like its users.
const (
	replyInvalidText  = "Por favor ingresa un texto válido."
	replyParseFailed  = "❌ No pude interpretar tu mensaje."
	replyRecordFailed = "❌ No pude registrar el movimiento, inténtalo de nuevo."
	replyNoAttachment = "Envíame un mensaje de voz o un audio para registrarlo."

	confirmationFormat = "✅ Movimiento registrado:\n" +
		"- Fecha: %s\n" +
		"- Categoría: %s / %s\n" +
		"- Monto: %s %s\n" +
		"- Comentario: %s"

	recordedAtLayout = "2006-01-02 15:04:05"
)

// VoiceArchiver stores a copy of a voice note before it is deleted.
type VoiceArchiver interface {
	UploadVoice(ctx context.Context, path string) (string, error)
}

// Deps are the injected service handles the handler orchestrates.
// Archiver may be nil; Now and Taxonomy default when unset.
type Deps struct {
	Extractor   extract.Extractor
	Transcriber transcribe.Transcriber
	Store       ledger.Store
	Archiver    VoiceArchiver
	Sender      Sender
	Downloader  FileDownloader
	Taxonomy    taxonomy.Table
	Location    *time.Location
	Now         func() time.Time
	Log         zerolog.Logger
}

// Handler processes one update at a time to completion. All failures
// are per-message: logged, reported to the user, never fatal.
type Handler struct {
	extractor   extract.Extractor
	transcriber transcribe.Transcriber
	store       ledger.Store
	archiver    VoiceArchiver
	sender      Sender
	downloader  FileDownloader
	tax         taxonomy.Table
	loc         *time.Location
	now         func() time.Time
	log         zerolog.Logger
}

// NewHandler wires a handler from its dependencies.
func NewHandler(deps Deps) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Taxonomy == nil {
		deps.Taxonomy = taxonomy.Default()
	}
	return &Handler{
		extractor:   deps.Extractor,
		transcriber: deps.Transcriber,
		store:       deps.Store,
		archiver:    deps.Archiver,
		sender:      deps.Sender,
		downloader:  deps.Downloader,
		tax:         deps.Taxonomy,
		loc:         deps.Location,
		now:         deps.Now,
		log:         deps.Log,
	}
}

// HandleUpdate routes one incoming update. Text goes straight to the
// text path; anything else is treated as a voice intake attempt.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	if msg.Text != "" {
		h.HandleText(ctx, msg.Chat.ID, msg.Text)
		return
	}
	h.HandleVoice(ctx, msg)
}

// HandleText runs the full record flow for one text message:
// validate, extract, normalize, append, confirm.
func (h *Handler) HandleText(ctx context.Context, chatID int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		h.reply(chatID, replyInvalidText)
		return
	}

	res, err := h.extractor.Extract(ctx, text)
	if err != nil {
		h.log.Error().Err(err).Msg("extraction failed")
		h.reply(chatID, replyParseFailed)
		return
	}

	now := h.now().In(h.loc)
	norm := extract.Normalize(res, text, civil.DateOf(now))

	if !norm.HasAmount() {
		h.log.Warn().Str("text", text).Msg("extraction produced no amount")
		h.reply(chatID, replyParseFailed)
		return
	}

	if err := h.tax.Validate(norm.Category, norm.Subcategory); err != nil {
		// Recorded anyway: the model is trusted for taxonomy values.
		h.log.Warn().Err(err).Msg("extraction outside taxonomy")
	}

	row := ledger.Row{
		Date:        norm.Date,
		Category:    norm.Category,
		Subcategory: norm.Subcategory,
		Amount:      norm.Amount,
		Comment:     text,
		RecordedAt:  now.Format(recordedAtLayout),
	}
	if err := h.store.Append(ctx, row); err != nil {
		h.log.Error().Err(err).Msg("append to ledger failed")
		h.reply(chatID, replyRecordFailed)
		return
	}

	description := norm.Description
	if description == "" {
		description = text
	}
	h.reply(chatID, fmt.Sprintf(confirmationFormat,
		norm.Date, norm.Category, norm.Subcategory,
		norm.Amount.String(), norm.Currency, description))

	h.log.Info().
		Str("date", norm.Date).
		Str("category", norm.Category).
		Str("subcategory", norm.Subcategory).
		Str("amount", norm.Amount.String()).
		Msg("movement recorded")
}

// HandleVoice downloads the attachment to a temp file, transcribes it
// and forwards the transcript to the text path. The temp file is
// removed on every exit path, including download and transcription
// failures.
func (h *Handler) HandleVoice(ctx context.Context, msg *tgbotapi.Message) {
	fileID := voiceFileID(msg)
	if fileID == "" {
		h.reply(msg.Chat.ID, replyNoAttachment)
		return
	}

	tmpPath := filepath.Join(os.TempDir(), "voice-"+uuid.New().String()+".oga")
	defer os.Remove(tmpPath)

	if err := h.downloader.Download(ctx, fileID, tmpPath); err != nil {
		h.log.Error().Err(err).Str("file_id", fileID).Msg("voice download failed")
		h.reply(msg.Chat.ID, "❌ No pude descargar el audio: "+err.Error())
		return
	}

	if h.archiver != nil {
		if uri, err := h.archiver.UploadVoice(ctx, tmpPath); err != nil {
			h.log.Warn().Err(err).Msg("voice archive failed")
		} else {
			h.log.Debug().Str("uri", uri).Msg("voice note archived")
		}
	}

	transcript, err := h.transcriber.Transcribe(ctx, tmpPath)
	if err != nil {
		h.log.Error().Err(err).Str("file_id", fileID).Msg("transcription failed")
		h.reply(msg.Chat.ID, "❌ No pude transcribir el audio: "+err.Error())
		return
	}

	h.log.Info().Str("transcript", transcript).Msg("voice note transcribed")
	h.HandleText(ctx, msg.Chat.ID, transcript)
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Error().Err(err).Int64("chat_id", chatID).Msg("send reply failed")
	}
}

func voiceFileID(msg *tgbotapi.Message) string {
	if msg.Voice != nil {
		return msg.Voice.FileID
	}
	if msg.Audio != nil {
		return msg.Audio.FileID
	}
	return ""
}
