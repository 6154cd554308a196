// Package transcribe turns recorded voice notes into plain text.
package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used for transcription.
const DefaultModelName = "gemini-2.5-flash"

// Transcriber converts an audio file into transcript text. This
// interface enables mocking of the model call in handler tests.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// GeminiTranscriber is the concrete Transcriber backed by Gemini.
type GeminiTranscriber struct {
	client *genai.Client
	model  string
}

// NewGeminiTranscriber creates a transcriber with its own GenAI client.
func NewGeminiTranscriber(ctx context.Context, apiKey string) (*GeminiTranscriber, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiTranscriber: create genai client: %w", err)
	}

	return &GeminiTranscriber{
		client: client,
		model:  DefaultModelName,
	}, nil
}

// Transcribe reads the audio file and asks the model for a verbatim
// transcript.
func (t *GeminiTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Transcribe: read audio file %q: %w", path, err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: "Transcribe el siguiente audio en español. Devuelve SOLO el texto transcrito, sin comentarios."},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeTypeFor(path),
						Data:     data,
					},
				},
			},
		},
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Transcribe: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("Transcribe: empty transcript from model")
	}

	return text, nil
}

// mimeTypeFor maps the audio file extension to a MIME type. Telegram
// voice notes arrive as OGG/Opus, so that is the default.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/ogg"
	}
}
