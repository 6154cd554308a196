package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/oswaldo-hello/capirubot/internal/dates"
	"github.com/oswaldo-hello/capirubot/internal/taxonomy"
)

// DefaultModelName is the Gemini model used for extraction.
const DefaultModelName = "gemini-2.5-flash"

// Extractor turns free text into a structured extraction result.
// This interface enables mocking of the model call in handler tests.
type Extractor interface {
	Extract(ctx context.Context, text string) (*Result, error)
}

// GeminiExtractor is the concrete Extractor backed by Gemini.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	tax    taxonomy.Table
	loc    *time.Location
	now    func() time.Time
}

// NewGeminiExtractor creates an extractor with its own GenAI client.
func NewGeminiExtractor(ctx context.Context, apiKey string, tax taxonomy.Table, loc *time.Location) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiExtractor: create genai client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  DefaultModelName,
		tax:    tax,
		loc:    loc,
		now:    time.Now,
	}, nil
}

// Extract sends the user text to the model and coerces its JSON reply
// into a Result. A malformed or non-JSON reply is a total extraction
// failure.
func (e *GeminiExtractor) Extract(ctx context.Context, text string) (*Result, error) {
	today := dates.TodayIn(e.now(), e.loc)

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: text}},
		},
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: buildSystemPrompt(e.tax, today.String())}},
		},
		Temperature: genai.Ptr[float32](0),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("Extract: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("Extract: empty response from model")
	}

	clean := cleanModelJSON(rawText)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return nil, fmt.Errorf("Extract: unmarshal model output: %w\nraw response: %s", err, rawText)
	}

	return fromRaw(obj), nil
}

// cleanModelJSON strips Markdown fences and surrounding junk if the
// model ignored the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// If there's still text around the JSON object, keep only from the
	// first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
