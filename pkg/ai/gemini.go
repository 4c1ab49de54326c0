package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const modelName = "gemini-2.0-flash-exp"

// ErrUnparsable means the model reply did not contain the expected
// fenced JSON block. Surfaced to the caller as a generic parse failure.
var ErrUnparsable = errors.New("failed to parse image")

// Extractor reads photographed notes and pulls out (date, event) pairs
// through the Gemini multimodal API.
type Extractor struct {
	client *genai.Client
}

func NewExtractor(ctx context.Context, apiKey string) (*Extractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Extractor{client: client}, nil
}

func (e *Extractor) Close() error {
	return e.client.Close()
}

func systemInstruction(now time.Time) string {
	return fmt.Sprintf(
		"Your are a professional image reader made specifically for taking out dates from the image. "+
			"Extract the dates from the images and return in a json as { 'date': <Date>, 'event': <Event> }, "+
			"if year is missing, set year to %d, if month is missing set month to %d, "+
			"if date, month and year are missing, don't return the date",
		now.Year(), int(now.Month()))
}

// ExtractEvents sends the image to the model and parses the fenced JSON
// block from its reply.
func (e *Extractor) ExtractEvents(ctx context.Context, mimeType string, data []byte) ([]models.ExtractedEvent, error) {
	model := e.client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction(time.Now()))},
	}

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text("date"),
	)
	if err != nil {
		return nil, err
	}

	var reply strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				reply.WriteString(string(text))
			}
		}
	}

	return ParseExtraction(reply.String())
}

// ParseExtraction pulls the candidate list out of a model reply. The
// reply is expected to wrap its JSON in a ``` fence, optionally tagged
// "json".
func ParseExtraction(reply string) ([]models.ExtractedEvent, error) {
	parts := strings.Split(reply, "```")
	if len(parts) < 2 {
		return nil, ErrUnparsable
	}

	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[1]), "json"))

	var candidates []models.ExtractedEvent
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, ErrUnparsable
	}

	return candidates, nil
}
