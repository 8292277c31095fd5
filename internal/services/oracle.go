package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"studymate-backend/internal/logging"
)

type ResponseFormat string

const (
	ResponseFormatText ResponseFormat = ""
	ResponseFormatJSON ResponseFormat = "json"
)

// GenerateOptions requests structured output. A nil value means free text.
type GenerateOptions struct {
	ResponseFormat ResponseFormat
	Schema         *genai.Schema
}

// Oracle is the hosted text generation endpoint. Implementations make a single
// attempt and return the concatenated text of the answer.
type Oracle interface {
	Generate(ctx context.Context, modelID, prompt string, opts *GenerateOptions) (string, error)
}

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set: api key is missing")

type GeminiOracle struct {
	client *genai.Client
}

func NewGeminiOracle(ctx context.Context, apiKey string) (*GeminiOracle, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiOracle{client: client}, nil
}

func (o *GeminiOracle) Close() {
	o.client.Close()
}

func (o *GeminiOracle) Generate(ctx context.Context, modelID, prompt string, opts *GenerateOptions) (string, error) {
	model := o.client.GenerativeModel(modelID)
	if opts != nil && opts.ResponseFormat == ResponseFormatJSON {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = opts.Schema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	log := logging.WithContext(ctx)
	for i, cand := range resp.Candidates {
		log.Debugf("Gemini candidate %d: FinishReason=%s, TokenCount=%d", i, cand.FinishReason, cand.TokenCount)
		if cand.FinishReason != genai.FinishReasonStop {
			log.Warnf("Gemini stopped due to %s", cand.FinishReason)
		}
	}

	return extractText(resp), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
