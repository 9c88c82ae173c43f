package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var (
	ErrUnexpectedResponse = errors.New("unexpected response format from Claude API")
)

// TextGenerator produces prose from a free-form prompt. Tests inject a fake
// that records calls without hitting the network.
type TextGenerator interface {
	Generate(ctx context.Context, userMessage string, opts GenerateOptions) (string, error)
}

// GenerateOptions tunes a single generation request. Zero values fall back to
// the configured fast model, a 1024 token cap and temperature 1.
type GenerateOptions struct {
	Model       string
	MaxTokens   int64
	Temperature *float64
	System      string
}

type AIService struct {
	client      *anthropic.Client
	haikuModel  string
	sonnetModel string
}

func NewAIService(apiKey, haikuModel, sonnetModel string) *AIService {
	var client *anthropic.Client
	if apiKey != "" {
		// Retries are disabled: every call is a single blocking request.
		c := anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		)
		client = &c
	}

	return &AIService{
		client:      client,
		haikuModel:  haikuModel,
		sonnetModel: sonnetModel,
	}
}

// FastModel returns the configured default (haiku) model identifier.
func (s *AIService) FastModel() string {
	return s.haikuModel
}

// CapableModel returns the configured higher-quality (sonnet) model identifier.
func (s *AIService) CapableModel() string {
	return s.sonnetModel
}

// Generate sends a single prompt and returns the first text content block of
// the response.
func (s *AIService) Generate(ctx context.Context, userMessage string, opts GenerateOptions) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("generation service not configured (missing CLAUDE_API_KEY)")
	}

	model := opts.Model
	if model == "" {
		model = s.haikuModel
	}

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	temperature := 1.0
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	}
	if opts.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: opts.System}}
	}

	message, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	if len(message.Content) == 0 || message.Content[0].Type != "text" {
		return "", ErrUnexpectedResponse
	}

	return message.Content[0].Text, nil
}
