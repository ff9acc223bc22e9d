package llm

import (
	"context"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// Options control a single generation call.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int32
}

// Generator is the text-generation collaborator: prompt in, text out.
// Calls are fallible and unbounded in latency; callers bound them with the
// context.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// GeminiClient wraps the official genai client. It only covers the API
// call itself; timeouts and retry policy belong to the caller.
type GeminiClient struct {
	cli          *genai.Client
	defaultModel string
}

func NewGeminiClient(ctx context.Context, apiKey, defaultModel string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	if defaultModel == "" {
		defaultModel = "gemini-2.5-flash"
	}
	return &GeminiClient{cli: cli, defaultModel: defaultModel}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	model := opts.Model
	if model == "" {
		model = g.defaultModel
	}

	cfg := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		temp := opts.Temperature
		cfg.Temperature = &temp
	}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = opts.MaxTokens
	}

	resp, err := g.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
