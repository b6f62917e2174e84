// Package genai turns prompts into text with Google's Gemini models.
package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("genai: model returned no text")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Option adjusts the SDK client configuration.
type Option func(*genai.ClientConfig)

// WithBaseURL points the client at another endpoint.
func WithBaseURL(baseURL string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for every call.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPClient = client
	}
}

// GeminiClient calls generateContent on a single Gemini model.
type GeminiClient struct {
	models *genai.Models
	model  string
}

// NewGeminiClient creates a client for model (e.g. "gemini-1.5-pro") on the
// Gemini Developer API.
func NewGeminiClient(ctx context.Context, apiKey, model string, opts ...Option) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{models: client.Models, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
