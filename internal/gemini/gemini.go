// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gemini wraps the Google Gemini API for the two AI stages:
// overview summarization and use-case generation.
package gemini

import (
	"context"
	"fmt"
	"math"
	"time"

	"google.golang.org/genai"

	"github.com/pdiddy/market-scout/pkg/types"
)

const defaultModel = "gemini-2.0-flash"

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// Client calls the Gemini API with retry.
type Client struct {
	inner      *genai.Client
	model      string
	maxRetries int
}

// NewClient builds a Gemini client from the AI configuration.
func NewClient(ctx context.Context, cfg types.AIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	inner, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &Client{inner: inner, model: model, maxRetries: maxRetries}, nil
}

// GenerateText sends prompt to the model and returns its prose response.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

// GenerateJSON sends prompt to the model with JSON output enforced and
// returns the raw JSON response body.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	return c.generate(ctx, prompt, cfg)
}

// generate calls the model with exponential backoff on transient failures.
func (c *Client) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		result, err := c.inner.Models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			lastErr = err
			continue
		}

		text := result.Text()
		if text == "" {
			lastErr = fmt.Errorf("model returned empty response")
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
