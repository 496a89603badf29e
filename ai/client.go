// Package ai holds the prompt builders for the hosted model. Every
// generator is stateless: one prompt, one GenerateContent call, one JSON
// parse. Failures surface to the caller as-is; there is no retry loop.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Client wraps the hosted text-generation endpoint.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Client for the configured model.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("ai: create client: %w", err)
	}
	return &Client{client: gc, model: model}, nil
}

// generateJSON submits a prompt and decodes the model's reply into out.
// The reply is fence-stripped first; a reply that still fails to parse is
// an upstream error, not retried.
func (c *Client) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return fmt.Errorf("ai: generation failed: %w", err)
	}

	text := StripFences(resp.Text())
	if text == "" {
		return fmt.Errorf("ai: empty model response")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("ai: model returned unparseable JSON: %w", err)
	}
	return nil
}

// StripFences removes an optional markdown code fence wrapper from a model
// reply so the payload can be parsed as JSON.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag on the opening fence, e.g. ```json
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		return ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
