// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns deduplicated research data into natural-language
// summaries by calling a chat-completion provider. Generated prose carries
// [n] citation markers that resolve against the assigned citation list;
// the text itself is passed through verbatim, never parsed.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/company-research/internal/httputil"
	"github.com/pdiddy/company-research/pkg/types"
)

// openAIChatURL is the OpenAI chat completions endpoint. Package-level var
// for test substitution.
var openAIChatURL = "https://api.openai.com/v1/chat/completions"

// Backend generates one chat completion. The production implementation is
// OpenAIBackend; tests substitute stubs.
type Backend interface {
	Complete(ctx context.Context, system, user string, jsonOutput bool) (string, error)
}

// OpenAIBackend calls the OpenAI chat completions API.
type OpenAIBackend struct {
	APIKey string
	Model  string
	Client *http.Client
	Config types.AIConfig
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// chatMessage is a single message in the chat conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat requests structured output from the model.
type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the response body from the chat completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends one system+user exchange and returns the assistant text.
// With jsonOutput set the model is constrained to emit a JSON object.
func (b *OpenAIBackend) Complete(ctx context.Context, system, user string, jsonOutput bool) (string, error) {
	reqBody := chatRequest{
		Model:       b.Model,
		Temperature: 0.3,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonOutput {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)
	req.Header.Set("User-Agent", b.Config.UserAgent)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, b.Config.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API returned %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decoding OpenAI response: %w", err)
	}

	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
