// Package llm wraps the Groq chat-completion API. Groq speaks the OpenAI
// wire protocol, so the client is go-openai pointed at the Groq base URL.
package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful travel assistant."

// Completer is the narrow interface the handlers consume, so tests can swap
// in a fake.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client calls the chat-completion endpoint. One client is built at startup
// and passed to whoever needs it; there is no package-level state.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a completion client. baseURL may be empty for the
// upstream OpenAI default.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Complete sends one prompt and returns the raw model text. Single attempt,
// no retries; the caller decides how a failure is presented.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices from model")
	}
	return resp.Choices[0].Message.Content, nil
}
