// Package completion wraps the chat-completion API used to generate answers.
package completion

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// SystemPrompt is sent as the system message on every completion call.
const SystemPrompt = "You are a funny assistant."

// ErrEmptyCompletion is returned when the API responds without any choices.
var ErrEmptyCompletion = errors.New("completion API returned no choices")

// Client calls the chat-completion API for a given model and question.
type Client struct {
	api *openai.Client
}

// NewClient creates a completion client. baseURL is optional and overrides the
// default API endpoint (used for self-hosted gateways and tests).
func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Complete sends the question to the given model and returns the generated answer.
// The question is passed through unmodified as the user message.
func (c *Client) Complete(ctx context.Context, model, question string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
