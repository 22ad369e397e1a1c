package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5"

type AnthropicCompleter struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicCompleter builds a completer for the Messages API. The SDK's
// built-in retries are disabled: a failed call falls back to local templates.
func NewAnthropicCompleter(apiKey, model string, maxTokens int, opts ...option.RequestOption) *AnthropicCompleter {
	if model == "" {
		model = defaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = 4000
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	reqOpts = append(reqOpts, opts...)

	return &AnthropicCompleter{
		client:    anthropic.NewClient(reqOpts...),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

func (c *AnthropicCompleter) Name() string {
	return "anthropic"
}

func (c *AnthropicCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
		Temperature: anthropic.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages request failed: %w", err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			content.WriteString(b.Text)
		}
	}
	if content.Len() == 0 {
		return "", errors.New("anthropic returned empty response")
	}

	return content.String(), nil
}
