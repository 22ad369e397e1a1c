package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4o

type OpenAICompleter struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAICompleter(apiKey, model string, maxTokens int) *OpenAICompleter {
	return NewOpenAICompleterWithConfig(openai.DefaultConfig(apiKey), model, maxTokens)
}

// NewOpenAICompleterWithConfig allows pointing the client at a compatible endpoint.
func NewOpenAICompleterWithConfig(config openai.ClientConfig, model string, maxTokens int) *OpenAICompleter {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAICompleter{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *OpenAICompleter) Name() string {
	return "openai"
}

func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			MaxTokens:   c.maxTokens,
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
