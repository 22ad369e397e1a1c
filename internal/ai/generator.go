package ai

import (
	"context"
	"time"

	"aura_server/internal/site"
)

// Completer sends a single prompt to a remote text-generation service.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// Settings selects and configures the remote provider.
type Settings struct {
	OpenAIKey      string
	OpenAIModel    string
	AnthropicKey   string
	AnthropicModel string
	MaxTokens      int
}

// NewCompleter returns the OpenAI completer when an OpenAI key is set, the
// Anthropic completer when only an Anthropic key is set, and nil otherwise.
func NewCompleter(s Settings) Completer {
	switch {
	case s.OpenAIKey != "":
		return NewOpenAICompleter(s.OpenAIKey, s.OpenAIModel, s.MaxTokens)
	case s.AnthropicKey != "":
		return NewAnthropicCompleter(s.AnthropicKey, s.AnthropicModel, s.MaxTokens)
	default:
		return nil
	}
}

// Generator produces sites remotely when a completer is configured and
// always falls back to the local templates.
type Generator struct {
	completer Completer
	local     *site.Generator
	timeout   time.Duration
}

func NewGenerator(completer Completer, local *site.Generator, timeout time.Duration) *Generator {
	if local == nil {
		local = site.NewGenerator()
	}
	return &Generator{
		completer: completer,
		local:     local,
		timeout:   timeout,
	}
}

// Provider returns the configured remote provider name, or "local".
func (g *Generator) Provider() string {
	if g.completer == nil {
		return string(SourceLocal)
	}
	return g.completer.Name()
}
