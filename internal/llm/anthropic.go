package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"

	"finplanner/internal/config"
)

type anthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicProvider creates a provider backed by the Anthropic API
func NewAnthropicProvider(cfg *config.LLMConfig) Provider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithRequestTimeout(cfg.RequestTimeout),
	)

	log.Info().Str("model", cfg.AnthropicModel).Msg("anthropic provider initialized")

	return &anthropicProvider{
		client: client,
		model:  anthropic.Model(cfg.AnthropicModel),
	}
}

func (p *anthropicProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       p.model,
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", &GenerationError{Provider: config.ProviderAnthropic, Err: err}
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := sb.String()
	if text == "" {
		return "", &GenerationError{
			Provider: config.ProviderAnthropic,
			Err:      errors.New("response contained no text content"),
		}
	}

	return text, nil
}
