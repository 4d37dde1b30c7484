// Package llm abstracts the text-generation backends behind a single
// provider contract. Calls are single-attempt and fail-fast; callers own
// the fallback behavior.
package llm

import (
	"context"
	"fmt"

	"finplanner/internal/config"
)

// GenerateRequest carries everything a provider needs for one completion
type GenerateRequest struct {
	Prompt       string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// Provider is the single-method text-generation contract. Implementations
// must not block indefinitely; they honor the context and their configured
// request timeout.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GenerationError wraps any provider failure so callers can detect it
// without knowing which backend was in use.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewProvider builds the configured provider
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return NewAnthropicProvider(cfg), nil
	case config.ProviderOllama:
		return NewOllamaProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
