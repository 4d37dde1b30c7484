package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"finplanner/internal/config"
)

// OllamaProvider talks to a local Ollama server. Ollama exposes a plain
// REST API and no official Go client, so the two endpoints are called
// directly. It doubles as the knowledge store's embedder when an
// embedding model is configured.
type OllamaProvider struct {
	baseURL        string
	model          string
	embeddingModel string
	httpClient     *http.Client
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string                 `json:"model"`
	Messages []ollamaChatMessage    `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaChatMessage `json:"message"`
	Error   string            `json:"error,omitempty"`
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

// NewOllamaProvider creates a provider backed by a local Ollama server
func NewOllamaProvider(cfg *config.LLMConfig) *OllamaProvider {
	log.Info().
		Str("base_url", cfg.OllamaBaseURL).
		Str("model", cfg.OllamaModel).
		Msg("ollama provider initialized")

	return &OllamaProvider{
		baseURL:    strings.TrimRight(cfg.OllamaBaseURL, "/"),
		model:      cfg.OllamaModel,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// WithEmbeddingModel sets the model used for Embed calls
func (p *OllamaProvider) WithEmbeddingModel(model string) *OllamaProvider {
	p.embeddingModel = model
	return p
}

func (p *OllamaProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := make([]ollamaChatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, ollamaChatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, ollamaChatMessage{Role: "user", Content: req.Prompt})

	body := ollamaChatRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   false,
		Options: map[string]interface{}{
			"temperature": req.Temperature,
			"num_predict": req.MaxTokens,
		},
	}

	var parsed ollamaChatResponse
	if err := p.post(ctx, "/api/chat", body, &parsed); err != nil {
		return "", &GenerationError{Provider: config.ProviderOllama, Err: err}
	}
	if parsed.Error != "" {
		return "", &GenerationError{Provider: config.ProviderOllama, Err: errors.New(parsed.Error)}
	}
	if parsed.Message.Content == "" {
		return "", &GenerationError{Provider: config.ProviderOllama, Err: errors.New("empty response")}
	}

	return parsed.Message.Content, nil
}

// Embed returns the embedding vector for the given text
func (p *OllamaProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	if p.embeddingModel == "" {
		return nil, errors.New("no embedding model configured")
	}

	body := ollamaEmbeddingRequest{Model: p.embeddingModel, Prompt: text}

	var parsed ollamaEmbeddingResponse
	if err := p.post(ctx, "/api/embeddings", body, &parsed); err != nil {
		return nil, err
	}
	if parsed.Error != "" {
		return nil, errors.New(parsed.Error)
	}
	if len(parsed.Embedding) == 0 {
		return nil, errors.New("empty embedding response")
	}

	return parsed.Embedding, nil
}

func (p *OllamaProvider) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call ollama: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("ollama request completed")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
