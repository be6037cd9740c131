// Package embedding turns free query text into fixed-length vectors via an
// external provider. The gateway is optional: an absent API key is detected
// at construction, before any network call, and callers treat a nil gateway
// as "semantic mode unavailable".
package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultMaxInputChars is the input budget sent to the provider; longer text
// is truncated before the call.
const DefaultMaxInputChars = 8000

const defaultModel = "text-embedding-004"

// Gateway is an abstraction over embedding providers.
type Gateway interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the gateway.
	Close() error
}

// GatewayError wraps a provider failure. Search requests in semantic mode
// surface it to the caller untouched rather than degrading to keyword mode.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("embedding gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// GeminiGateway implements Gateway using Google Gemini embeddings.
type GeminiGateway struct {
	client        *genai.Client
	model         string
	maxInputChars int
}

// NewGemini creates a Gemini-backed gateway. The API key is required; this
// is the configuration check callers use to decide whether semantic mode is
// available at all.
func NewGemini(ctx context.Context, apiKey string) (*GeminiGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGateway{
		client:        client,
		model:         defaultModel,
		maxInputChars: DefaultMaxInputChars,
	}, nil
}

// Embed returns the embedding for text, truncated to the provider's input
// budget.
func (g *GeminiGateway) Embed(ctx context.Context, text string) ([]float32, error) {
	text = Truncate(text, g.maxInputChars)

	model := g.client.EmbeddingModel(g.model)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &GatewayError{Err: err}
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &GatewayError{Err: fmt.Errorf("empty embedding for model %s", g.model)}
	}
	return resp.Embedding.Values, nil
}

// Close releases resources held by the gateway.
func (g *GeminiGateway) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Truncate cuts text to at most max runes without splitting a rune.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
