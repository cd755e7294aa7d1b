package ragdex

import (
	"time"

	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/transport/openai"
	"github.com/ragdex/ragdex/internal/transport/wikipedia"
	"github.com/ragdex/ragdex/internal/usecase/router"
)

// OpenAIEmbedderConfig points the client at an OpenAI-compatible
// embeddings endpoint (Ollama, LM Studio, vLLM, hosted providers).
type OpenAIEmbedderConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
	// Provider labels the embedding metrics. Defaults to "openai".
	Provider string
	Logger   *zap.Logger
}

// NewOpenAIEmbedder builds the embedding provider accepted by
// WithEmbedder.
func NewOpenAIEmbedder(cfg OpenAIEmbedderConfig) domain.Embedder {
	provider := cfg.Provider
	if provider == "" {
		provider = "openai"
	}
	return openai.NewEmbedder(&openai.EmbedderConfig{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		Dimensions: cfg.Dimensions,
		Provider:   provider,
		Logger:     loggerOr(cfg.Logger),
	})
}

// OpenAIGeneratorConfig points the client at an OpenAI-compatible chat
// completions endpoint.
type OpenAIGeneratorConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      *zap.Logger
}

// NewOpenAIGenerator builds the inference backend accepted by
// WithGenerator.
func NewOpenAIGenerator(cfg OpenAIGeneratorConfig) router.Generator {
	return openai.NewGenerator(&openai.GeneratorConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Logger:      loggerOr(cfg.Logger),
	})
}

// WikipediaConfig tunes the Wikipedia web search collaborator.
type WikipediaConfig struct {
	// Language selects the Wikipedia edition ("en", "es", ...).
	// Defaults to "en".
	Language string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewWikipediaSearch builds the web searcher accepted by WithWebSearch.
func NewWikipediaSearch(cfg WikipediaConfig) router.WebSearcher {
	return wikipedia.New(&wikipedia.Config{
		Language: cfg.Language,
		Timeout:  cfg.Timeout,
		Logger:   loggerOr(cfg.Logger),
	})
}

func loggerOr(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
