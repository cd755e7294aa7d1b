package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/config"
	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/metrics"
	"github.com/ragdex/ragdex/internal/repository/embcache"
	healthuc "github.com/ragdex/ragdex/internal/usecase/health"
	"github.com/ragdex/ragdex/internal/transport/openai"
	"github.com/ragdex/ragdex/internal/transport/wikipedia"
	ragdex "github.com/ragdex/ragdex/pkg/sdk"
)

// cacheStore is what the embedding cache needs from a KV backend.
type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// repository is the document store contract shared by all backends.
type repository interface {
	Save(ctx context.Context, doc domain.Document) error
	Get(ctx context.Context, scope, id string) (domain.Document, error)
	Delete(ctx context.Context, scope, id string) (bool, error)
	List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error)
	Count(ctx context.Context, scope string) (int, error)
	Search(ctx context.Context, scope string, query []float32, k int, minScore float64) ([]domain.SearchResult, error)
	Ping(ctx context.Context) error
}

// embedderHealth exposes the embedder's health check when it has one.
func embedderHealth(e domain.Embedder) healthuc.EmbeddingChecker {
	if hc, ok := e.(domain.HealthChecker); ok {
		return hc
	}
	return nil
}

// buildEmbedder assembles the embedder chain: provider, then the
// optional content-addressed cache. kv may be nil; an in-process map
// serves cache-enabled setups without Redis.
func buildEmbedder(cfg config.Config, kv cacheStore, logger *zap.Logger) domain.Embedder {
	var emb domain.Embedder = openai.NewEmbedder(&openai.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   "openai",
		Logger:     logger,
	})

	if cfg.Embedding.Cache {
		if kv == nil {
			kv = embcache.NewMemKV()
		}
		emb = embcache.New(emb, kv, cfg.Embedding.Model, metrics.EmbeddingCacheTotal, logger)
	}
	return emb
}

// withInstruction wraps an embedder with an instruction prefix when one
// is configured.
func withInstruction(emb domain.Embedder, instruction string) domain.Embedder {
	if instruction == "" {
		return emb
	}
	return domain.NewInstructionEmbedder(emb, instruction)
}

// newLocalClient builds the embedded pipeline for one-shot CLI
// commands, honoring the same config the server uses.
func newLocalClient(ctx context.Context, cfg config.Config, logger *zap.Logger) (*ragdex.Client, error) {
	opts := []ragdex.Option{
		ragdex.WithEmbedder(buildEmbedder(cfg, nil, logger), cfg.Embedding.Dimensions),
		ragdex.WithGenerator(buildGenerator(cfg, logger)),
		ragdex.WithWebSearch(buildWebSearch(cfg, logger)),
		ragdex.WithRetrieval(cfg.Retrieval.TopK, cfg.Retrieval.MinScore),
		ragdex.WithMaxContextChars(cfg.Retrieval.MaxContextChars),
		ragdex.WithLogger(logger),
	}
	switch cfg.Store.Driver {
	case "file":
		opts = append(opts, ragdex.WithFileStore(cfg.Store.Path))
	case "redis":
		opts = append(opts,
			ragdex.WithRedis(cfg.Store.Addrs, cfg.Store.Password),
			ragdex.WithKeyPrefix(cfg.Store.KeyPrefix))
	default:
		opts = append(opts, ragdex.WithMemoryStore())
	}
	for cat, strat := range cfg.StrategyOverrides() {
		opts = append(opts, ragdex.WithStrategyOverride(cat, strat))
	}
	return ragdex.New(ctx, opts...)
}

func buildGenerator(cfg config.Config, logger *zap.Logger) *openai.Generator {
	return openai.NewGenerator(&openai.GeneratorConfig{
		APIKey:      cfg.Inference.APIKey,
		BaseURL:     cfg.Inference.BaseURL,
		Model:       cfg.Inference.Model,
		MaxTokens:   cfg.Inference.MaxTokens,
		Temperature: float32(cfg.Inference.Temperature),
		Logger:      logger,
	})
}

func buildWebSearch(cfg config.Config, logger *zap.Logger) *wikipedia.Client {
	return wikipedia.New(&wikipedia.Config{
		Language: cfg.WebSearch.Language,
		Timeout:  time.Duration(cfg.WebSearch.TimeoutSec) * time.Second,
		Logger:   logger,
	})
}
