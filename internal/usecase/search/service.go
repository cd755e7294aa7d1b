// Package search implements query-time similarity search: embed the
// query text, rank the scope's documents, apply threshold and top-k.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/domain/vector"
	"github.com/ragdex/ragdex/internal/metrics"
)

// Options bound one search call. A zero TopK and a nil MinScore fall
// back to the service defaults; an explicit zero MinScore disables the
// threshold entirely.
type Options struct {
	TopK     int
	MinScore *float64
}

// Service performs embedding-backed similarity search.
type Service struct {
	repo            Repository
	embedder        Embedder
	defaultTopK     int
	defaultMinScore float64
	backend         string
	logger          *zap.Logger
}

// New creates a search service. backend names the store driver for the
// duration metric label.
func New(repo Repository, embedder Embedder, topK int, minScore float64, backend string, log *zap.Logger) *Service {
	if topK <= 0 {
		topK = 5
	}
	return &Service{
		repo:            repo,
		embedder:        embedder,
		defaultTopK:     topK,
		defaultMinScore: minScore,
		backend:         backend,
		logger:          log,
	}
}

// Search embeds the query and ranks the scope's documents. Results come
// back ordered by descending similarity; at most TopK, none below
// MinScore.
func (s *Service) Search(ctx context.Context, query, scope string, opts Options) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query text is required")
	}

	result, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w: %w", domain.ErrEmbeddingProviderError, err)
	}
	if !vector.Finite(result.Embedding) {
		return nil, fmt.Errorf("provider returned non-finite query embedding: %w", domain.ErrNonFiniteVector)
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = s.defaultTopK
	}
	minScore := s.defaultMinScore
	if opts.MinScore != nil {
		minScore = *opts.MinScore
	}

	start := time.Now()
	hits, err := s.repo.Search(ctx, scope, result.Embedding, topK, minScore)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	metrics.SearchDuration.WithLabelValues(s.backend).Observe(time.Since(start).Seconds())

	s.logger.Debug("similarity search",
		zap.String("scope", scope),
		zap.Int("top_k", topK),
		zap.Float64("min_score", minScore),
		zap.Int("hits", len(hits)),
	)
	return hits, nil
}
