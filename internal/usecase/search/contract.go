package search

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
)

// Repository is the similarity search contract of the document store.
type Repository interface {
	Search(ctx context.Context, scope string, query []float32, k int, minScore float64) ([]domain.SearchResult, error)
}

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
