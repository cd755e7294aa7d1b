package document

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Save(ctx context.Context, doc domain.Document) error
	Get(ctx context.Context, scope, id string) (domain.Document, error)
	Delete(ctx context.Context, scope, id string) (bool, error)
	List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error)
	Count(ctx context.Context, scope string) (int, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
