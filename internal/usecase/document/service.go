// Package document implements document ingestion and CRUD with
// automatic vectorization.
package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/domain/vector"
)

// Service handles document CRUD. Every added document is embedded
// before it reaches the store, so search never sees an unembedded
// document from this path.
type Service struct {
	repo            Repository
	embedder        Embedder
	dimensions      int
	defaultPageSize int
	maxPageSize     int
}

// New creates a document service. dimensions > 0 enforces the embedding
// dimension on every add.
func New(repo Repository, embedder Embedder, dimensions int) *Service {
	return &Service{
		repo:            repo,
		embedder:        embedder,
		dimensions:      dimensions,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// Add validates, embeds, and persists a document. An empty id gets a
// generated UUID. Returns the stored document.
func (s *Service) Add(ctx context.Context, id, content, scope string, source domain.Source, metadata map[string]string) (domain.Document, error) {
	if id == "" {
		id = uuid.NewString()
	}

	doc, err := domain.NewDocument(id, content, scope, source, metadata)
	if err != nil {
		return domain.Document{}, fmt.Errorf("invalid document: %w", err)
	}

	result, err := s.embedder.Embed(ctx, doc.Content())
	if err != nil {
		return domain.Document{}, fmt.Errorf("vectorize document: %w: %w", domain.ErrEmbeddingProviderError, err)
	}
	if !vector.Finite(result.Embedding) {
		return domain.Document{}, fmt.Errorf("provider returned non-finite embedding: %w", domain.ErrNonFiniteVector)
	}
	if s.dimensions > 0 && len(result.Embedding) != s.dimensions {
		return domain.Document{}, fmt.Errorf(
			"vector dimension mismatch: got %d, want %d: %w",
			len(result.Embedding), s.dimensions, domain.ErrVectorDimMismatch,
		)
	}

	doc.SetEmbedding(result.Embedding)
	if err := s.repo.Save(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

// Get retrieves a document by scope and ID.
func (s *Service) Get(ctx context.Context, scope, id string) (domain.Document, error) {
	doc, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return domain.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Delete removes a document. Deleting an absent document is not an
// error; the bool reports whether anything was removed.
func (s *Service) Delete(ctx context.Context, scope, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	return deleted, nil
}

// List returns documents in stable insertion order. limit <= 0 applies
// the default page size; the maximum is clamped.
func (s *Service) List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := s.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Count returns the number of documents in a scope.
func (s *Service) Count(ctx context.Context, scope string) (int, error) {
	n, err := s.repo.Count(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}
