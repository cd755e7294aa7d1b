package search

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
)

// DefaultSearcher exposes Service under the two-argument search shape
// retrieval collaborators expect, using the configured defaults.
type DefaultSearcher struct {
	svc *Service
}

// NewDefaultSearcher wraps a Service.
func NewDefaultSearcher(svc *Service) *DefaultSearcher {
	return &DefaultSearcher{svc: svc}
}

// Search runs a similarity search with default options.
func (d *DefaultSearcher) Search(ctx context.Context, query, scope string) ([]domain.SearchResult, error) {
	return d.svc.Search(ctx, query, scope, Options{})
}
