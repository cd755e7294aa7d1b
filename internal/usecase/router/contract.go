package router

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
)

// Classifier maps a query to a category. Total; never fails.
type Classifier interface {
	Classify(query string) domain.Classification
}

// LocalSearcher ranks indexed documents against a query using the
// service-level top-k and threshold defaults.
type LocalSearcher interface {
	Search(ctx context.Context, query, scope string) ([]domain.SearchResult, error)
}

// WebSearcher queries the external web search collaborator. Callers
// bound it with a context deadline.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.WebResult, error)
}

// Generator invokes the language model, blocking or streaming.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateStream(ctx context.Context, prompt string, fn func(token string) error) error
}
