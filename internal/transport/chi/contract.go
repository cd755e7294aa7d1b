package chi

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/usecase/health"
	"github.com/ragdex/ragdex/internal/usecase/router"
	"github.com/ragdex/ragdex/internal/usecase/search"
)

// DocumentService manages the document index.
type DocumentService interface {
	Add(ctx context.Context, id, content, scope string, source domain.Source, metadata map[string]string) (domain.Document, error)
	Get(ctx context.Context, scope, id string) (domain.Document, error)
	Delete(ctx context.Context, scope, id string) (bool, error)
	List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error)
	Count(ctx context.Context, scope string) (int, error)
}

// SearchService performs similarity search over a scope.
type SearchService interface {
	Search(ctx context.Context, query, scope string, opts search.Options) ([]domain.SearchResult, error)
}

// RouterService classifies queries, routes retrieval, and generates answers.
type RouterService interface {
	Classify(query string) domain.Classification
	Strategy(c domain.Category) domain.Strategy
	Answer(ctx context.Context, query, scope string) (router.Answer, error)
	AnswerStream(ctx context.Context, query, scope string, fn func(token string) error) (router.Answer, error)
}

// HealthService aggregates component health checks.
type HealthService interface {
	Check(ctx context.Context) health.Report
}
