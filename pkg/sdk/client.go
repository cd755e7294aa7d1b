// Package ragdex is the embedded SDK: the full retrieval-augmented
// answer pipeline (document index, query classification, routing,
// generation) wired in-process, without the HTTP server.
package ragdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/classifier"
	dbredis "github.com/ragdex/ragdex/internal/db/redis"
	"github.com/ragdex/ragdex/internal/domain"
	filerepo "github.com/ragdex/ragdex/internal/repository/file"
	memoryrepo "github.com/ragdex/ragdex/internal/repository/memory"
	"github.com/ragdex/ragdex/internal/repository/redisdoc"
	documentuc "github.com/ragdex/ragdex/internal/usecase/document"
	healthuc "github.com/ragdex/ragdex/internal/usecase/health"
	routeruc "github.com/ragdex/ragdex/internal/usecase/router"
	searchuc "github.com/ragdex/ragdex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

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

// Client is the ragdex SDK entry point. Safe for concurrent use.
type Client struct {
	repo      repository
	closer    func()
	documents *documentuc.Service
	search    *searchuc.Service
	router    *routeruc.Service
	health    *healthuc.Service
}

// New creates a Client. An embedder is required; generator and web
// search are optional and their absence degrades the pipeline instead
// of failing it.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:    "memory",
		keyPrefix: "ragdex:",
		topK:      5,
		minScore:  0.5,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.embedder == nil {
		return nil, errors.New("ragdex: embedder required (use WithEmbedder)")
	}

	repo, closer, err := buildRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	docSvc := documentuc.New(repo, cfg.embedder, cfg.dimensions)
	searchSvc := searchuc.New(repo, cfg.embedder, cfg.topK, cfg.minScore, cfg.driver, cfg.logger)

	gen := cfg.generator
	if gen == nil {
		gen = noGenerator{}
	}
	web := cfg.web
	if web == nil {
		web = noWebSearcher{}
	}

	routerSvc := routeruc.New(
		classifier.New(),
		searchuc.NewDefaultSearcher(searchSvc),
		web,
		gen,
		routeruc.Config{
			Overrides:       cfg.overrides,
			MaxContextChars: cfg.maxContextChars,
		},
		cfg.logger,
	)

	var embChecker healthuc.EmbeddingChecker
	if hc, ok := cfg.embedder.(domain.HealthChecker); ok {
		embChecker = hc
	}
	var genChecker healthuc.InferenceChecker
	if hc, ok := gen.(domain.HealthChecker); ok {
		genChecker = hc
	}

	return &Client{
		repo:      repo,
		closer:    closer,
		documents: docSvc,
		search:    searchSvc,
		router:    routerSvc,
		health:    healthuc.New(repo, embChecker, genChecker),
	}, nil
}

func buildRepository(ctx context.Context, cfg *clientConfig) (repository, func(), error) {
	switch cfg.driver {
	case "memory":
		return memoryrepo.New(), nil, nil
	case "file":
		repo, err := filerepo.New(cfg.path)
		if err != nil {
			return nil, nil, fmt.Errorf("ragdex: open file store: %w", err)
		}
		return repo, nil, nil
	case "redis":
		store, err := dbredis.NewStore(dbredis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("ragdex: create redis store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("ragdex: redis not ready: %w", err)
		}
		return redisdoc.New(store, cfg.keyPrefix), store.Close, nil
	default:
		return nil, nil, fmt.Errorf("ragdex: unknown store driver %q", cfg.driver)
	}
}

// Close releases backend connections. Safe to call on any Client.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// noGenerator reports missing inference configuration at call time.
type noGenerator struct{}

func (noGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("no generator configured (use WithGenerator)")
}

func (noGenerator) GenerateStream(context.Context, string, func(string) error) error {
	return errors.New("no generator configured (use WithGenerator)")
}

// noWebSearcher makes the local-then-web strategy degrade to direct
// answers when web search is not configured.
type noWebSearcher struct{}

func (noWebSearcher) Search(context.Context, string, int) ([]domain.WebResult, error) {
	return nil, nil
}
