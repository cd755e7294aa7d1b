package ragdex

import (
	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/usecase/router"
)

type clientConfig struct {
	driver    string
	path      string
	addrs     []string
	password  string
	keyPrefix string

	dimensions int
	embedder   domain.Embedder
	generator  router.Generator
	web        router.WebSearcher

	topK            int
	minScore        float64
	maxContextChars int
	overrides       map[domain.Category]domain.Strategy

	logger *zap.Logger
}

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(cfg *clientConfig) { f(cfg) }

// WithMemoryStore keeps documents in process memory. The default.
func WithMemoryStore() Option {
	return optionFunc(func(cfg *clientConfig) { cfg.driver = "memory" })
}

// WithFileStore persists documents as JSON files under root.
func WithFileStore(root string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.driver = "file"
		cfg.path = root
	})
}

// WithRedis stores documents in Redis.
func WithRedis(addrs []string, password string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.driver = "redis"
		cfg.addrs = addrs
		cfg.password = password
	})
}

// WithKeyPrefix sets the Redis key namespace. Default "ragdex:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.keyPrefix = prefix })
}

// WithEmbedder sets the text vectorizer. Required.
func WithEmbedder(e domain.Embedder, dimensions int) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.embedder = e
		cfg.dimensions = dimensions
	})
}

// WithGenerator sets the inference backend. Without it Answer is
// unavailable; classification and search still work.
func WithGenerator(g router.Generator) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.generator = g })
}

// WithWebSearch sets the web search collaborator used by the
// local-then-web strategy. Without it web augmentation degrades to
// direct answers.
func WithWebSearch(w router.WebSearcher) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.web = w })
}

// WithRetrieval tunes similarity search defaults.
func WithRetrieval(topK int, minScore float64) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.topK = topK
		cfg.minScore = minScore
	})
}

// WithMaxContextChars bounds assembled prompt context.
func WithMaxContextChars(n int) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.maxContextChars = n })
}

// WithStrategyOverride remaps a category to a non-default retrieval
// strategy.
func WithStrategyOverride(category domain.Category, strategy domain.Strategy) Option {
	return optionFunc(func(cfg *clientConfig) {
		if cfg.overrides == nil {
			cfg.overrides = make(map[domain.Category]domain.Strategy)
		}
		cfg.overrides[category] = strategy
	})
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.logger = logger })
}
