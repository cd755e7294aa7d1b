// Package router decides the retrieval strategy for a classified
// query, executes the retrieval, and assembles the augmented prompt.
// Recoverable retrieval problems (empty results, web timeouts) degrade
// to the direct prompt; only resource failures propagate.
package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/metrics"
)

const systemInstruction = "Use the following context to answer the question. " +
	"If the context does not contain the answer, say so instead of guessing."

// Config bounds the router's retrieval behavior.
type Config struct {
	Overrides       map[domain.Category]domain.Strategy
	WebTimeout      time.Duration
	WebMaxResults   int
	MaxContextChars int
}

// Service is the routing core. Stateless per invocation; safe for
// concurrent use.
type Service struct {
	classifier Classifier
	local      LocalSearcher
	web        WebSearcher
	generator  Generator
	cfg        Config
	logger     *zap.Logger
}

// New creates a router service.
func New(classifier Classifier, local LocalSearcher, web WebSearcher, gen Generator, cfg Config, log *zap.Logger) *Service {
	if cfg.WebTimeout <= 0 {
		cfg.WebTimeout = 5 * time.Second
	}
	if cfg.WebMaxResults <= 0 {
		cfg.WebMaxResults = 3
	}
	if cfg.MaxContextChars <= 0 {
		cfg.MaxContextChars = 8192
	}
	return &Service{
		classifier: classifier,
		local:      local,
		web:        web,
		generator:  gen,
		cfg:        cfg,
		logger:     log,
	}
}

// Classify maps a query to a category and records the decision.
func (s *Service) Classify(query string) domain.Classification {
	cls := s.classifier.Classify(query)
	metrics.ClassificationsTotal.WithLabelValues(string(cls.Category)).Inc()
	return cls
}

// Strategy reports the retrieval strategy a category resolves to,
// overrides included.
func (s *Service) Strategy(c domain.Category) domain.Strategy {
	return domain.StrategyFor(c, s.cfg.Overrides)
}

// Route picks the strategy for a classification, performs retrieval,
// and assembles the prompt. The original query always survives in the
// prompt verbatim; under StrategyDirect the prompt is the query alone.
func (s *Service) Route(ctx context.Context, query string, cls domain.Classification, scope string) (domain.Prompt, error) {
	strategy := domain.StrategyFor(cls.Category, s.cfg.Overrides)
	metrics.RoutesTotal.WithLabelValues(string(strategy)).Inc()

	switch strategy {
	case domain.StrategyLocalOnly:
		return s.routeLocal(ctx, query, scope)
	case domain.StrategyLocalThenWeb:
		return s.routeLocalThenWeb(ctx, query, scope)
	default:
		return domain.Prompt{Text: query, Strategy: domain.StrategyDirect}, nil
	}
}

// routeLocal searches the local index. Zero hits fall back to the
// direct prompt rather than injecting empty context.
func (s *Service) routeLocal(ctx context.Context, query, scope string) (domain.Prompt, error) {
	hits, err := s.local.Search(ctx, query, scope)
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("local retrieval: %w", err)
	}
	if len(hits) == 0 {
		return domain.Prompt{Text: query, Strategy: domain.StrategyLocalOnly}, nil
	}
	return domain.Prompt{
		Text:     s.assemble(query, hits, nil),
		Strategy: domain.StrategyLocalOnly,
		Local:    hits,
	}, nil
}

// routeLocalThenWeb tries local retrieval first and consults the web
// collaborator only when the local index comes up short. A web failure
// never fails the query: the router degrades to the direct prompt and
// flags it.
func (s *Service) routeLocalThenWeb(ctx context.Context, query, scope string) (domain.Prompt, error) {
	hits, err := s.local.Search(ctx, query, scope)
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("local retrieval: %w", err)
	}
	if len(hits) > 0 {
		return domain.Prompt{
			Text:     s.assemble(query, hits, nil),
			Strategy: domain.StrategyLocalThenWeb,
			Local:    hits,
		}, nil
	}

	webCtx, cancel := context.WithTimeout(ctx, s.cfg.WebTimeout)
	defer cancel()

	webHits, err := s.web.Search(webCtx, query, s.cfg.WebMaxResults)
	if err != nil || len(webHits) == 0 {
		if err != nil {
			metrics.RetrievalDegradedTotal.Inc()
			s.logger.Warn("web retrieval degraded, answering direct",
				zap.String("scope", scope), zap.Error(err))
		}
		return domain.Prompt{
			Text:     query,
			Strategy: domain.StrategyLocalThenWeb,
			Degraded: err != nil,
		}, nil
	}

	return domain.Prompt{
		Text:     s.assemble(query, hits, webHits),
		Strategy: domain.StrategyLocalThenWeb,
		Local:    hits,
		Web:      webHits,
	}, nil
}

// Answer is the outcome of the full pipeline, with the classification
// and retrieval provenance that produced it.
type Answer struct {
	Text           string
	Classification domain.Classification
	Prompt         domain.Prompt
}

// Answer runs the full pipeline: classify, route, generate.
func (s *Service) Answer(ctx context.Context, query, scope string) (Answer, error) {
	cls := s.Classify(query)
	prompt, err := s.Route(ctx, query, cls, scope)
	if err != nil {
		return Answer{}, err
	}
	text, err := s.generator.Generate(ctx, prompt.Text)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", domain.ErrInference, err)
	}
	return Answer{Text: text, Classification: cls, Prompt: prompt}, nil
}

// AnswerStream is Answer with token streaming. fn is invoked once per
// generated token; a non-nil return from fn aborts the stream.
func (s *Service) AnswerStream(ctx context.Context, query, scope string, fn func(token string) error) (Answer, error) {
	cls := s.Classify(query)
	prompt, err := s.Route(ctx, query, cls, scope)
	if err != nil {
		return Answer{}, err
	}
	if err := s.generator.GenerateStream(ctx, prompt.Text, fn); err != nil {
		return Answer{Classification: cls, Prompt: prompt}, fmt.Errorf("%w: %w", domain.ErrInference, err)
	}
	return Answer{Classification: cls, Prompt: prompt}, nil
}

// assemble builds instruction + context + query. Context is truncated
// at a chunk boundary once the configured budget is spent.
func (s *Service) assemble(query string, local []domain.SearchResult, web []domain.WebResult) string {
	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\nContext:\n")

	used := 0
	write := func(chunk string) bool {
		if used+len(chunk) > s.cfg.MaxContextChars {
			return false
		}
		b.WriteString(chunk)
		used += len(chunk)
		return true
	}

	for _, hit := range local {
		if !write("- " + hit.Document.Content() + "\n") {
			break
		}
	}
	for _, hit := range web {
		if !write("- " + hit.Title + ": " + hit.Snippet + "\n") {
			break
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(query)
	return b.String()
}
