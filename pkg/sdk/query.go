package ragdex

import (
	"context"

	routeruc "github.com/ragdex/ragdex/internal/usecase/router"
	"github.com/ragdex/ragdex/internal/usecase/search"
)

// SearchHit is a similarity search result.
type SearchHit struct {
	Document Document
	Score    float64
}

// SearchParams tunes a single search call. A zero TopK and a nil
// MinScore fall back to the client defaults; an explicit zero MinScore
// disables the threshold.
type SearchParams struct {
	Scope    string
	TopK     int
	MinScore *float64
}

// Search runs a similarity search over a scope.
func (c *Client) Search(ctx context.Context, query string, p SearchParams) ([]SearchHit, error) {
	results, err := c.search.Search(ctx, query, scopeOr(p.Scope), search.Options{
		TopK:     p.TopK,
		MinScore: p.MinScore,
	})
	if err != nil {
		return nil, err
	}
	hits := make([]SearchHit, len(results))
	for i, r := range results {
		hits[i] = SearchHit{Document: documentFromDomain(&r.Document), Score: r.Score}
	}
	return hits, nil
}

// Classification is the outcome of query classification.
type Classification struct {
	Category   string
	Confidence float64
	Strategy   string
	Reasons    []string
}

// Classify maps a query to a category and the retrieval strategy it
// would take.
func (c *Client) Classify(query string) Classification {
	cls := c.router.Classify(query)
	return Classification{
		Category:   string(cls.Category),
		Confidence: cls.Confidence,
		Strategy:   string(c.router.Strategy(cls.Category)),
		Reasons:    cls.MatchedReasons,
	}
}

// Source attributes a piece of retrieved context in an answer.
type Source struct {
	Kind  string // "local" or "web"
	ID    string
	Title string
	URL   string
	Score float64
}

// Answer is a generated answer with its retrieval provenance.
type Answer struct {
	Text           string
	Classification Classification
	Strategy       string
	Degraded       bool
	Sources        []Source
}

// Answer classifies the query, retrieves context per the routing
// strategy, and generates an answer.
func (c *Client) Answer(ctx context.Context, query, scope string) (Answer, error) {
	ans, err := c.router.Answer(ctx, query, scopeOr(scope))
	if err != nil {
		return Answer{}, err
	}
	return answerFromUsecase(ans, ans.Text), nil
}

// AnswerStream is Answer with per-token streaming.
func (c *Client) AnswerStream(ctx context.Context, query, scope string, fn func(token string) error) (Answer, error) {
	ans, err := c.router.AnswerStream(ctx, query, scopeOr(scope), fn)
	if err != nil {
		return Answer{}, err
	}
	return answerFromUsecase(ans, ""), nil
}

func answerFromUsecase(ans routeruc.Answer, text string) Answer {
	out := Answer{
		Text: text,
		Classification: Classification{
			Category:   string(ans.Classification.Category),
			Confidence: ans.Classification.Confidence,
			Strategy:   string(ans.Prompt.Strategy),
			Reasons:    ans.Classification.MatchedReasons,
		},
		Strategy: string(ans.Prompt.Strategy),
		Degraded: ans.Prompt.Degraded,
	}
	for _, hit := range ans.Prompt.Local {
		out.Sources = append(out.Sources, Source{
			Kind:  "local",
			ID:    hit.Document.ID(),
			Score: hit.Score,
		})
	}
	for _, hit := range ans.Prompt.Web {
		out.Sources = append(out.Sources, Source{
			Kind:  "web",
			Title: hit.Title,
			URL:   hit.SourceURL,
		})
	}
	return out
}
