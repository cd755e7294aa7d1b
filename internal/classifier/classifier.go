// Package classifier assigns a query to exactly one category using
// weighted regular-expression rules. Classification is total and
// deterministic: every input maps to a category, identical inputs map
// to identical results, and no error path exists.
package classifier

import (
	"strings"

	"github.com/ragdex/ragdex/internal/domain"
)

// Classifier scores a query against per-category rule tables. The
// highest summed weight wins; exact ties resolve by the fixed priority
// order of domain.Categories. Safe for concurrent use.
type Classifier struct {
	rules map[domain.Category][]compiledRule
}

// New builds a classifier over the English and Spanish rule tables.
func New() *Classifier {
	return &Classifier{rules: mergeTables(englishRules, spanishRules)}
}

// NewWithRules builds a classifier over caller-supplied tables.
func NewWithRules(tables ...ruleTable) *Classifier {
	return &Classifier{rules: mergeTables(tables...)}
}

// Classify maps a query to a category with a confidence in [0, 1).
// Empty or whitespace-only input falls back to Conversational with
// confidence zero and no matched reasons.
func (c *Classifier) Classify(query string) domain.Classification {
	query = normalize(query)
	if query == "" {
		return domain.Fallback()
	}

	best := domain.Fallback()
	bestScore := 0.0
	for _, cat := range domain.Categories {
		score, reasons := c.score(cat, query)
		if score > bestScore {
			bestScore = score
			best = domain.Classification{
				Category:       cat,
				Confidence:     confidence(score),
				MatchedReasons: reasons,
			}
		}
	}
	return best
}

func (c *Classifier) score(cat domain.Category, query string) (float64, []string) {
	var (
		total   float64
		reasons []string
	)
	for _, r := range c.rules[cat] {
		if r.re.MatchString(query) {
			total += r.weight
			reasons = append(reasons, r.name)
		}
	}
	return total, reasons
}

// normalize trims whitespace and leading inverted punctuation so
// anchored Spanish rules see the first word of the question.
func normalize(query string) string {
	query = strings.TrimSpace(query)
	return strings.TrimLeft(query, "¿¡")
}

// confidence maps a summed rule weight to [0, 0.95]. The curve rises
// steeply for low scores and saturates so that no rule match ever
// reports certainty.
func confidence(score float64) float64 {
	if score <= 0 {
		return 0
	}
	c := score / (score + 0.5)
	if c > 0.95 {
		return 0.95
	}
	return c
}
