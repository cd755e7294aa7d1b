package domain

// Category is the closed set of query categories. Unmatched queries fall
// back to CategoryConversational; there is no failure path.
type Category string

const (
	// CategoryMath covers arithmetic and math-word-problem queries.
	CategoryMath Category = "math"
	// CategoryCode covers programming queries and inline code snippets.
	CategoryCode Category = "code"
	// CategoryReasoning covers analysis, comparison, and hypotheticals.
	CategoryReasoning Category = "reasoning"
	// CategoryTools covers tool-call style requests (search, generate,
	// translate, real-time info).
	CategoryTools Category = "tools"
	// CategoryGreeting covers greetings, farewells, and courtesy.
	CategoryGreeting Category = "greeting"
	// CategoryFactual covers knowledge lookups; the highest-benefit
	// retrieval category.
	CategoryFactual Category = "factual"
	// CategoryConversational is general chat and the fallback.
	CategoryConversational Category = "conversational"
)

// Categories lists every category in classifier priority order. The order
// is a documented policy, not an accident: it is the tie-break when two
// categories score equally, and downstream accuracy numbers assume it.
var Categories = []Category{
	CategoryMath,
	CategoryTools,
	CategoryCode,
	CategoryGreeting,
	CategoryFactual,
	CategoryReasoning,
	CategoryConversational,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Classification is the result of classifying one query.
type Classification struct {
	Category   Category
	Confidence float64 // 0..1; 0 on fallback
	// MatchedReasons holds the identifiers of rules that fired, ordered by
	// rule table position. Empty on fallback.
	MatchedReasons []string
}

// Fallback returns the conversational fallback classification used for
// empty input and for queries no rule matches.
func Fallback() Classification {
	return Classification{Category: CategoryConversational}
}
