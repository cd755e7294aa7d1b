package domain

// Strategy is the closed set of retrieval strategies.
type Strategy string

const (
	// StrategyDirect sends the raw query to the model with no retrieval.
	StrategyDirect Strategy = "direct"
	// StrategyLocalOnly augments the prompt with local document search.
	StrategyLocalOnly Strategy = "local_only"
	// StrategyLocalThenWeb tries local search first and augments with web
	// results when local retrieval comes up short.
	StrategyLocalThenWeb Strategy = "local_then_web"
)

// strategyTable maps each category to its retrieval strategy. The
// entries are benchmark-tuned; change them only with fresh benchmark
// runs.
var strategyTable = map[Category]Strategy{
	CategoryMath:           StrategyDirect,
	CategoryCode:           StrategyLocalOnly,
	CategoryReasoning:      StrategyDirect,
	CategoryTools:          StrategyDirect,
	CategoryGreeting:       StrategyDirect,
	CategoryFactual:        StrategyLocalThenWeb,
	CategoryConversational: StrategyDirect,
}

// StrategyFor returns the retrieval strategy for a category. Pure: the
// category (plus an optional configured override map) is the only input.
func StrategyFor(c Category, overrides map[Category]Strategy) Strategy {
	if s, ok := overrides[c]; ok {
		return s
	}
	if s, ok := strategyTable[c]; ok {
		return s
	}
	return StrategyDirect
}

// Valid reports whether s is a member of the closed strategy set.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyDirect, StrategyLocalOnly, StrategyLocalThenWeb:
		return true
	}
	return false
}
