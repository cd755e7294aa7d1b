package classifier

import (
	"regexp"

	"github.com/ragdex/ragdex/internal/domain"
)

// Rule is a weighted pattern contributing to one category's score.
// Name is a stable identifier reported back as a matched reason.
type Rule struct {
	Name    string
	Pattern string
	Weight  float64
}

type compiledRule struct {
	name   string
	re     *regexp.Regexp
	weight float64
}

// compileRules panics on an invalid pattern. Rule tables are package
// constants, so a bad pattern is a programming error caught at startup.
func compileRules(rules []Rule) []compiledRule {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, compiledRule{
			name:   r.Name,
			re:     regexp.MustCompile(r.Pattern),
			weight: r.Weight,
		})
	}
	return out
}

// ruleTable holds the per-category rule lists for one language.
type ruleTable map[domain.Category][]Rule

func mergeTables(tables ...ruleTable) map[domain.Category][]compiledRule {
	merged := make(map[domain.Category][]compiledRule, len(domain.Categories))
	for _, cat := range domain.Categories {
		var rules []Rule
		for _, t := range tables {
			rules = append(rules, t[cat]...)
		}
		merged[cat] = compileRules(rules)
	}
	return merged
}
