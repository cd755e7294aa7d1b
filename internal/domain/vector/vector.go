// Package vector holds the similarity math for the search engine.
// Plain loops, no ANN index: a full scan over a few thousand documents
// completes in single-digit milliseconds.
package vector

import (
	"math"
	"sort"
)

// Finite reports whether every component of v is a finite number.
// NaN or Inf input is a caller error and must be rejected before compare.
func Finite(v []float32) bool {
	for _, x := range v {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return false
		}
	}
	return true
}

// Cosine returns the cosine similarity of a and b in [-1, 1]. Inputs are
// not assumed pre-normalized. A zero vector yields 0. Lengths must match;
// callers validate dimensions before comparing.
func Cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Ranked is one scored candidate from TopK.
type Ranked struct {
	Index int
	Score float64
}

// TopK scores every candidate against the query and returns at most k
// results with score >= minScore, sorted descending. The threshold is
// applied before truncation. Ties sort by candidate index (insertion
// order) so results stay reproducible.
func TopK(query []float32, candidates [][]float32, k int, minScore float64) []Ranked {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}

	ranked := make([]Ranked, 0, len(candidates))
	for i, c := range candidates {
		score := Cosine(query, c)
		if score < minScore {
			continue
		}
		ranked = append(ranked, Ranked{Index: i, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
