package domain

import (
	"fmt"

	"github.com/ragdex/ragdex/internal/domain/vector"
)

// RankDocuments scores candidate documents against a query embedding and
// returns the top k hits at or above minScore. Documents without an
// embedding are skipped. A candidate whose embedding dimension differs
// from the query's is a corruption signal and fails the whole search;
// a silently wrong similarity would be worse than an error.
func RankDocuments(query []float32, docs []Document, k int, minScore float64) ([]SearchResult, error) {
	if len(query) == 0 {
		return nil, fmt.Errorf("empty query embedding: %w", ErrVectorDimMismatch)
	}
	if !vector.Finite(query) {
		return nil, ErrNonFiniteVector
	}

	embedded := make([]Document, 0, len(docs))
	candidates := make([][]float32, 0, len(docs))
	for _, d := range docs {
		if !d.HasEmbedding() {
			continue
		}
		if len(d.Embedding()) != len(query) {
			return nil, fmt.Errorf("document %s: stored dimension %d, query dimension %d: %w",
				d.ID(), len(d.Embedding()), len(query), ErrVectorDimMismatch)
		}
		embedded = append(embedded, d)
		candidates = append(candidates, d.Embedding())
	}

	ranked := vector.TopK(query, candidates, k, minScore)
	results := make([]SearchResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, SearchResult{Document: embedded[r.Index], Score: r.Score})
	}
	return results, nil
}
