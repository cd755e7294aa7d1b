package vector

import (
	"math"
	"testing"
)

func TestCosineIdentical(t *testing.T) {
	sim := Cosine([]float32{1, 0, 0}, []float32{1, 0, 0})
	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("expected 1.0, got %f", sim)
	}
}

func TestCosineOrthogonal(t *testing.T) {
	sim := Cosine([]float32{1, 0, 0}, []float32{0, 1, 0})
	if math.Abs(sim) > 1e-9 {
		t.Errorf("expected 0.0, got %f", sim)
	}
}

func TestCosineOpposite(t *testing.T) {
	sim := Cosine([]float32{1, 0, 0}, []float32{-1, 0, 0})
	if math.Abs(sim+1.0) > 1e-9 {
		t.Errorf("expected -1.0, got %f", sim)
	}
}

func TestCosineScaleInvariant(t *testing.T) {
	sim := Cosine([]float32{1, 2, 3}, []float32{2, 4, 6})
	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("expected 1.0 for same direction, got %f", sim)
	}
}

func TestCosineZeroVector(t *testing.T) {
	if sim := Cosine([]float32{0, 0, 0}, []float32{1, 2, 3}); sim != 0 {
		t.Errorf("expected 0 for zero vector, got %f", sim)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		name string
		v    []float32
		want bool
	}{
		{"plain", []float32{1, 2, 3}, true},
		{"empty", nil, true},
		{"nan", []float32{1, float32(math.NaN()), 3}, false},
		{"posinf", []float32{float32(math.Inf(1))}, false},
		{"neginf", []float32{float32(math.Inf(-1))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Finite(tt.v); got != tt.want {
				t.Errorf("Finite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestTopKOrderAndTruncation(t *testing.T) {
	query := []float32{1, 0, 0}
	candidates := [][]float32{
		{0.5, 0.5, 0},  // ~0.707
		{1, 0, 0},      // 1.0
		{0, 1, 0},      // 0.0
		{0.9, 0.1, 0},  // ~0.994
	}

	top := TopK(query, candidates, 2, 0)
	if len(top) != 2 {
		t.Fatalf("expected 2 results, got %d", len(top))
	}
	if top[0].Index != 1 || top[1].Index != 3 {
		t.Errorf("expected indexes [1 3], got [%d %d]", top[0].Index, top[1].Index)
	}
	if top[0].Score < top[1].Score {
		t.Error("results not sorted descending")
	}
}

func TestTopKMinScoreBeforeTruncation(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{
		{1, 0},   // 1.0
		{0, 1},   // 0.0
		{1, 0.1}, // ~0.995
	}

	// k=3 but only two clear the threshold
	top := TopK(query, candidates, 3, 0.5)
	if len(top) != 2 {
		t.Fatalf("expected 2 results above threshold, got %d", len(top))
	}
	for _, r := range top {
		if r.Score < 0.5 {
			t.Errorf("result below min score: %f", r.Score)
		}
	}
}

func TestTopKStableTieBreak(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{
		{2, 0}, // 1.0, inserted first
		{3, 0}, // 1.0, inserted second
	}

	top := TopK(query, candidates, 2, 0)
	if len(top) != 2 || top[0].Index != 0 || top[1].Index != 1 {
		t.Errorf("tie not broken by insertion order: %+v", top)
	}
}

func TestTopKEmpty(t *testing.T) {
	if top := TopK([]float32{1, 0}, nil, 5, 0); top != nil {
		t.Errorf("expected nil for empty candidates, got %+v", top)
	}
}
