package redisdoc

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ragdex/ragdex/internal/domain"
)

// Hash field names. The embedding is packed binary, 4 bytes per
// component, little-endian.
const (
	fieldContent   = "content"
	fieldSource    = "source"
	fieldMetadata  = "metadata"
	fieldCreatedAt = "created_at"
	fieldEmbedding = "embedding"
)

func buildHashFields(doc domain.Document) (map[string]string, error) {
	m := map[string]string{
		fieldContent:   doc.Content(),
		fieldSource:    string(doc.Source()),
		fieldCreatedAt: doc.CreatedAt().UTC().Format(time.RFC3339Nano),
	}
	if len(doc.Metadata()) > 0 {
		meta, err := json.Marshal(doc.Metadata())
		if err != nil {
			return nil, fmt.Errorf("marshal metadata: %w", err)
		}
		m[fieldMetadata] = string(meta)
	}
	if doc.HasEmbedding() {
		m[fieldEmbedding] = vectorToBytes(doc.Embedding())
	}
	return m, nil
}

func parseHashFields(id, scope string, m map[string]string) (domain.Document, error) {
	var metadata map[string]string
	if raw := m[fieldMetadata]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			return domain.Document{}, fmt.Errorf("document %s: parse metadata: %w", id, err)
		}
	}

	var createdAt time.Time
	if raw := m[fieldCreatedAt]; raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return domain.Document{}, fmt.Errorf("document %s: parse created_at: %w", id, err)
		}
		createdAt = t
	}

	return domain.ReconstructDocument(
		id, m[fieldContent], scope, domain.Source(m[fieldSource]),
		metadata, createdAt, bytesToVector(m[fieldEmbedding]),
	), nil
}

func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b) == 0 || len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
