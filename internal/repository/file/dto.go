package file

import (
	"time"

	"github.com/ragdex/ragdex/internal/domain"
)

// record is the on-disk form of a document.
type record struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Source    string            `json:"source,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Embedding []float32         `json:"embedding,omitempty"`
}

func toRecord(doc domain.Document) record {
	return record{
		ID:        doc.ID(),
		Content:   doc.Content(),
		Source:    string(doc.Source()),
		Metadata:  doc.Metadata(),
		CreatedAt: doc.CreatedAt(),
		Embedding: doc.Embedding(),
	}
}

func (r *record) toDocument(scope string) domain.Document {
	return domain.ReconstructDocument(
		r.ID, r.Content, scope, domain.Source(r.Source),
		r.Metadata, r.CreatedAt, r.Embedding,
	)
}
