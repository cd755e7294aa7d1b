package domain

import (
	"fmt"
	"time"
)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 163840 // 160KB

// Source says where a document came from.
type Source string

const (
	// SourceManual marks documents added directly by a user.
	SourceManual Source = "manual"
	// SourceFile marks documents indexed from a file.
	SourceFile Source = "file"
	// SourceWeb marks documents retrieved from web search.
	SourceWeb Source = "web"
	// SourceConversation marks documents captured from chat history.
	SourceConversation Source = "conversation"
)

// Document is a stored document with its embedding vector.
// Content is immutable once stored; changed content is a new document.
type Document struct {
	id        string
	content   string
	scope     string
	source    Source
	metadata  map[string]string
	createdAt time.Time
	embedding []float32
}

// NewDocument validates and creates a Document. The embedding is attached
// later by the document service, before the document reaches a store.
func NewDocument(id, content, scope string, source Source, metadata map[string]string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if scope == "" {
		return Document{}, fmt.Errorf("document scope is required")
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}
	if source == "" {
		source = SourceManual
	}

	return Document{
		id:        id,
		content:   content,
		scope:     scope,
		source:    source,
		metadata:  cloneStringMap(metadata),
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructDocument creates a Document without validation (storage hydration).
func ReconstructDocument(
	id, content, scope string, source Source, metadata map[string]string,
	createdAt time.Time, embedding []float32,
) Document {
	return Document{
		id: id, content: content, scope: scope, source: source,
		metadata: metadata, createdAt: createdAt, embedding: embedding,
	}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Scope returns the owning namespace.
func (d *Document) Scope() string { return d.scope }

// Source returns the document origin.
func (d *Document) Source() Source { return d.source }

// Metadata returns the string metadata fields.
func (d *Document) Metadata() map[string]string { return d.metadata }

// CreatedAt returns the creation timestamp.
func (d *Document) CreatedAt() time.Time { return d.createdAt }

// Embedding returns the embedding vector, nil until computed.
func (d *Document) Embedding() []float32 { return d.embedding }

// HasEmbedding reports whether an embedding has been attached.
func (d *Document) HasEmbedding() bool { return len(d.embedding) > 0 }

// SetEmbedding attaches the embedding vector in place.
func (d *Document) SetEmbedding(v []float32) { d.embedding = v }

// SetMetadata replaces the metadata map. The only permitted mutation
// besides re-embedding.
func (d *Document) SetMetadata(m map[string]string) { d.metadata = cloneStringMap(m) }

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
