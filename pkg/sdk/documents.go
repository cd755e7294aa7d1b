package ragdex

import (
	"context"
	"time"

	"github.com/ragdex/ragdex/internal/domain"
)

// Document is an indexed document.
type Document struct {
	ID        string
	Content   string
	Scope     string
	Source    string
	Metadata  map[string]string
	CreatedAt time.Time
}

// AddDocumentParams describes a document to index. Content is required;
// everything else has defaults (generated ID, "default" scope, manual
// source).
type AddDocumentParams struct {
	ID       string
	Content  string
	Scope    string
	Source   string
	Metadata map[string]string
}

// AddDocument embeds and indexes a document.
func (c *Client) AddDocument(ctx context.Context, p AddDocumentParams) (Document, error) {
	doc, err := c.documents.Add(ctx, p.ID, p.Content, scopeOr(p.Scope), domain.Source(p.Source), p.Metadata)
	if err != nil {
		return Document{}, err
	}
	return documentFromDomain(&doc), nil
}

// GetDocument fetches a document by scope and id.
func (c *Client) GetDocument(ctx context.Context, scope, id string) (Document, error) {
	doc, err := c.documents.Get(ctx, scopeOr(scope), id)
	if err != nil {
		return Document{}, err
	}
	return documentFromDomain(&doc), nil
}

// DeleteDocument removes a document. Returns false when it did not exist.
func (c *Client) DeleteDocument(ctx context.Context, scope, id string) (bool, error) {
	return c.documents.Delete(ctx, scopeOr(scope), id)
}

// ListDocuments pages through a scope in insertion order.
func (c *Client) ListDocuments(ctx context.Context, scope string, limit, offset int) ([]Document, error) {
	docs, err := c.documents.List(ctx, scopeOr(scope), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = documentFromDomain(&docs[i])
	}
	return out, nil
}

// CountDocuments reports the number of documents in a scope.
func (c *Client) CountDocuments(ctx context.Context, scope string) (int, error) {
	return c.documents.Count(ctx, scopeOr(scope))
}

func documentFromDomain(doc *domain.Document) Document {
	return Document{
		ID:        doc.ID(),
		Content:   doc.Content(),
		Scope:     doc.Scope(),
		Source:    string(doc.Source()),
		Metadata:  doc.Metadata(),
		CreatedAt: doc.CreatedAt(),
	}
}

func scopeOr(scope string) string {
	if scope == "" {
		return "default"
	}
	return scope
}
