// Package memory implements the document store in process memory.
// Scopes are fully isolated; within a scope, listing follows insertion
// order. Intended for tests and single-shot CLI runs.
package memory

import (
	"context"
	"sync"

	"github.com/ragdex/ragdex/internal/domain"
)

type scopeData struct {
	docs  map[string]domain.Document
	order []string // insertion order of IDs
}

// Store is an in-memory, scope-isolated document store. Safe for
// concurrent use.
type Store struct {
	mu     sync.RWMutex
	scopes map[string]*scopeData
}

// New creates an empty store.
func New() *Store {
	return &Store{scopes: make(map[string]*scopeData)}
}

// Save inserts or replaces a document. Replacing keeps the original
// insertion position.
func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.scopes[doc.Scope()]
	if sc == nil {
		sc = &scopeData{docs: make(map[string]domain.Document)}
		s.scopes[doc.Scope()] = sc
	}
	if _, exists := sc.docs[doc.ID()]; !exists {
		sc.order = append(sc.order, doc.ID())
	}
	sc.docs[doc.ID()] = doc
	return nil
}

// Get returns a document by ID within a scope.
func (s *Store) Get(ctx context.Context, scope, id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc := s.scopes[scope]
	if sc == nil {
		return domain.Document{}, domain.ErrDocumentNotFound
	}
	doc, ok := sc.docs[id]
	if !ok {
		return domain.Document{}, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// Delete removes a document. Returns false if it was not present.
func (s *Store) Delete(ctx context.Context, scope, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.scopes[scope]
	if sc == nil {
		return false, nil
	}
	if _, ok := sc.docs[id]; !ok {
		return false, nil
	}
	delete(sc.docs, id)
	for i, oid := range sc.order {
		if oid == id {
			sc.order = append(sc.order[:i], sc.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// List returns documents in insertion order. A negative or zero limit
// means no limit.
func (s *Store) List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc := s.scopes[scope]
	if sc == nil {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(sc.order) {
		return nil, nil
	}
	ids := sc.order[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	out := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, sc.docs[id])
	}
	return out, nil
}

// Count returns the number of documents in a scope.
func (s *Store) Count(ctx context.Context, scope string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc := s.scopes[scope]
	if sc == nil {
		return 0, nil
	}
	return len(sc.docs), nil
}

// Search ranks the scope's documents against the query embedding.
func (s *Store) Search(ctx context.Context, scope string, query []float32, k int, minScore float64) ([]domain.SearchResult, error) {
	docs, err := s.List(ctx, scope, 0, 0)
	if err != nil {
		return nil, err
	}
	return domain.RankDocuments(query, docs, k, minScore)
}

// Ping reports store health. Always healthy in memory.
func (s *Store) Ping(ctx context.Context) error { return nil }
