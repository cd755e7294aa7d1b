// Package file implements the document store as one JSON file per
// scope under a root directory. Every mutation rewrites the scope file
// through a temp file and rename, so a crash mid-write never leaves a
// torn file behind. Suited to single-process use; no cross-process
// locking is attempted.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ragdex/ragdex/internal/domain"
)

// Store is a file-backed, scope-isolated document store.
type Store struct {
	root string

	mu     sync.Mutex
	loaded map[string][]record // scope -> records in insertion order
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store root %s: %w: %w", dir, domain.ErrStorage, err)
	}
	return &Store{root: dir, loaded: make(map[string][]record)}, nil
}

// Save inserts or replaces a document and persists its scope file.
func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(doc.Scope())
	if err != nil {
		return err
	}

	// Build the new record set on a copy. The cached slice must stay
	// untouched until persist succeeds, or a failed write would leave
	// unpersisted content visible to readers.
	rec := toRecord(doc)
	next := make([]record, len(recs), len(recs)+1)
	copy(next, recs)
	replaced := false
	for i := range next {
		if next[i].ID == doc.ID() {
			next[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, rec)
	}
	return s.persist(doc.Scope(), next)
}

// Get returns a document by ID within a scope.
func (s *Store) Get(ctx context.Context, scope, id string) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(scope)
	if err != nil {
		return domain.Document{}, err
	}
	for i := range recs {
		if recs[i].ID == id {
			return recs[i].toDocument(scope), nil
		}
	}
	return domain.Document{}, domain.ErrDocumentNotFound
}

// Delete removes a document. Returns false if it was not present.
func (s *Store) Delete(ctx context.Context, scope, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(scope)
	if err != nil {
		return false, err
	}
	for i := range recs {
		if recs[i].ID == id {
			// Same copy discipline as Save: never shift the cached
			// slice before the write lands.
			next := make([]record, 0, len(recs)-1)
			next = append(next, recs[:i]...)
			next = append(next, recs[i+1:]...)
			if err := s.persist(scope, next); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// List returns documents in insertion order. A non-positive limit means
// no limit.
func (s *Store) List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(scope)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(recs) {
		return nil, nil
	}
	recs = recs[offset:]
	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}
	out := make([]domain.Document, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDocument(scope))
	}
	return out, nil
}

// Count returns the number of documents in a scope.
func (s *Store) Count(ctx context.Context, scope string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load(scope)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// Search ranks the scope's documents against the query embedding.
func (s *Store) Search(ctx context.Context, scope string, query []float32, k int, minScore float64) ([]domain.SearchResult, error) {
	docs, err := s.List(ctx, scope, 0, 0)
	if err != nil {
		return nil, err
	}
	return domain.RankDocuments(query, docs, k, minScore)
}

// Ping verifies the root directory is still writable.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.root); err != nil {
		return fmt.Errorf("store root %s: %w: %w", s.root, domain.ErrStorage, err)
	}
	return nil
}

// load returns the cached records for a scope, reading the scope file on
// first access. Callers hold s.mu.
func (s *Store) load(scope string) ([]record, error) {
	if recs, ok := s.loaded[scope]; ok {
		return recs, nil
	}
	path, err := s.scopePath(scope)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.loaded[scope] = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scope %s: %w: %w", scope, domain.ErrStorage, err)
	}

	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse scope %s: %w: %w", scope, domain.ErrStorage, err)
	}
	s.loaded[scope] = recs
	return recs, nil
}

// persist writes the scope file atomically and refreshes the cache.
// Callers hold s.mu.
func (s *Store) persist(scope string, recs []record) error {
	path, err := s.scopePath(scope)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scope %s: %w", scope, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scope %s: %w: %w", scope, domain.ErrStorage, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit scope %s: %w: %w", scope, domain.ErrStorage, err)
	}

	s.loaded[scope] = recs
	return nil
}

func (s *Store) scopePath(scope string) (string, error) {
	if scope == "" || strings.ContainsAny(scope, `/\`) || strings.Contains(scope, "..") {
		return "", fmt.Errorf("invalid scope %q: %w", scope, domain.ErrStorage)
	}
	return filepath.Join(s.root, scope+".json"), nil
}
