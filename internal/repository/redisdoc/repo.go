// Package redisdoc implements the document store on Redis hashes, with
// a per-scope list carrying insertion order.
package redisdoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/ragdex/ragdex/internal/domain"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LRem(ctx context.Context, key, value string) error
	LLen(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
}

// Repo is a Redis-backed, scope-isolated document store.
type Repo struct {
	store  store
	prefix string
}

// New creates a Redis document repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// Save inserts or replaces a document. New IDs are appended to the
// scope's order list; replacements keep their position.
func (r *Repo) Save(ctx context.Context, doc domain.Document) error {
	key := r.docKey(doc.Scope(), doc.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w: %w", key, domain.ErrStorage, err)
	}

	fields, err := buildHashFields(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID(), err)
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w: %w", key, domain.ErrStorage, err)
	}

	if !exists {
		if err := r.store.RPush(ctx, r.orderKey(doc.Scope()), doc.ID()); err != nil {
			return fmt.Errorf("rpush %s: %w: %w", doc.ID(), domain.ErrStorage, err)
		}
	}
	return nil
}

// Get returns a document by ID within a scope.
func (r *Repo) Get(ctx context.Context, scope, id string) (domain.Document, error) {
	m, err := r.store.HGetAll(ctx, r.docKey(scope, id))
	if err != nil {
		return domain.Document{}, fmt.Errorf("hgetall %s: %w: %w", id, domain.ErrStorage, err)
	}
	if len(m) == 0 {
		return domain.Document{}, domain.ErrDocumentNotFound
	}
	return parseHashFields(id, scope, m)
}

// Delete removes a document. Returns false if it was not present.
func (r *Repo) Delete(ctx context.Context, scope, id string) (bool, error) {
	key := r.docKey(scope, id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w: %w", key, domain.ErrStorage, err)
	}
	if !exists {
		return false, nil
	}

	if err := r.store.Del(ctx, key); err != nil {
		return false, fmt.Errorf("del %s: %w: %w", key, domain.ErrStorage, err)
	}
	if err := r.store.LRem(ctx, r.orderKey(scope), id); err != nil {
		return false, fmt.Errorf("lrem %s: %w: %w", id, domain.ErrStorage, err)
	}
	return true, nil
}

// List returns documents in insertion order. A non-positive limit means
// no limit.
func (r *Repo) List(ctx context.Context, scope string, limit, offset int) ([]domain.Document, error) {
	if offset < 0 {
		offset = 0
	}
	start := int64(offset)
	stop := int64(-1)
	if limit > 0 {
		stop = start + int64(limit) - 1
	}

	ids, err := r.store.LRange(ctx, r.orderKey(scope), start, stop)
	if err != nil {
		return nil, fmt.Errorf("lrange scope %s: %w: %w", scope, domain.ErrStorage, err)
	}

	out := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := r.Get(ctx, scope, id)
		if errors.Is(err, domain.ErrDocumentNotFound) {
			// Order list can briefly lead the hash on concurrent delete.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// Count returns the number of documents in a scope.
func (r *Repo) Count(ctx context.Context, scope string) (int, error) {
	n, err := r.store.LLen(ctx, r.orderKey(scope))
	if err != nil {
		return 0, fmt.Errorf("llen scope %s: %w: %w", scope, domain.ErrStorage, err)
	}
	return int(n), nil
}

// Search ranks the scope's documents against the query embedding.
func (r *Repo) Search(ctx context.Context, scope string, query []float32, k int, minScore float64) ([]domain.SearchResult, error) {
	docs, err := r.List(ctx, scope, 0, 0)
	if err != nil {
		return nil, err
	}
	return domain.RankDocuments(query, docs, k, minScore)
}

// Ping reports backend health.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}

func (r *Repo) docKey(scope, id string) string {
	return r.prefix + "doc:" + scope + ":" + id
}

func (r *Repo) orderKey(scope string) string {
	return r.prefix + "scope:" + scope + ":ids"
}
