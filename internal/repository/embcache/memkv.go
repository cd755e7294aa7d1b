package embcache

import (
	"context"
	"sync"

	"github.com/ragdex/ragdex/internal/db"
)

// MemKV is an in-process cache backend used when no Redis store is
// configured. Unbounded; acceptable for the documented corpus scale.
type MemKV struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemKV creates an empty in-process cache backend.
func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string][]byte)}
}

// Get retrieves a value, returning db.ErrKeyNotFound when absent.
func (s *MemKV) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

// Set stores a value.
func (s *MemKV) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
