package store

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Registry keeps one Store per session key. The least recently used stores
// are evicted once size is exceeded.
type Registry[R any] struct {
	cache *lru.Cache[string, *Store[R]]
}

func NewRegistry[R any](size int) (*Registry[R], error) {
	cache, err := lru.New[string, *Store[R]](size)
	if err != nil {
		return nil, err
	}
	return &Registry[R]{cache: cache}, nil
}

// Get returns the store for key, creating it on first use.
func (r *Registry[R]) Get(key string) *Store[R] {
	if st, ok := r.cache.Get(key); ok {
		return st
	}
	st := New[R]()
	// another request for the same key may have raced us here
	if prev, ok, _ := r.cache.PeekOrAdd(key, st); ok {
		return prev
	}
	return st
}

func (r *Registry[R]) Len() int {
	return r.cache.Len()
}
