// Package cache implements the bounded, strictly-LRU transposition cache
// used to prune already-explored canonical game states.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxSize is the default bound on distinct canonical-id keys held
// at once.
const DefaultMaxSize = 1_000_000

// Transposition is a bounded set of canonical-id keys with strict LRU
// eviction. It wraps hashicorp/golang-lru, whose Get bumps recency on hit
// and whose Add evicts the least-recently-used entry once the bound is
// exceeded -- exactly the has-with-refresh / add-with-eviction semantics
// this cache needs, with no hand-rolled intrusive list required.
type Transposition struct {
	lru *lru.Cache[string, struct{}]
}

// New returns a Transposition bounded at maxSize keys. maxSize <= 0 falls
// back to DefaultMaxSize.
func New(maxSize int) *Transposition {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	c, err := lru.New[string, struct{}](maxSize)
	if err != nil {
		// Only returns an error for size <= 0, which is excluded above.
		panic(err)
	}
	return &Transposition{lru: c}
}

// Has reports whether key is present, refreshing it to most-recently-used
// on a hit.
func (t *Transposition) Has(key string) bool {
	_, ok := t.lru.Get(key)
	return ok
}

// Add inserts key as most-recently-used, evicting the least-recently-used
// entry if the cache is at capacity. Adding an already-present key just
// refreshes it.
func (t *Transposition) Add(key string) {
	t.lru.Add(key, struct{}{})
}

// Len returns the number of keys currently held.
func (t *Transposition) Len() int {
	return t.lru.Len()
}
