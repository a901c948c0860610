package lfucache

import "github.com/moeryomenko/synx"

// Synced wraps Cache with one spinlock guarding every operation, for sharing
// between goroutines. The underlying structure stays free of synchronization;
// this is the single external lock the core type requires.
type Synced[K comparable, V any] struct {
	lock  synx.Spinlock
	cache *Cache[K, V]
}

// NewSynced returns an empty synchronized cache holding at most capacity
// entries.
func NewSynced[K comparable, V any](capacity int) (*Synced[K, V], error) {
	cache, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}

	return &Synced[K, V]{cache: cache}, nil
}

// Get returns the value for the specified key, inserting the zero value of V
// on a miss.
func (c *Synced[K, V]) Get(key K) V {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Get(key)
}

// Put inserts or updates the specified key-value pair.
func (c *Synced[K, V]) Put(key K, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.cache.Put(key, value)
}

// Peek returns the value for the specified key without counting an access.
func (c *Synced[K, V]) Peek(key K) (V, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Peek(key)
}

// Contains reports whether the key is present.
func (c *Synced[K, V]) Contains(key K) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Contains(key)
}

// Remove removes the entry for the key if one is present.
func (c *Synced[K, V]) Remove(key K) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Remove(key)
}

// Len returns the current size of the cache.
func (c *Synced[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Len()
}

// Empty reports whether the cache holds no entries.
func (c *Synced[K, V]) Empty() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Empty()
}

// Cap returns the configured capacity.
func (c *Synced[K, V]) Cap() int {
	return c.cache.Cap()
}

// Stats returns a snapshot of the operation counters.
func (c *Synced[K, V]) Stats() Stats {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.cache.Stats()
}
