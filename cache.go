// Package lfucache implements a fixed-capacity key-value cache with
// least-frequently-used eviction and O(1) lookup, insertion, update and
// eviction.
//
// The replacement structure follows "An O(1) algorithm for implementing the
// LFU cache eviction scheme" by Shah, Mitra and Matani: a key index over
// recency-ordered frequency buckets. Keys are ordered by access frequency
// first and recency of access second; eviction removes the least recently
// touched key of the lowest occupied frequency.
package lfucache

import (
	"container/list"
	"errors"
)

// ErrInvalidCapacity is returned by New and NewSynced when the requested
// capacity is not positive.
var ErrInvalidCapacity = errors.New("capacity must be greater than zero")

// Cache is a fixed-capacity LFU cache.
//
// Cache is not safe for concurrent use. Share it between goroutines through
// Synced, or guard every operation with one external lock.
type Cache[K comparable, V any] struct {
	capacity int
	minFreq  int
	items    map[K]*entry[K, V]
	buckets  map[int]*list.List
	stats    Stats
}

// New returns an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V], capacity),
		buckets:  make(map[int]*list.List),
	}, nil
}

// Get returns the value for the specified key and counts the access.
//
// On a miss the zero value of V is inserted as if by Put, which may evict
// another entry, and that zero value is returned. Use Peek for a read
// without side effects.
func (c *Cache[K, V]) Get(key K) V {
	if it, ok := c.items[key]; ok {
		c.touch(it)
		c.stats.Hits++
		return it.value
	}

	c.stats.Misses++

	var zero V
	c.Put(key, zero)
	return zero
}

// Put inserts or updates the specified key-value pair. Updating an existing
// key counts as an access. Inserting a new key at capacity first evicts the
// least frequently used, least recently touched entry.
func (c *Cache[K, V]) Put(key K, value V) {
	if it, ok := c.items[key]; ok {
		c.touch(it)
		it.value = value
		return
	}

	if len(c.items) == c.capacity {
		c.evict()
	}

	it := &entry[K, V]{key: key, value: value, freq: 1}
	it.elem = c.bucketFor(1).PushFront(it)
	c.items[key] = it
	// The new key has frequency 1, which cannot exceed any existing minimum.
	c.minFreq = 1
	c.stats.Inserts++
}

// Peek returns the value for the specified key if it is present, without
// updating frequency or recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if it, ok := c.items[key]; ok {
		return it.value, true
	}

	var zero V
	return zero, false
}

// Contains reports whether the key is present, without counting an access.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove removes the entry for the specified key and reports whether an
// entry was present. Removing an absent key is a no-op.
func (c *Cache[K, V]) Remove(key K) bool {
	it, ok := c.items[key]
	if !ok {
		return false
	}

	c.unlink(it)
	c.stats.Removes++

	// Unlike touch, removal leaves no neighbouring bucket to land in, so the
	// minimum must be rescanned when the lowest bucket emptied.
	if len(c.items) > 0 {
		for c.buckets[c.minFreq] == nil {
			c.minFreq++
		}
	}

	return true
}

// Len returns the number of entries currently in the cache.
func (c *Cache[K, V]) Len() int { return len(c.items) }

// Empty reports whether the cache holds no entries.
func (c *Cache[K, V]) Empty() bool { return len(c.items) == 0 }

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Stats returns a snapshot of the operation counters.
func (c *Cache[K, V]) Stats() Stats { return c.stats }
