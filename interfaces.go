package lfucache

// cacher is the common operation set of the cache implementations.
type cacher[K comparable, V any] interface {
	// Get returns the value for the specified key, inserting the zero value
	// of V on a miss.
	Get(key K) V
	// Put inserts or updates the specified key-value pair.
	Put(key K, value V)
	// Peek returns the value for the specified key without counting an access.
	Peek(key K) (V, bool)
	// Contains reports whether the key is present.
	Contains(key K) bool
	// Remove removes the entry for the key if one is present.
	Remove(key K) bool
	// Len returns the current size of the cache.
	Len() int
	// Empty reports whether the cache holds no entries.
	Empty() bool
}

// dummy test for implementations.
var (
	_ cacher[int, any] = (*Cache[int, any])(nil)
	_ cacher[int, any] = (*Synced[int, any])(nil)
)
