package lfucache

import "container/list"

// entry is the per-key metadata: the stored value, the current access
// frequency and the position handle into that frequency's recency list.
type entry[K comparable, V any] struct {
	key   K
	value V
	freq  int
	elem  *list.Element
}

// bucketFor returns the recency list for the given frequency, creating it
// when absent. The front of the list is the most recently touched key of
// that frequency, the back the least recently touched.
func (c *Cache[K, V]) bucketFor(freq int) *list.List {
	b, ok := c.buckets[freq]
	if !ok {
		b = list.New()
		c.buckets[freq] = b
	}

	return b
}

// touch records one access: the entry leaves its current bucket and moves to
// the front of the next frequency's bucket.
func (c *Cache[K, V]) touch(it *entry[K, V]) {
	old := it.freq
	c.removeFromBucket(it)

	it.freq = old + 1
	it.elem = c.bucketFor(it.freq).PushFront(it)

	// The touched key is the only one that can drain the lowest bucket, and
	// it lands exactly one frequency up.
	if old == c.minFreq && c.buckets[old] == nil {
		c.minFreq = old + 1
	}
}

// evict drops the least recently touched entry of the lowest occupied
// frequency. The cache must not be empty.
func (c *Cache[K, V]) evict() {
	it := c.buckets[c.minFreq].Back().Value.(*entry[K, V])
	c.unlink(it)
	c.stats.Evictions++
}

// unlink detaches the entry from its bucket and from the key index.
func (c *Cache[K, V]) unlink(it *entry[K, V]) {
	c.removeFromBucket(it)
	delete(c.items, it.key)
}

// removeFromBucket takes the entry out of its recency list. Emptied buckets
// are dropped from the map so they can never be selected as the minimum.
func (c *Cache[K, V]) removeFromBucket(it *entry[K, V]) {
	b := c.buckets[it.freq]
	b.Remove(it.elem)
	if b.Len() == 0 {
		delete(c.buckets, it.freq)
	}

	it.elem = nil
}
