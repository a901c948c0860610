package lfucache

import (
	"sync"
	"testing"
)

func TestSynced_ConcurrentAccess(t *testing.T) {
	cache, err := NewSynced[int, int](32)
	if err != nil {
		fail(t, `unexpected constructor error: %v`, err)
	}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := (worker*31 + i) % 100
				switch i % 4 {
				case 0:
					cache.Put(key, i)
				case 1:
					cache.Get(key)
				case 2:
					cache.Peek(key)
				case 3:
					cache.Remove(key)
				}
			}
		}(worker)
	}
	wg.Wait()

	if cache.Len() > cache.Cap() {
		fail(t, `size %d exceeds capacity %d`, cache.Len(), cache.Cap())
	}
	checkInvariants(t, cache.cache)
}

func TestSynced_Basics(t *testing.T) {
	cache, _ := NewSynced[string, string](2)

	cache.Put(`a`, `1`)
	cache.Put(`b`, `2`)
	if v := cache.Get(`a`); v != `1` {
		fail(t, `unexpected value %q`, v)
	}

	// b is now the least frequently used key.
	cache.Put(`c`, `3`)
	if cache.Contains(`b`) {
		fail(t, `expected key b evicted`)
	}
	if v, ok := cache.Peek(`c`); !ok || v != `3` {
		fail(t, `unexpected peek result %q, %v`, v, ok)
	}
	if !cache.Remove(`c`) || cache.Len() != 1 {
		fail(t, `expected key c removed`)
	}
	if cache.Empty() {
		fail(t, `cache unexpectedly empty`)
	}

	stats := cache.Stats()
	if stats.Evictions != 1 || stats.Inserts != 3 {
		fail(t, `unexpected counters %+v`, stats)
	}
}
