package lfucache

// Stats holds cumulative operation counters of one cache instance.
type Stats struct {
	Hits      int // Get calls that found the key
	Misses    int // Get calls that fell back to inserting the zero value
	Inserts   int // new entries created, miss-path inserts included
	Evictions int // entries dropped to make room at capacity
	Removes   int // Remove calls that found the key
}
