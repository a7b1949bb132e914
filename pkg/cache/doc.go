// Package cache provides a generic, bounded LRU (least recently used) cache.
//
// The validation engine stores computed results keyed by circuit fingerprint
// here; the cache itself is domain-agnostic.
//
//	c := cache.New[string, Result](1000)
//
//	c.Put("9f2c…", result)
//	if r, ok := c.Get("9f2c…"); ok {
//		// hit: entry is now most recently used
//	}
//
// # Eviction
//
// Put never lets the cache grow past its capacity: when the cache is full the
// least recently used entry is evicted before the new one is stored. Get and
// Put mark an entry as most recently used.
//
// An optional callback set with SetEvictCallback is invoked for every entry
// dropped by eviction or Clear.
//
// # Thread Safety
//
// All methods are guarded by a single mutex, so one cache can be shared by
// concurrent goroutines. Every operation is O(1) except Clear, which is
// linear in the number of entries.
//
// # Statistics
//
// Stats returns hit, miss and eviction counters together with the current
// size and capacity. HitRatio derives Hits / (Hits + Misses).
package cache
