// Package cache provides a generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// An eviction callback observes every entry that leaves the cache, whether
// pushed out by the size limit, replaced by Set, removed, or cleared.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
