// Package cache provides LRU caching for record content.
//
// The LRU is byte-capacity bounded: entries are evicted from the cold end
// until the configured budget holds. Values are treated as immutable; the
// caching adapter hands out copies, never the cached slice itself.
package cache
