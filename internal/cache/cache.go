package cache

// RecordCache is a byte-oriented cache for record content, keyed by record key.
// Returned slices must be treated as read-only.
type RecordCache interface {
	// Get returns a cached value. ok=false if missing.
	Get(key string) (b []byte, ok bool)
	// Set caches a value. Caller must treat b as immutable afterwards.
	Set(key string, b []byte)
	// Invalidate removes the entry for key, if any.
	Invalidate(key string)
	// Stats returns cache statistics.
	Stats() (hits, misses int64)
}
