package cache

// EvictCallback is called when an entry is evicted from the cache.
// The redis provider reports the key only; value is nil there.
type EvictCallback func(key string, value []byte)

// Cache stores catalog response bodies keyed by request.
// Implementations may use in-memory storage or an external backend such as Redis/Valkey.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found, or nil and false if not.
	Get(key string) ([]byte, bool)
	// Set stores a value with the given key, overwriting any previous value.
	Set(key string, value []byte)
	// Contains reports whether a key exists without refreshing its recency.
	Contains(key string) bool
	// Len returns the number of entries currently stored.
	Len() int
	// Close releases any resources held by the cache (e.g., network connections).
	Close() error
}

// Logger receives errors from cache backends that cannot return them to the caller.
type Logger interface {
	Error(msg string, err error)
}
