package ports

import "time"

// SharedCache is a key/value store visible to every process on the machine.
// Entries expire after the TTL they were added with.
//
//go:generate mockgen -source=shared_cache.go -destination=mocks/mock_shared_cache.go -package=mocks
type SharedCache interface {
	// Add stores value under key unless a live entry already exists.
	// It reports whether the value was stored.
	Add(key string, value []byte, ttl time.Duration) bool

	// Fetch returns the live value stored under key.
	Fetch(key string) ([]byte, bool)

	// Delete removes key.
	Delete(key string)

	// Clear removes every entry of the namespace.
	Clear()
}

// SharedCacheProvider opens namespaced shared caches.
type SharedCacheProvider interface {
	// Open returns the shared cache namespace for prefix below dir.
	// An empty dir selects the default shared cache directory.
	Open(dir, prefix string) (SharedCache, error)
}
