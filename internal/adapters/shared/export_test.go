package shared

import "time"

// NewStoreWithClock creates a Store that reads the current time from now.
func NewStoreWithClock(dir string, now func() time.Time) *Store {
	return &Store{dir: dir, now: now}
}

// NewProviderWithCacheDir creates a Provider whose default directory is below dir.
func NewProviderWithCacheDir(dir string) *Provider {
	return &Provider{userCacheDir: func() (string, error) { return dir, nil }}
}
