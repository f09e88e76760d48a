package snapshot

import "time"

// NewStoreWithClock creates a Store that reads the current time from now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}
