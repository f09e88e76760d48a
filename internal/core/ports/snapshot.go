package ports

import (
	"time"

	"go.trai.ch/autoload/internal/core/domain"
)

// SnapshotStore persists the in-process resolution map between runs.
//
//go:generate mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotStore interface {
	// Load returns the entries of the snapshot at path.
	// A missing snapshot yields an empty map. A snapshot older than ttl, or one
	// that cannot be read or decoded, is deleted and yields an empty map; read
	// and decode failures are also returned as an error.
	Load(path string, ttl time.Duration) (map[string]domain.Resolution, error)

	// Save replaces the snapshot at path with entries.
	Save(path string, entries map[string]domain.Resolution) error

	// Remove deletes the snapshot at path. A missing snapshot is not an error.
	Remove(path string) error
}
