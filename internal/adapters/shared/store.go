// Package shared provides a shared cache tier backed by a directory that many
// processes use at once.
package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
)

const entrySuffix = ".entry"

var _ ports.SharedCache = (*Store)(nil)

type entry struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store implements the SharedCache interface with one file per entry.
// Entries are published with a hard link, so an add never overwrites a live
// entry written by another process.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Add stores value under key unless a live entry exists. An expired entry is
// removed and the add is retried once.
func (s *Store) Add(key string, value []byte, ttl time.Duration) bool {
	data, err := json.Marshal(entry{Key: key, Value: value, ExpiresAt: s.now().Add(ttl)})
	if err != nil {
		return false
	}

	path := s.path(key)
	for range 2 {
		err := s.publish(path, data)
		if err == nil {
			return true
		}
		if !errors.Is(err, fs.ErrExist) {
			return false
		}
		if _, live := s.read(path, key); live {
			return false
		}
		_ = os.Remove(path)
	}
	return false
}

// Fetch returns the live value stored under key.
func (s *Store) Fetch(key string) ([]byte, bool) {
	return s.read(s.path(key), key)
}

// Delete removes key.
func (s *Store) Delete(key string) {
	_ = os.Remove(s.path(key))
}

// Clear removes every entry of the namespace.
func (s *Store) Clear() {
	_ = os.RemoveAll(s.dir)
	_ = os.MkdirAll(s.dir, domain.DirPerm)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x%s", xxhash.Sum64String(key), entrySuffix))
}

// read returns the value at path if it belongs to key and has not expired.
// Expired entries are removed.
func (s *Store) read(path, key string) ([]byte, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the namespace directory
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if e.Key != key {
		return nil, false
	}
	if !s.now().Before(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}
	return e.Value, true
}

// publish writes data to a temp file and links it to path.
// It fails with fs.ErrExist when path already exists.
func (s *Store) publish(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Link(tmpName, path)
}
