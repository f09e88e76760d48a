// Package snapshot persists the in-process resolution map to a generated YAML file.
package snapshot

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// Version is the snapshot format version. Files of any other version are discarded.
	Version = 1

	preamble   = "# Code generated by autoload. DO NOT EDIT.\n"
	lockSuffix = ".lock"
)

var _ ports.SnapshotStore = (*Store)(nil)

type document struct {
	Version int                          `yaml:"version"`
	Entries map[string]domain.Resolution `yaml:"entries"`
}

// Store implements the SnapshotStore interface on the local filesystem.
type Store struct {
	now func() time.Time
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Load reads the snapshot at path. Expired, unreadable and undecodable
// snapshots are deleted.
func (s *Store) Load(path string, ttl time.Duration) (map[string]domain.Resolution, error) {
	if ttl <= 0 {
		ttl = domain.DefaultTTL
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]domain.Resolution{}, nil
	}
	if err != nil {
		return map[string]domain.Resolution{}, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	if s.now().Sub(info.ModTime()) >= ttl {
		return map[string]domain.Resolution{}, s.Remove(path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from trusted configuration
	if err != nil {
		return map[string]domain.Resolution{}, s.discard(path, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()))
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return map[string]domain.Resolution{}, s.discard(path, zerr.Wrap(err, domain.ErrSnapshotUnmarshalFailed.Error()))
	}

	if doc.Version != Version {
		err := zerr.With(domain.ErrSnapshotVersionMismatch, "version", doc.Version)
		return map[string]domain.Resolution{}, s.discard(path, err)
	}

	if doc.Entries == nil {
		doc.Entries = map[string]domain.Resolution{}
	}
	return doc.Entries, nil
}

func (s *Store) discard(path string, err error) error {
	err = zerr.With(err, "path", path)
	if rmErr := s.Remove(path); rmErr != nil {
		return errors.Join(err, rmErr)
	}
	return err
}

// Save replaces the snapshot at path with entries. Writers are serialized by
// an exclusive lock on a sibling lock file and the file is replaced atomically.
func (s *Store) Save(path string, entries map[string]domain.Resolution) error {
	if entries == nil {
		entries = map[string]domain.Resolution{}
	}

	var buf bytes.Buffer
	buf.WriteString(preamble)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document{Version: Version, Entries: entries}); err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotMarshalFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}

	lock := flock.New(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotLockFailed.Error()), "path", path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := atomicWriteFile(path, buf.Bytes()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}
	return nil
}

// Remove deletes the snapshot at path.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotRemoveFailed.Error()), "path", path)
	}
	return nil
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "autoload-snapshot-*.yaml")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
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

	return os.Rename(tmpName, path)
}
