// Package registry holds the ordered search paths of the autoloader.
package registry

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Registry is the ordered set of base directories scanned on a cache miss.
// The most recently added path is searched first.
type Registry struct {
	mu    sync.RWMutex
	paths []string
}

// New creates a registry holding paths, added in order.
func New(paths ...string) *Registry {
	r := &Registry{}
	r.AddPaths(paths...)
	return r
}

// AddPaths registers directories. Each path is normalized to end in exactly one
// platform separator and inserted at the front unless already present.
// Empty paths are ignored and existence is not checked.
func (r *Registry) AddPaths(paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range paths {
		p = Normalize(p)
		if p == "" || slices.Contains(r.paths, p) {
			continue
		}
		r.paths = slices.Insert(r.paths, 0, p)
	}
}

// List returns the search paths in precedence order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.paths)
}

// Reset removes every search path.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths = nil
}

// Normalize strips trailing separators from p and appends one platform
// separator. It returns "" for an empty path.
func Normalize(p string) string {
	if p == "" {
		return ""
	}
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" {
		// A bare root keeps its single separator.
		return string(filepath.Separator)
	}
	return trimmed + string(filepath.Separator)
}
