// Package fs provides filesystem adapters that find and include files.
package fs

import (
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileProber = (*Prober)(nil)

// Prober implements the FileProber interface on top of a billy filesystem.
type Prober struct {
	fs  billy.Filesystem
	abs bool
}

// NewProber creates a new Prober for the given filesystem.
// Paths passed to the prober are resolved relative to the filesystem root.
func NewProber(fs billy.Filesystem) *Prober {
	return &Prober{fs: fs}
}

// NewOSProber creates a Prober on the host filesystem. Relative paths are
// taken relative to the working directory.
func NewOSProber() *Prober {
	return &Prober{fs: osfs.New("/"), abs: true}
}

// IsFile reports whether path is a regular file.
func (p *Prober) IsFile(path string) bool {
	info, err := p.fs.Stat(absolute(path, p.abs))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Glob returns the regular files matching pattern, sorted.
func (p *Prober) Glob(pattern string) ([]string, error) {
	matches, err := util.Glob(p.fs, absolute(pattern, p.abs))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}

	files := matches[:0]
	for _, match := range matches {
		if p.IsFile(match) {
			files = append(files, match)
		}
	}
	sort.Strings(files)

	return files, nil
}

// absolute joins a relative path onto the working directory when enabled.
// A billy filesystem rooted at / would otherwise join it onto /.
func absolute(path string, enabled bool) string {
	if !enabled || filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
