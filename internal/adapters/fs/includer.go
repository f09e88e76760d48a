package fs

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Includer = (*Includer)(nil)

// Includer loads a file by copying its contents into the host output.
type Includer struct {
	fs  billy.Filesystem
	abs bool
}

// NewIncluder creates a new Includer for the given filesystem.
func NewIncluder(fs billy.Filesystem) *Includer {
	return &Includer{fs: fs}
}

// NewOSIncluder creates an Includer on the host filesystem. Relative paths
// are taken relative to the working directory.
func NewOSIncluder() *Includer {
	return &Includer{fs: osfs.New("/"), abs: true}
}

// Include copies the file at path into w.
func (i *Includer) Include(path string, w io.Writer) error {
	f, err := i.fs.Open(absolute(path, i.abs))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to include file"), "path", path)
	}
	return nil
}
