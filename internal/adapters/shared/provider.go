package shared

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SharedCacheProvider = (*Provider)(nil)

// Provider opens shared cache namespaces.
type Provider struct {
	userCacheDir func() (string, error)
}

// NewProvider creates a new Provider that defaults to the user cache directory.
func NewProvider() *Provider {
	return &Provider{userCacheDir: os.UserCacheDir}
}

// Open returns the namespace for prefix below dir. An empty dir selects
// the autoload directory inside the user cache directory.
func (p *Provider) Open(dir, prefix string) (ports.SharedCache, error) {
	if dir == "" {
		cacheDir, err := p.userCacheDir()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSharedCacheDirUnknown.Error())
		}
		dir = filepath.Join(cacheDir, domain.SharedDirName)
	}

	ns := filepath.Join(dir, Namespace(prefix))
	if err := os.MkdirAll(ns, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSharedCacheCreateFailed.Error()), "path", ns)
	}

	return NewStore(ns), nil
}

// Namespace returns the directory name used for prefix.
func Namespace(prefix string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(prefix))
}
