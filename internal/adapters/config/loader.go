// Package config provides the configuration loader for autoload.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the configuration version understood by the loader.
const SchemaVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers autoload.yaml by walking up from cwd. Without one it
// returns the defaults rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	configPath, ok := findConfiguration(absCwd)
	if !ok {
		return Defaults(absCwd), nil
	}

	var file Autoloadfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.build(configPath, &file)
}

// Defaults returns the configuration used when no configuration file exists.
func Defaults(root string) *domain.Config {
	return &domain.Config{
		Root:      root,
		Paths:     []string{root},
		Extension: domain.DefaultExtension,
		TTL:       domain.DefaultTTL,
		Tier:      domain.SnapshotTier(domain.DefaultSnapshotPath(root)),
	}
}

func (l *Loader) build(configPath string, file *Autoloadfile) (*domain.Config, error) {
	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("unknown %s version %q, reading it as version %s",
			domain.ConfigFileName, file.Version, SchemaVersion))
	}

	root := resolveRoot(configPath, file.Root)
	cfg := Defaults(root)

	switch {
	case file.TTL < 0:
		return nil, zerr.With(domain.ErrInvalidTTL, "ttl", file.TTL)
	case file.TTL > 0:
		cfg.TTL = time.Duration(file.TTL) * time.Second
	}

	if file.Extension != "" {
		cfg.Extension = file.Extension
	}

	if len(file.Paths) > 0 {
		cfg.Paths = make([]string, 0, len(file.Paths))
		for _, p := range file.Paths {
			if p == "" {
				continue
			}
			abs := resolvePath(root, p)
			if info, err := os.Stat(abs); err != nil || !info.IsDir() {
				l.Logger.Warn(fmt.Sprintf("search path %s is not a directory", abs))
			}
			cfg.Paths = append(cfg.Paths, abs)
		}
	}

	if file.Cache.Shared != nil && file.Cache.Shared.Prefix == "" {
		l.Logger.Warn("shared cache has no prefix and stays disabled")
		file.Cache.Shared = nil
	}

	tier, err := resolveTier(root, &file.Cache)
	if err != nil {
		return nil, err
	}
	cfg.Tier = tier

	cfg.Logging = domain.Logging{Enabled: file.Logging.Enabled}
	if file.Logging.Enabled {
		cfg.Logging.File = domain.DefaultLogPath(root)
		if file.Logging.File != "" {
			cfg.Logging.File = resolvePath(root, file.Logging.File)
		}
	}

	return cfg, nil
}

// resolveTier maps the cache section to exactly one tier. A shared section
// must carry a prefix.
func resolveTier(root string, cache *CacheDTO) (domain.Tier, error) {
	configured := 0
	if cache.Shared != nil {
		configured++
	}
	if cache.Snapshot != nil {
		configured++
	}
	if cache.Disabled {
		configured++
	}
	if configured > 1 {
		return domain.Tier{}, domain.ErrConflictingTiers
	}

	switch {
	case cache.Disabled:
		return domain.NoTier(), nil
	case cache.Shared != nil:
		dir := cache.Shared.Dir
		if dir != "" {
			dir = resolvePath(root, dir)
		}
		return domain.SharedTier(cache.Shared.Prefix, dir), nil
	case cache.Snapshot != nil && cache.Snapshot.Path != "":
		return domain.SnapshotTier(resolvePath(root, cache.Snapshot.Path)), nil
	default:
		return domain.SnapshotTier(domain.DefaultSnapshotPath(root)), nil
	}
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolvePath(filepath.Dir(configPath), configuredRoot)
}

// resolvePath makes p absolute relative to base.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
