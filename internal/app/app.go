// Package app implements the application layer for autoload.
package app

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/autoload/internal/adapters/detector"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/autoload/internal/engine/lifecycle"
	"go.trai.ch/autoload/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	host         ports.Host
	prober       ports.FileProber
	includer     ports.Includer
	snapshots    ports.SnapshotStore
	shared       ports.SharedCacheProvider
	sinks        ports.LogSinkFactory
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	host ports.Host,
	prober ports.FileProber,
	includer ports.Includer,
	snapshots ports.SnapshotStore,
	shared ports.SharedCacheProvider,
	sinks ports.LogSinkFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		host:         host,
		prober:       prober,
		includer:     includer,
		snapshots:    snapshots,
		shared:       shared,
		sinks:        sinks,
		logger:       log,
	}
}

// WithWorkDir sets the directory configuration is discovered from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// ConfigOptions overrides the discovered configuration.
type ConfigOptions struct {
	// Paths are registered after the configured search paths. Relative
	// paths are taken relative to the working directory.
	Paths []string
	// Extension replaces the configured default extension.
	Extension string
	// LogFormat is one of auto, pretty or json.
	LogFormat string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	ConfigOptions
	Dir   string
	All   bool
	Stats bool
}

// IncludeOptions configuration for the Include method.
type IncludeOptions struct {
	ConfigOptions
	Dir string
}

// FunctionsOptions configuration for the Functions method.
type FunctionsOptions struct {
	ConfigOptions
	Dir    string
	Prefix string
}

// Resolve prints the file each name resolves to.
// It returns domain.ErrUnresolved if any name resolved to no file.
func (a *App) Resolve(_ context.Context, names []string, opts ResolveOptions) error {
	h, err := a.activate(opts.ConfigOptions)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(a.host.Output())
	unresolved := false
	for _, name := range names {
		var res domain.Resolution
		if opts.All {
			res = h.ResolveAll(opts.Dir, name, "")
		} else {
			res = h.Resolve(opts.Dir, name, "")
		}

		if !res.Found() {
			printer.Unresolved(name)
			unresolved = true
			continue
		}
		for _, path := range res.Paths() {
			printer.Resolved(name, path)
		}
	}

	if opts.Stats {
		stats := h.Stats()
		for _, key := range slices.Sorted(maps.Keys(stats)) {
			printer.Item(fmt.Sprintf("%s %g", key, stats[key]))
		}
	}

	if unresolved {
		return domain.ErrUnresolved
	}
	return nil
}

// Load loads the file of each class through the registered hook.
func (a *App) Load(_ context.Context, classes []string, opts ConfigOptions) error {
	if _, err := a.activate(opts); err != nil {
		return err
	}

	var missing []string
	for _, class := range classes {
		if !a.host.Load(class) {
			missing = append(missing, class)
		}
	}
	return a.reportUnresolved(missing)
}

// Include loads each file, resolving entries that are not existing files
// as names below opts.Dir.
func (a *App) Include(_ context.Context, files []string, opts IncludeOptions) error {
	h, err := a.activate(opts.ConfigOptions)
	if err != nil {
		return err
	}
	return a.reportUnresolved(h.Include(opts.Dir, "", files...))
}

// Functions loads every function file of every search path.
func (a *App) Functions(_ context.Context, opts FunctionsOptions) error {
	h, err := a.activate(opts.ConfigOptions)
	if err != nil {
		return err
	}

	n := h.IncludeFunctions(opts.Dir, opts.Prefix)
	a.logger.Info(fmt.Sprintf("included %d function files", n))
	return nil
}

// Paths prints the search paths in precedence order.
func (a *App) Paths(_ context.Context, opts ConfigOptions) error {
	h, err := a.activate(opts)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(a.host.Output())
	for _, path := range h.Paths() {
		printer.Plain(path)
	}
	return nil
}

// Clean discards the configured persistence tier.
func (a *App) Clean(_ context.Context, opts ConfigOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	switch cfg.Tier.Kind {
	case domain.TierSnapshot:
		a.logger.Info("removing snapshot " + cfg.Tier.Path)
		if err := a.snapshots.Remove(cfg.Tier.Path); err != nil {
			return err
		}
	case domain.TierShared:
		a.logger.Info("clearing shared cache " + cfg.Tier.Prefix)
		cache, err := a.shared.Open(cfg.Tier.Dir, cfg.Tier.Prefix)
		if err != nil {
			return err
		}
		cache.Clear()
	default:
		a.logger.Info("no cache configured")
		return nil
	}

	a.logger.Info("cache cleaned")
	return nil
}

func (a *App) reportUnresolved(names []string) error {
	if len(names) == 0 {
		return nil
	}

	printer := output.NewPrinter(a.host.Output())
	for _, name := range names {
		printer.Unresolved(name)
	}
	return domain.ErrUnresolved
}

func (a *App) activate(opts ConfigOptions) (*lifecycle.Handle, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	return lifecycle.Activate(*cfg, lifecycle.Deps{
		Host:           a.host,
		Prober:         a.prober,
		Includer:       a.includer,
		Snapshots:      a.snapshots,
		SharedProvider: a.shared,
		Logger:         a.logger,
		Sink:           a.sinks.For(cfg.Logging),
	})
}

func (a *App) loadConfig(opts ConfigOptions) (*domain.Config, error) {
	a.configureLogger(opts.LogFormat)

	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
		}
		dir = wd
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	for _, p := range opts.Paths {
		if p != "" && !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		cfg.Paths = append(cfg.Paths, p)
	}
	if opts.Extension != "" {
		cfg.Extension = opts.Extension
	}
	return cfg, nil
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

func (a *App) configureLogger(flag string) {
	js, ok := a.logger.(jsonSwitch)
	if !ok {
		return
	}
	format := detector.ResolveFormat(detector.DetectEnvironment(), flag)
	js.SetJSON(format == detector.FormatJSON)
}
