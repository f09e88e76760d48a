// Package lifecycle activates the resolution engine with the host runtime and
// finalizes its caches when the process ends.
package lifecycle

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/autoload/internal/engine/registry"
	"go.trai.ch/autoload/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// HookID is the id the resolution hook is registered under.
const HookID = "autoload"

var (
	mu     sync.Mutex
	active *Handle
)

// Deps are the collaborators of an activated engine.
type Deps struct {
	Host           ports.Host
	Prober         ports.FileProber
	Includer       ports.Includer
	Snapshots      ports.SnapshotStore
	SharedProvider ports.SharedCacheProvider
	Logger         ports.Logger
	Sink           ports.LogSink
}

func (d *Deps) validate() error {
	missing := func(name string) error {
		return zerr.With(domain.ErrMissingDependency, "dependency", name)
	}
	switch {
	case d.Host == nil:
		return missing("host")
	case d.Prober == nil:
		return missing("prober")
	case d.Includer == nil:
		return missing("includer")
	case d.Snapshots == nil:
		return missing("snapshots")
	case d.SharedProvider == nil:
		return missing("shared provider")
	case d.Logger == nil:
		return missing("logger")
	case d.Sink == nil:
		return missing("sink")
	}
	return nil
}

// Activate registers the engine with the host and returns its handle.
// While an engine is active, further calls return the same handle and
// ignore their arguments.
func Activate(cfg domain.Config, deps Deps) (*Handle, error) {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return active, nil
	}

	if err := deps.validate(); err != nil {
		return nil, err
	}

	h := newHandle(cfg, deps)
	deps.Host.Register(HookID, h.Load)
	deps.Host.OnShutdown(h.Finalize)

	active = h
	return h, nil
}

// Deactivate unregisters the engine and discards every cache tier.
// Finalize of the old handle becomes a no-op and a later Activate starts
// from scratch.
func Deactivate() {
	mu.Lock()
	h := active
	active = nil
	mu.Unlock()

	if h != nil {
		h.close()
	}
}

// Handle is the facade of an activated engine.
type Handle struct {
	cfg      domain.Config
	deps     Deps
	registry *registry.Registry
	cache    *resolver.Cache

	finalize sync.Once
	closeMu  sync.Mutex
	closed   bool
}

func newHandle(cfg domain.Config, deps Deps) *Handle {
	if cfg.Extension == "" {
		cfg.Extension = domain.DefaultExtension
	}
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultTTL
	}

	opts := resolver.Options{
		Extension: cfg.Extension,
		TTL:       cfg.TTL,
		Tier:      cfg.Tier.Kind,
	}

	if cfg.Tier.Kind == domain.TierShared {
		shared, err := deps.SharedProvider.Open(cfg.Tier.Dir, cfg.Tier.Prefix)
		if err != nil {
			deps.Logger.Warn("shared cache unavailable, caching in memory only: " + err.Error())
			cfg.Tier = domain.NoTier()
			opts.Tier = domain.TierNone
		} else {
			opts.Shared = shared
		}
	}

	reg := registry.New(cfg.Paths...)
	h := &Handle{
		cfg:      cfg,
		deps:     deps,
		registry: reg,
		cache:    resolver.New(reg, deps.Prober, opts),
	}

	if cfg.Tier.Kind == domain.TierSnapshot {
		entries, err := deps.Snapshots.Load(cfg.Tier.Path, cfg.TTL)
		if err != nil {
			deps.Logger.Warn("discarded snapshot: " + err.Error())
		}
		h.cache.Seed(entries)
	}

	return h
}

// Config returns the configuration the engine was activated with.
func (h *Handle) Config() domain.Config {
	return h.cfg
}

// Resolve returns the first file defining name below dirHint.
func (h *Handle) Resolve(dirHint, name, ext string) domain.Resolution {
	return h.cache.Resolve(dirHint, name, ext)
}

// ResolveAll returns every file defining name, least specific first.
func (h *Handle) ResolveAll(dirHint, name, ext string) domain.Resolution {
	return h.cache.ResolveAll(dirHint, name, ext)
}

// Load resolves a class identifier and includes its file. It is the hook
// registered with the host.
func (h *Handle) Load(class string) bool {
	res := h.cache.Resolve("", domain.ClassPath(class), "")
	if !res.Found() {
		return false
	}
	return h.include(res.Path())
}

// AddPaths registers further search paths with the highest precedence.
func (h *Handle) AddPaths(paths ...string) {
	h.registry.AddPaths(paths...)
}

// Paths returns the search paths in precedence order.
func (h *Handle) Paths() []string {
	return h.registry.List()
}

// Include loads each file. Entries that are not existing files are
// resolved as names below dir with extension ext, empty selecting the
// configured one. The names that resolve to no file are returned.
func (h *Handle) Include(dir, ext string, files ...string) []string {
	var unresolved []string
	for _, file := range files {
		if h.deps.Prober.IsFile(file) {
			h.include(file)
			continue
		}

		res := h.cache.Resolve(dir, file, ext)
		if !res.Found() {
			unresolved = append(unresolved, file)
			continue
		}
		h.include(res.Path())
	}
	return unresolved
}

// IncludeFunctions includes every file named <prefix>*<ext> inside dir of
// each search path and returns how many files were included.
// Empty dir and prefix select "functions" and "_".
func (h *Handle) IncludeFunctions(dir, prefix string) int {
	if dir == "" {
		dir = domain.DefaultFunctionsDir
	}
	if prefix == "" {
		prefix = domain.DefaultFunctionsPrefix
	}

	count := 0
	for _, base := range h.registry.List() {
		pattern := filepath.Join(base, dir, prefix+"*"+h.cfg.Extension)
		matches, err := h.deps.Prober.Glob(pattern)
		if err != nil {
			h.deps.Logger.Warn(err.Error())
			continue
		}
		for _, match := range matches {
			if h.include(match) {
				count++
			}
		}
	}
	return count
}

func (h *Handle) include(path string) bool {
	if err := h.deps.Includer.Include(path, h.deps.Host.Output()); err != nil {
		h.deps.Logger.Warn(err.Error())
		return false
	}
	return true
}

// Stats returns the lookup counters keyed by "tier/outcome".
func (h *Handle) Stats() map[string]float64 {
	return h.cache.Stats()
}

// Finalize persists the snapshot and, if the host is dying from a fatal
// error, discards every cache tier and exits. It runs at most once and is a
// no-op after Deactivate.
func (h *Handle) Finalize() {
	h.finalize.Do(func() {
		if h.isClosed() {
			return
		}
		h.persist()
		h.cleanupOnFatal()
	})
}

// persist writes the snapshot if lookups changed it. Every failure is
// logged and swallowed.
func (h *Handle) persist() {
	defer func() {
		if r := recover(); r != nil {
			h.deps.Logger.Warn(fmt.Sprintf("failed to persist snapshot: %v", r))
		}
	}()

	if h.cfg.Tier.Kind != domain.TierSnapshot || !h.cache.Dirty() {
		return
	}
	if err := h.deps.Snapshots.Save(h.cfg.Tier.Path, h.cache.Entries()); err != nil {
		h.deps.Logger.Warn("failed to persist snapshot: " + err.Error())
	}
}

// cleanupOnFatal discards every tier and terminates the process when the
// host's last error is fatal.
func (h *Handle) cleanupOnFatal() {
	last := h.deps.Host.LastError()
	if last == nil || !last.Fatal() {
		return
	}

	h.discardTiers()
	h.deps.Host.DiscardOutput()
	h.deps.Sink.Write(last.Format())

	// The console sink already printed the diagnostic.
	message := ""
	if h.cfg.Logging.ToFile() {
		message = last.Summary()
	}
	h.deps.Host.Exit(1, message)
}

func (h *Handle) discardTiers() {
	if h.cfg.Tier.Kind == domain.TierSnapshot {
		if err := h.deps.Snapshots.Remove(h.cfg.Tier.Path); err != nil {
			h.deps.Logger.Warn(err.Error())
		}
	}
	h.cache.Clear()
}

func (h *Handle) isClosed() bool {
	h.closeMu.Lock()
	defer h.closeMu.Unlock()
	return h.closed
}

func (h *Handle) close() {
	h.closeMu.Lock()
	h.closed = true
	h.closeMu.Unlock()

	h.deps.Host.Unregister(HookID)
	h.discardTiers()
	h.registry.Reset()
}
