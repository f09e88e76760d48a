// Package resolver implements the cached name-to-file resolution engine.
package resolver

import (
	"maps"
	"slices"
	"sync"
	"time"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/autoload/internal/engine/registry"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// Options configures a Cache.
type Options struct {
	// Extension is used when a lookup passes none. Empty selects ".php".
	Extension string
	// TTL is attached to every entry added to the shared tier.
	TTL time.Duration
	// Tier is the persistence tier behind the in-process map.
	Tier domain.TierKind
	// Shared is the shared tier store. It is only consulted when Tier is TierShared.
	Shared ports.SharedCache
}

// Cache resolves names against the search paths of a registry and remembers
// every outcome.
//
// Negative caching: a NotFound outcome is cached like a found path and is only
// dropped by Clear, TTL expiry of the persistence tier or fatal cleanup. A file
// created after its name was looked up stays unresolved for the rest of the
// run. Likewise a cached path is returned even if the file was deleted since.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.Resolution
	dirty   bool

	registry *registry.Registry
	prober   ports.FileProber
	shared   ports.SharedCache
	tier     domain.TierKind
	ext      string
	ttl      time.Duration

	group   singleflight.Group
	metrics *metrics
}

// New creates an empty Cache scanning the paths of reg through prober.
func New(reg *registry.Registry, prober ports.FileProber, opts Options) *Cache {
	if opts.Extension == "" {
		opts.Extension = domain.DefaultExtension
	}
	if opts.TTL <= 0 {
		opts.TTL = domain.DefaultTTL
	}

	c := &Cache{
		entries:  make(map[string]domain.Resolution),
		registry: reg,
		prober:   prober,
		tier:     opts.Tier,
		ext:      opts.Extension,
		ttl:      opts.TTL,
		metrics:  newMetrics(),
	}
	if opts.Tier == domain.TierShared {
		c.shared = opts.Shared
	}
	return c
}

// Resolve returns the first file that defines name, searching the registry in
// precedence order.
func (c *Cache) Resolve(dirHint, name, ext string) domain.Resolution {
	return c.lookup(c.key(dirHint, name, ext), false)
}

// ResolveAll returns every file that defines name, ordered from the lowest to
// the highest precedence search path. No match yields an empty NotFound.
func (c *Cache) ResolveAll(dirHint, name, ext string) domain.Resolution {
	return c.lookup(c.key(dirHint, name, ext), true)
}

func (c *Cache) key(dirHint, name, ext string) domain.Key {
	if ext == "" {
		ext = c.ext
	}
	return domain.NewKey(dirHint, name, ext)
}

func (c *Cache) lookup(key domain.Key, all bool) domain.Resolution {
	slot := key.Slot(all)

	if res, ok := c.cached(slot); ok {
		c.metrics.memoryHit.Inc()
		return res
	}
	c.metrics.memoryMiss.Inc()

	v, _, _ := c.group.Do(slot, func() (any, error) {
		// A concurrent flight may have finished between the miss and Do.
		if res, ok := c.cached(slot); ok {
			return res, nil
		}

		if res, ok := c.fetchShared(slot, all); ok {
			c.metrics.sharedHit.Inc()
			c.store(slot, res)
			return res, nil
		}

		res := c.scan(key, all)
		if res.Found() {
			c.metrics.scanHit.Inc()
		} else {
			c.metrics.scanMiss.Inc()
		}
		c.record(slot, res)
		return res, nil
	})

	res, _ := v.(domain.Resolution)
	return res
}

func (c *Cache) cached(slot string) (domain.Resolution, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.entries[slot]
	return res, ok
}

func (c *Cache) fetchShared(slot string, all bool) (domain.Resolution, bool) {
	if c.shared == nil {
		return domain.Resolution{}, false
	}

	value, ok := c.shared.Fetch(slot)
	if !ok {
		c.metrics.sharedMiss.Inc()
		return domain.Resolution{}, false
	}

	var res domain.Resolution
	if err := yaml.Unmarshal(value, &res); err != nil {
		c.metrics.sharedMiss.Inc()
		return domain.Resolution{}, false
	}
	if res.Multi() != all {
		if res.Found() {
			c.metrics.sharedMiss.Inc()
			return domain.Resolution{}, false
		}
		res = notFound(all)
	}
	return res, true
}

func (c *Cache) scan(key domain.Key, all bool) domain.Resolution {
	paths := c.registry.List()

	if !all {
		for _, base := range paths {
			candidate := base + key.String()
			if c.prober.IsFile(candidate) {
				return domain.Found(candidate)
			}
		}
		return notFound(false)
	}

	var found []string
	for _, base := range slices.Backward(paths) {
		candidate := base + key.String()
		if c.prober.IsFile(candidate) {
			found = append(found, candidate)
		}
	}
	return domain.FoundAll(found)
}

// store writes res into the in-process map without touching other tiers.
func (c *Cache) store(slot string, res domain.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[slot] = res
}

// record stores the outcome of a scan in memory and mirrors it into the
// persistence tier.
func (c *Cache) record(slot string, res domain.Resolution) {
	c.mu.Lock()
	c.entries[slot] = res
	if c.tier == domain.TierSnapshot {
		c.dirty = true
	}
	c.mu.Unlock()

	if c.shared == nil {
		return
	}

	value, err := yaml.Marshal(res)
	if err != nil {
		return
	}
	if !res.Found() {
		c.shared.Delete(slot)
	}
	c.shared.Add(slot, value, c.ttl)
}

// Seed populates the in-process map from a snapshot. Entries are trusted
// without checking the filesystem and the cache stays clean.
func (c *Cache) Seed(entries map[string]domain.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()

	maps.Copy(c.entries, entries)
}

// Entries returns a copy of the in-process map.
func (c *Cache) Entries() map[string]domain.Resolution {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.entries)
}

// Dirty reports whether a scan added entries that the snapshot lacks.
func (c *Cache) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dirty
}

// Clear drops every in-process entry and clears the shared tier.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]domain.Resolution)
	c.dirty = false
	c.mu.Unlock()

	if c.shared != nil {
		c.shared.Clear()
	}
}

// Stats returns the lookup counters keyed by "tier/outcome".
func (c *Cache) Stats() map[string]float64 {
	return c.metrics.snapshot()
}

func notFound(all bool) domain.Resolution {
	if all {
		return domain.FoundAll(nil)
	}
	return domain.NotFound
}
