package domain

import "time"

// DefaultTTL is how long the shared tier and the snapshot file stay valid.
const DefaultTTL = 24 * time.Hour

// TierKind enumerates the persistence tiers behind the in-process map.
type TierKind uint8

const (
	// TierNone keeps resolutions in memory only.
	TierNone TierKind = iota
	// TierShared mirrors resolutions into a cross-process cache.
	TierShared
	// TierSnapshot persists the in-process map into a snapshot file at exit.
	TierSnapshot
)

// String returns the configuration name of the tier.
func (k TierKind) String() string {
	switch k {
	case TierShared:
		return "shared"
	case TierSnapshot:
		return "snapshot"
	default:
		return "none"
	}
}

// Tier selects the single persistence tier that is authoritative for a run.
type Tier struct {
	Kind TierKind
	// Prefix namespaces keys in the shared cache.
	Prefix string
	// Dir is the shared cache directory. Empty selects the user cache directory.
	Dir string
	// Path is the snapshot file location.
	Path string
}

// NoTier disables persistence.
func NoTier() Tier {
	return Tier{Kind: TierNone}
}

// SharedTier selects the shared cache namespaced by prefix.
func SharedTier(prefix, dir string) Tier {
	return Tier{Kind: TierShared, Prefix: prefix, Dir: dir}
}

// SnapshotTier selects the snapshot file at path.
func SnapshotTier(path string) Tier {
	return Tier{Kind: TierSnapshot, Path: path}
}

// Logging is the fatal-diagnostic logging mode.
type Logging struct {
	// Enabled routes diagnostics to File and shortens the exit message.
	Enabled bool
	// File is the log file used when Enabled is set.
	File string
}

// ToFile reports whether diagnostics go to the log file.
func (l Logging) ToFile() bool {
	return l.Enabled && l.File != ""
}

// Config is the resolved configuration of one autoloader instance.
type Config struct {
	// Root is the directory the configuration was loaded from.
	Root string
	// Paths are the search paths in registration order; later entries win.
	Paths []string
	// Extension is appended to names when a lookup gives none.
	Extension string
	// TTL bounds the age of shared entries and of the snapshot file.
	TTL time.Duration
	// Tier is the persistence tier.
	Tier Tier
	// Logging is the fatal-diagnostic logging mode.
	Logging Logging
}
