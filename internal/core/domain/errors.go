package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConflictingTiers is returned when both the shared and the snapshot tier are configured.
	ErrConflictingTiers = zerr.New("shared cache and snapshot file cannot both be configured")

	// ErrInvalidLogging is returned when the logging mode is neither a boolean nor a file path.
	ErrInvalidLogging = zerr.New("logging must be true, false or a log file path")

	// ErrInvalidTTL is returned when the configured TTL is not positive.
	ErrInvalidTTL = zerr.New("ttl must be a positive number of seconds")

	// ErrFailedToGetRoot is returned when the configuration root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of configuration root")

	// ErrSnapshotReadFailed is returned when the snapshot file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot file")

	// ErrSnapshotUnmarshalFailed is returned when the snapshot file cannot be decoded.
	ErrSnapshotUnmarshalFailed = zerr.New("failed to unmarshal snapshot file")

	// ErrSnapshotVersionMismatch is returned when the snapshot file was written by an incompatible version.
	ErrSnapshotVersionMismatch = zerr.New("snapshot file version mismatch")

	// ErrSnapshotMarshalFailed is returned when the snapshot cannot be encoded.
	ErrSnapshotMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrSnapshotWriteFailed is returned when the snapshot file cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write snapshot file")

	// ErrSnapshotLockFailed is returned when the snapshot lock cannot be acquired.
	ErrSnapshotLockFailed = zerr.New("failed to lock snapshot file")

	// ErrSnapshotRemoveFailed is returned when the snapshot file cannot be removed.
	ErrSnapshotRemoveFailed = zerr.New("failed to remove snapshot file")

	// ErrSharedCacheCreateFailed is returned when the shared cache directory cannot be created.
	ErrSharedCacheCreateFailed = zerr.New("failed to create shared cache directory")

	// ErrSharedCacheDirUnknown is returned when no default shared cache directory can be determined.
	ErrSharedCacheDirUnknown = zerr.New("failed to determine shared cache directory")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrMissingDependency is returned when the engine is activated without a required collaborator.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrUnresolved is returned when one or more names could not be resolved.
	ErrUnresolved = zerr.New("unresolved names")

	// ErrFatal is returned when the host terminated with a fatal error.
	ErrFatal = zerr.New("fatal error")
)
