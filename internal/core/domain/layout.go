package domain

import "path/filepath"

const (
	// AutoloadDirName is the name of the internal working directory.
	AutoloadDirName = ".autoload"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "autoload.yaml"

	// SnapshotFileName is the name of the snapshot file.
	SnapshotFileName = "autoload_cache.yaml"

	// LogFileName is the name of the fatal-diagnostic log file.
	LogFileName = "autoload.log"

	// SharedDirName is the name of the shared cache directory below the user cache directory.
	SharedDirName = "autoload"

	// DefaultFunctionsDir is the directory scanned for function files.
	DefaultFunctionsDir = "functions"

	// DefaultFunctionsPrefix is the file name prefix of function files.
	DefaultFunctionsPrefix = "_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSnapshotPath returns the snapshot location below root.
// It joins root, .autoload and autoload_cache.yaml.
func DefaultSnapshotPath(root string) string {
	return filepath.Join(root, AutoloadDirName, SnapshotFileName)
}

// DefaultLogPath returns the log file location below root.
// It joins root, .autoload and autoload.log.
func DefaultLogPath(root string) string {
	return filepath.Join(root, AutoloadDirName, LogFileName)
}
