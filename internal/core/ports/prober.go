package ports

// FileProber answers filesystem questions asked during a scan.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type FileProber interface {
	// IsFile reports whether path exists and is a regular file.
	// Missing directories and permission errors report false.
	IsFile(path string) bool

	// Glob returns the files matching pattern.
	Glob(pattern string) ([]string, error)
}
