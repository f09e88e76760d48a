package ports

import (
	"io"

	"go.trai.ch/autoload/internal/core/domain"
)

// LoadFunc is a name-resolution hook. It reports whether name was loaded.
type LoadFunc func(name string) bool

// Host is the process-wide runtime the autoloader plugs into.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// Register installs a named resolution hook.
	Register(id string, hook LoadFunc)
	// Unregister removes the hook installed under id.
	Unregister(id string)
	// Load asks the installed hooks, in order, to load name.
	Load(name string) bool

	// OnShutdown schedules fn to run once when the process ends.
	OnShutdown(fn func())
	// Run executes fn, records a panic as a fatal error, then runs the
	// shutdown hooks and flushes the output buffer.
	Run(fn func() error) error

	// ReportError records err as the last error.
	ReportError(err domain.HostError)
	// LastError returns the last recorded error, or nil.
	LastError() *domain.HostError

	// Output returns the buffered output writer.
	Output() io.Writer
	// DiscardOutput drops everything buffered so far.
	DiscardOutput()
	// Exit prints message and terminates the process with code.
	Exit(code int, message string)
}
