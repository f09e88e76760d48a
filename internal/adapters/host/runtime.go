// Package host provides the process-wide runtime the autoloader plugs into.
package host

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Runtime)(nil)

type hook struct {
	id string
	fn ports.LoadFunc
}

// Runtime implements ports.Host. Output written during Run is buffered and
// flushed to stdout once the shutdown hooks have run.
type Runtime struct {
	mu       sync.Mutex
	hooks    []hook
	shutdown []func()
	lastErr  *domain.HostError
	buf      bytes.Buffer

	stdout io.Writer
	stderr io.Writer
	exit   func(code int)
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithStdout sets the writer output is flushed to.
func WithStdout(w io.Writer) Option {
	return func(r *Runtime) { r.stdout = w }
}

// WithStderr sets the writer exit messages are printed to.
func WithStderr(w io.Writer) Option {
	return func(r *Runtime) { r.stderr = w }
}

// WithExit replaces os.Exit.
func WithExit(exit func(code int)) Option {
	return func(r *Runtime) { r.exit = exit }
}

// New creates a Runtime bound to the process streams.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register installs hook under id. Re-registering an id replaces the hook in place.
func (r *Runtime) Register(id string, fn ports.LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.hooks[i].fn = fn
		return
	}
	r.hooks = append(r.hooks, hook{id: id, fn: fn})
}

// Unregister removes the hook installed under id.
func (r *Runtime) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.hooks = slices.Delete(r.hooks, i, i+1)
	}
}

func (r *Runtime) indexOf(id string) int {
	return slices.IndexFunc(r.hooks, func(h hook) bool { return h.id == id })
}

// Load asks each hook in registration order to load name.
func (r *Runtime) Load(name string) bool {
	r.mu.Lock()
	hooks := slices.Clone(r.hooks)
	r.mu.Unlock()

	for _, h := range hooks {
		if h.fn(name) {
			return true
		}
	}
	return false
}

// OnShutdown schedules fn to run when Run returns.
func (r *Runtime) OnShutdown(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shutdown = append(r.shutdown, fn)
}

// Run executes fn. A panic is recorded as a fatal error and returned wrapped
// in domain.ErrFatal. Shutdown hooks then run in registration order and the
// output buffer is flushed.
func (r *Runtime) Run(fn func() error) (err error) {
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				file, line := panicLocation()
				msg := panicMessage(rec)
				r.ReportError(domain.HostError{
					Severity: domain.SeverityError,
					Message:  msg,
					File:     file,
					Line:     line,
				})
				err = zerr.With(zerr.Wrap(fmt.Errorf("panic: %s", msg), domain.ErrFatal.Error()), "file", file)
			}
		}()
		err = fn()
	}()

	r.runShutdown()
	r.flush()
	return err
}

func (r *Runtime) runShutdown() {
	r.mu.Lock()
	hooks := r.shutdown
	r.shutdown = nil
	r.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// ReportError records err as the last error.
func (r *Runtime) ReportError(err domain.HostError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastErr = &err
}

// LastError returns a copy of the last recorded error, or nil.
func (r *Runtime) LastError() *domain.HostError {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastErr == nil {
		return nil
	}
	e := *r.lastErr
	return &e
}

// Output returns the buffered output writer.
func (r *Runtime) Output() io.Writer {
	return writerFunc(func(p []byte) (int, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.buf.Write(p)
	})
}

// DiscardOutput drops everything buffered so far.
func (r *Runtime) DiscardOutput() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf.Reset()
}

// Exit prints message to stderr and terminates the process with code.
func (r *Runtime) Exit(code int, message string) {
	if message != "" {
		_, _ = fmt.Fprintln(r.stderr, message)
	}
	r.exit(code)
}

func (r *Runtime) flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = r.buf.WriteTo(r.stdout)
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}

func panicMessage(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(rec)
}

// panicLocation returns the file and line of the frame that panicked.
// It must be called from the deferred function that recovered.
func panicLocation() (string, int) {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	panicking := false
	for {
		frame, more := frames.Next()
		if panicking && !strings.HasPrefix(frame.Function, "runtime.") {
			return frame.File, frame.Line
		}
		if frame.Function == "runtime.gopanic" {
			panicking = true
		}
		if !more {
			return "unknown", 0
		}
	}
}
