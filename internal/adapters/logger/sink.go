package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.LogSink        = (*FileSink)(nil)
	_ ports.LogSink        = (*ConsoleSink)(nil)
	_ ports.LogSinkFactory = (*SinkFactory)(nil)
)

// FileSink appends timestamped diagnostics to a log file. When the file
// cannot be written the message goes to the fallback logger.
type FileSink struct {
	mu       sync.Mutex
	path     string
	fallback ports.Logger
	now      func() time.Time
}

// NewFileSink creates a FileSink for path.
func NewFileSink(path string, fallback ports.Logger) *FileSink {
	return &FileSink{path: path, fallback: fallback, now: time.Now}
}

// Write appends message to the log file.
func (s *FileSink) Write(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.append(message); err != nil {
		s.fallback.Error(err)
		s.fallback.Error(errors.New(message))
	}
}

func (s *FileSink) append(message string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Log path comes from trusted configuration
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", s.path)
	}

	_, werr := fmt.Fprintf(f, "[%s] %s\n", s.now().UTC().Format(time.RFC3339), message)
	cerr := f.Close()
	return errors.Join(werr, cerr)
}

// ConsoleSink writes diagnostics through a logger.
type ConsoleSink struct {
	logger ports.Logger
}

// NewConsoleSink creates a ConsoleSink.
func NewConsoleSink(logger ports.Logger) *ConsoleSink {
	return &ConsoleSink{logger: logger}
}

// Write logs message as an error.
func (s *ConsoleSink) Write(message string) {
	s.logger.Error(errors.New(message))
}

// SinkFactory selects the diagnostic sink for a logging mode.
type SinkFactory struct {
	logger ports.Logger
}

// NewSinkFactory creates a SinkFactory that falls back to logger.
func NewSinkFactory(logger ports.Logger) *SinkFactory {
	return &SinkFactory{logger: logger}
}

// For returns a file sink when logging is enabled and a console sink otherwise.
func (f *SinkFactory) For(logging domain.Logging) ports.LogSink {
	if logging.ToFile() {
		return NewFileSink(logging.File, f.logger)
	}
	return NewConsoleSink(f.logger)
}
