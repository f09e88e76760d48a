// export_test.go exports private functions for white-box testing.
package logger

import (
	"time"

	"go.trai.ch/autoload/internal/core/ports"
)

// Error formatting helpers exported for testing.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)

// NewFileSinkWithClock creates a FileSink that reads the current time from now.
func NewFileSinkWithClock(path string, fallback ports.Logger, now func() time.Time) *FileSink {
	return &FileSink{path: path, fallback: fallback, now: now}
}
