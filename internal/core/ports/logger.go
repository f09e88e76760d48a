package ports

import "go.trai.ch/autoload/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogSink receives fatal-error diagnostics.
type LogSink interface {
	Write(message string)
}

// LogSinkFactory selects the diagnostic sink for a logging mode.
type LogSinkFactory interface {
	For(logging domain.Logging) LogSink
}
