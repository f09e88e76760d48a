package domain

import "fmt"

// Severity classifies an error reported to the host runtime.
type Severity uint8

const (
	// SeverityError is an unrecoverable runtime error, including panics.
	SeverityError Severity = iota + 1
	// SeverityParse is a malformed source file.
	SeverityParse
	// SeverityUserError is a fatal error raised deliberately by user code.
	SeverityUserError
	// SeverityRecoverable is an error the host recovered from.
	SeverityRecoverable
	// SeverityWarning is a non-fatal warning.
	SeverityWarning
	// SeverityNotice is informational.
	SeverityNotice
	// SeverityDeprecated flags use of a deprecated feature.
	SeverityDeprecated
)

// String returns the label used in diagnostics.
func (s Severity) String() string {
	switch s {
	case SeverityError, SeverityUserError:
		return "Error"
	case SeverityParse:
		return "Parse"
	case SeverityRecoverable:
		return "Recoverable"
	case SeverityWarning:
		return "Warning"
	case SeverityNotice:
		return "Notice"
	case SeverityDeprecated:
		return "Deprecated"
	default:
		return "Unknown"
	}
}

// Fatal reports whether the severity terminates the process.
func (s Severity) Fatal() bool {
	return s == SeverityError || s == SeverityParse || s == SeverityUserError
}

// HostError is the last error the host runtime observed.
type HostError struct {
	Severity Severity
	Message  string
	File     string
	Line     int
}

// Fatal reports whether the error terminates the process.
func (e HostError) Fatal() bool {
	return e.Severity.Fatal()
}

// Format renders the log line for the error.
func (e HostError) Format() string {
	return fmt.Sprintf("%s: %s in %s on line %d", e.Severity, e.Message, e.File, e.Line)
}

// Summary renders the short exit message that points at the log.
func (e HostError) Summary() string {
	return fmt.Sprintf("%s: %s - see log", e.Severity, e.Message)
}
