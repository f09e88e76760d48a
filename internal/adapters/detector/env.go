// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is the rendering format of log output.
type LogFormat int

const (
	// FormatAuto detects the format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// String returns the flag value of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended log format. Interactive
// terminals get pretty output; pipes and CI runs get JSON.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	if !isTTY || IsCI() {
		return FormatJSON
	}
	return FormatPretty
}

// IsCI reports whether the CI environment variable marks a CI run.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveFormat applies the --log-format flag to the detected format.
// userFlag should be one of "auto", "pretty", "json" or empty.
func ResolveFormat(detected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return detected
	}
}
