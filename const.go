package masterlog

import (
	"fmt"
	"os"
	"strings"
)

// Predefined severity levels for logging. Values are ordered by rank; the
// zero value is not a valid severity.
const (
	// DebugLevel represents debug-level messages for development diagnostics
	DebugLevel Severity = iota + 1

	// InfoLevel indicates normal operational messages for tracking progress
	InfoLevel

	// WarningLevel signifies potential issues that don't disrupt core functionality
	WarningLevel

	// ErrorLevel denotes failures in specific operations or components
	ErrorLevel

	// CriticalLevel represents severe errors demanding immediate attention
	CriticalLevel

	// ReleaseLevel is emitted regardless of the configured threshold
	ReleaseLevel
)

// Supported source display colors. AutoColor, the zero value, defers the
// choice to the registry, which assigns the first color no other source uses.
const (
	AutoColor Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Dimmed
)

// Built-in defaults applied by New before options run.
const (
	DefaultSourceName  = "SYSTEM"
	DefaultFormat      = "{asctime} {source} : {levelname} -> {message}"
	DefaultDateFormat  = "15:04:05"
	DefaultFilename    = "system.log"
	DefaultBufferLimit = 1000
)

var severityNames = map[Severity]string{
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarningLevel:  "WARNING",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	ReleaseLevel:  "RELEASE",
}

var colorNames = map[Color]string{
	AutoColor: "AUTO",
	Red:       "RED",
	Green:     "GREEN",
	Yellow:    "YELLOW",
	Blue:      "BLUE",
	Magenta:   "MAGENTA",
	Cyan:      "CYAN",
	Dimmed:    "DIMMED",
}

// String returns the uppercase name of the severity, or "UNKNOWN" for values
// outside the defined range.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseSeverity converts a case-insensitive severity name ("DEBUG", "INFO",
// "WARNING", "ERROR", "CRITICAL", "RELEASE") into its Severity value.
func ParseSeverity(name string) (Severity, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for level, n := range severityNames {
		if n == upper {
			return level, nil
		}
	}
	return 0, fmt.Errorf("masterlog: unknown severity %q", name)
}

// MarshalText implements encoding.TextMarshaler so severities appear by name
// in configuration files.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same names
// as ParseSeverity.
func (s *Severity) UnmarshalText(text []byte) error {
	level, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = level
	return nil
}

// String returns the uppercase name of the color, or "UNKNOWN" for values
// outside the defined range.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseColor converts a case-insensitive color name into its Color value.
// "AUTO" is accepted and maps to AutoColor.
func ParseColor(name string) (Color, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for color, n := range colorNames {
		if n == upper {
			return color, nil
		}
	}
	return 0, fmt.Errorf("masterlog: unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler so colors appear by name in
// configuration files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same names
// as ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = color
	return nil
}

// Default is a pre-configured Logger instance intended for general use.
// It writes to os.Stdout, logs everything from DebugLevel up, and starts with
// the built-in SYSTEM source as its default.
var Default = New(os.Stdout)
