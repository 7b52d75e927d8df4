package masterlog

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Higher values indicate higher priority messages; ReleaseLevel is the highest
// and is emitted regardless of the configured threshold.
type Severity uint32

// Color identifies one of the supported terminal display colors for a source.
// The zero value AutoColor asks the registry to pick an unused color.
type Color uint8

// Source describes a named log source and its display color. It doubles as the
// configuration shape for the Sources field of Config; leaving Color at its
// zero value (AutoColor) assigns the first color not taken by another source.
type Source struct {
	Name  string `toml:"name"`
	Color Color  `toml:"color,omitempty"`
}

// Config carries a partial configuration update for a Logger. Nil pointer and
// empty string fields leave the corresponding setting unchanged, so a Config
// merges into the current state rather than replacing it. A non-nil Sources
// slice replaces the full set of registered sources.
type Config struct {
	Level       *Severity `toml:"level,omitempty"`
	Sources     []Source  `toml:"sources,omitempty"`
	Format      string    `toml:"format,omitempty"`
	DateFormat  string    `toml:"date_format,omitempty"`
	EnableColor *bool     `toml:"enable_color,omitempty"`
	EnableSave  *bool     `toml:"enable_save,omitempty"`
	Filename    string    `toml:"filename,omitempty"`
	BufferLimit *int      `toml:"buffer_limit,omitempty"`
	Enabled     *bool     `toml:"enabled,omitempty"`
}

// Logger represents a logging instance with its configuration settings. It
// owns the source registry, the terminal writer, and the file buffer. All
// exported methods are safe for concurrent use; a single mutex is held for
// the duration of each logging or configuration call.
type Logger struct {
	mu sync.Mutex

	writer     io.Writer          // Terminal destination for rendered lines.
	renderer   *lipgloss.Renderer // Styles bound to the terminal writer's color profile.
	profile    termenv.Profile    // Forced color profile, when hasProfile is set.
	hasProfile bool

	level      Severity // Minimum severity to emit; ReleaseLevel bypasses it.
	format     string   // Line template, see the package documentation for placeholders.
	dateFormat string   // Timestamp layout (Go reference time format).

	sources       map[string]Color // Registered sources and their display colors.
	defaultSource string           // Source used when an emission omits one.

	enabled     bool // Global switch; disabled drops messages before any work.
	enableColor bool // Styling switch for the terminal sink.

	saveEnabled bool     // Whether accepted records are buffered for the file sink.
	filename    string   // Target file for Flush.
	buffer      []string // Rendered lines awaiting a file write.
	bufferLimit int      // Lines beyond this are discarded, not queued.

	closed bool // Set once by Close; later emissions are dropped.
}

// record is the immutable value produced per accepted emission. It exists only
// transiently: rendered into a line and discarded.
type record struct {
	when    time.Time
	level   Severity
	source  string
	message string
	color   Color
}

// Option defines a functional option for configuring a Logger instance during
// creation. Each Option is a function that accepts a pointer to a Logger and
// modifies its configuration.
type Option func(*Logger)
