// Package masterlog provides a lightweight logging library with ordered
// severity levels, named and colorized sources, template-driven formatting,
// and optional buffered file output.
//
// Key features:
//   - Six severity levels (Debug, Info, Warning, Error, Critical, Release)
//   - Source tags with per-source terminal colors and a runtime default
//   - Customizable line template and timestamp format
//   - Dual sinks: immediate colorized terminal output and a buffered file
//     sink flushed on demand or at Close
//   - Package-level default logger and configurable instances
//
// The line template recognizes the placeholders {asctime}, {source},
// {levelname}, and {message}; unrecognized placeholders are left verbatim.
// Logging never fails the host program: terminal write errors are swallowed
// and file flush errors are returned for retry, never raised on the
// emission path.
package masterlog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
)

// New creates a new Logger writing terminal output to writer, configured with
// built-in defaults and then the provided options. A nil writer falls back to
// os.Stdout. The logger starts enabled, at DebugLevel, with the built-in
// SYSTEM source (cyan) as its default source and file logging off.
func New(writer io.Writer, opts ...Option) *Logger {
	if writer == nil {
		writer = os.Stdout
	}
	l := &Logger{
		writer:        writer,
		level:         DebugLevel,
		format:        DefaultFormat,
		dateFormat:    DefaultDateFormat,
		sources:       map[string]Color{DefaultSourceName: Cyan},
		defaultSource: DefaultSourceName,
		enabled:       true,
		enableColor:   true,
		filename:      DefaultFilename,
		bufferLimit:   DefaultBufferLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.renderer = l.newRenderer(l.writer)
	return l
}

// WithLevel returns an Option that sets the minimum severity to emit.
// Values outside the defined range are ignored.
func WithLevel(level Severity) Option {
	return func(l *Logger) {
		if level >= DebugLevel && level <= ReleaseLevel {
			l.level = level
		}
	}
}

// WithFormat returns an Option that sets the line template.
//
// Example:
//
//	logger := New(os.Stdout, WithFormat("{levelname}: {message}"))
func WithFormat(format string) Option {
	return func(l *Logger) {
		if format != "" {
			l.format = format
		}
	}
}

// WithDateFormat returns an Option that sets the timestamp layout used for
// the {asctime} placeholder, in Go's reference time format
// (Mon Jan 2 15:04:05 MST 2006).
func WithDateFormat(format string) Option {
	return func(l *Logger) {
		if format != "" {
			l.dateFormat = format
		}
	}
}

// WithSource returns an Option that registers a source at construction.
// AutoColor picks the first unused palette color.
func WithSource(name string, color Color) Option {
	return func(l *Logger) {
		l.addSource(name, color)
	}
}

// WithDefaultSource returns an Option that registers a source (if needed) and
// marks it as the default used when emissions omit one.
func WithDefaultSource(name string, color ...Color) Option {
	return func(l *Logger) {
		if name == "" {
			return
		}
		if _, known := l.sources[name]; !known || len(color) > 0 {
			l.addSource(name, firstColor(color))
		}
		l.defaultSource = name
	}
}

// WithColor returns an Option that toggles styled terminal output. Even when
// enabled, styling degrades to plain text on writers that are not terminals.
func WithColor(enabled bool) Option {
	return func(l *Logger) {
		l.enableColor = enabled
	}
}

// WithFileLogging returns an Option that enables the buffered file sink,
// targeting filename (DefaultFilename when empty).
func WithFileLogging(filename string) Option {
	return func(l *Logger) {
		l.saveEnabled = true
		if filename != "" {
			l.filename = filename
		}
	}
}

// WithBufferLimit returns an Option that caps the file buffer at limit lines.
// Non-positive limits are ignored.
func WithBufferLimit(limit int) Option {
	return func(l *Logger) {
		if limit > 0 {
			l.bufferLimit = limit
		}
	}
}

// WithColorProfile returns an Option that pins the terminal color profile
// instead of detecting it from the writer. Useful for tests and for forcing
// color through pipes.
func WithColorProfile(profile termenv.Profile) Option {
	return func(l *Logger) {
		l.profile = profile
		l.hasProfile = true
	}
}

// shouldEmit reports whether a message at level passes the threshold.
// ReleaseLevel always passes. Pure function; invalid severities are rejected
// at the facade boundary, not here.
func shouldEmit(level, threshold Severity) bool {
	return level >= threshold || level == ReleaseLevel
}

// Log is the shared emission path. The message is dropped without any work
// when the logger is closed or disabled, when level is outside the defined
// range, or when level is below the threshold (Release always passes). The
// optional source tag resolves through the registry, falling back to the
// default source when omitted or unknown. The rendered line goes to the
// terminal sink immediately and, when file logging is on, a plain rendering
// is buffered for the file sink.
func (l *Logger) Log(level Severity, message string, source ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || !l.enabled {
		return
	}
	if level < DebugLevel || level > ReleaseLevel {
		return
	}
	if !shouldEmit(level, l.level) {
		return
	}

	name, color := l.resolveSource(firstSource(source))
	rec := record{
		when:    time.Now(),
		level:   level,
		source:  name,
		message: message,
		color:   color,
	}
	line := l.render(rec, l.enableColor)
	l.writeTerminal(line)
	if l.saveEnabled {
		if l.enableColor {
			line = l.render(rec, false)
		}
		l.bufferLine(line)
	}
}

// Debug logs a message at DebugLevel. The optional source tag selects a
// registered source; omitted or unknown tags use the current default source.
func (l *Logger) Debug(message string, source ...string) {
	l.Log(DebugLevel, message, source...)
}

// Debugf logs a formatted message at DebugLevel using the default source.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs a message at InfoLevel. The optional source tag selects a
// registered source; omitted or unknown tags use the current default source.
func (l *Logger) Info(message string, source ...string) {
	l.Log(InfoLevel, message, source...)
}

// Infof logs a formatted message at InfoLevel using the default source.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warning logs a message at WarningLevel. The optional source tag selects a
// registered source; omitted or unknown tags use the current default source.
func (l *Logger) Warning(message string, source ...string) {
	l.Log(WarningLevel, message, source...)
}

// Warningf logs a formatted message at WarningLevel using the default source.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Log(WarningLevel, fmt.Sprintf(format, args...))
}

// Error logs a message at ErrorLevel. The optional source tag selects a
// registered source; omitted or unknown tags use the current default source.
func (l *Logger) Error(message string, source ...string) {
	l.Log(ErrorLevel, message, source...)
}

// Errorf logs a formatted message at ErrorLevel using the default source.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Critical logs a message at CriticalLevel. The optional source tag selects a
// registered source; omitted or unknown tags use the current default source.
func (l *Logger) Critical(message string, source ...string) {
	l.Log(CriticalLevel, message, source...)
}

// Criticalf logs a formatted message at CriticalLevel using the default source.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Log(CriticalLevel, fmt.Sprintf(format, args...))
}

// Enable turns logging back on after a Disable.
func (l *Logger) Enable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = true
}

// Disable turns logging off. Subsequent emissions return before any
// filtering or formatting work until Enable is called. Orthogonal to file
// logging: a pending buffer stays flushable.
func (l *Logger) Disable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
}

// SetLevel changes the minimum severity to emit at runtime. Values outside
// the defined range are ignored.
func (l *Logger) SetLevel(level Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level >= DebugLevel && level <= ReleaseLevel {
		l.level = level
	}
}

// GetLevel returns the current minimum severity.
func (l *Logger) GetLevel() Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func firstSource(source []string) string {
	if len(source) > 0 {
		return source[0]
	}
	return ""
}

// Debug logs a message at DebugLevel using the package-level Default logger.
func Debug(message string, source ...string) {
	Default.Debug(message, source...)
}

// Debugf logs a formatted message at DebugLevel using the Default logger.
func Debugf(format string, args ...interface{}) {
	Default.Debugf(format, args...)
}

// Info logs a message at InfoLevel using the package-level Default logger.
func Info(message string, source ...string) {
	Default.Info(message, source...)
}

// Infof logs a formatted message at InfoLevel using the Default logger.
func Infof(format string, args ...interface{}) {
	Default.Infof(format, args...)
}

// Warning logs a message at WarningLevel using the package-level Default logger.
func Warning(message string, source ...string) {
	Default.Warning(message, source...)
}

// Warningf logs a formatted message at WarningLevel using the Default logger.
func Warningf(format string, args ...interface{}) {
	Default.Warningf(format, args...)
}

// Error logs a message at ErrorLevel using the package-level Default logger.
func Error(message string, source ...string) {
	Default.Error(message, source...)
}

// Errorf logs a formatted message at ErrorLevel using the Default logger.
func Errorf(format string, args ...interface{}) {
	Default.Errorf(format, args...)
}

// Critical logs a message at CriticalLevel using the package-level Default logger.
func Critical(message string, source ...string) {
	Default.Critical(message, source...)
}

// Criticalf logs a formatted message at CriticalLevel using the Default logger.
func Criticalf(format string, args ...interface{}) {
	Default.Criticalf(format, args...)
}

// Log emits a message at an arbitrary severity using the Default logger.
// Release-level always-on emission goes through Log(ReleaseLevel, ...).
func Log(level Severity, message string, source ...string) {
	Default.Log(level, message, source...)
}

// Configure applies a partial configuration update to the Default logger.
func Configure(cfg Config) error {
	return Default.Configure(cfg)
}

// AddSource registers a source on the Default logger.
func AddSource(name string, color Color) {
	Default.AddSource(name, color)
}

// RemoveSource unregisters a source on the Default logger.
func RemoveSource(name string) {
	Default.RemoveSource(name)
}

// SetDefaultSource sets the Default logger's default source.
func SetDefaultSource(name string, color ...Color) {
	Default.SetDefaultSource(name, color...)
}

// Enable turns the Default logger back on.
func Enable() {
	Default.Enable()
}

// Disable turns the Default logger off.
func Disable() {
	Default.Disable()
}

// Flush writes the Default logger's buffered lines to its configured file.
func Flush() error {
	return Default.Flush()
}

// Close flushes and shuts down the Default logger. Defer it from main so
// buffered records survive a graceful exit.
func Close() error {
	return Default.Close()
}
