package masterlog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// writeTerminal emits a rendered line to the terminal writer immediately.
// Write failures are swallowed: logging degrades to no terminal output
// rather than surfacing an error on the caller's emission path.
func (l *Logger) writeTerminal(line string) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, _ = io.WriteString(l.writer, line)
}

// bufferLine queues a plain rendered line for the file sink. When the buffer
// is at its limit the line is discarded so emission stays cheap under burst.
func (l *Logger) bufferLine(line string) {
	if len(l.buffer) >= l.bufferLimit {
		return
	}
	l.buffer = append(l.buffer, line)
}

// Flush writes all buffered lines to the configured file in append mode and
// clears the buffer. On any error the buffer is preserved so a later Flush
// can retry; the error is returned and never reaches an emission call.
// Flushing an empty buffer is a no-op.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flush()
}

func (l *Logger) flush() error {
	if len(l.buffer) == 0 {
		return nil
	}
	f, err := os.OpenFile(l.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("masterlog: open %s: %w", l.filename, err)
	}
	defer f.Close()

	var b strings.Builder
	for _, line := range l.buffer {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(f, b.String()); err != nil {
		return fmt.Errorf("masterlog: write %s: %w", l.filename, err)
	}
	l.buffer = l.buffer[:0]
	return nil
}

// SetFileLogging toggles whether future records are buffered for file output.
// A non-empty filename also retargets the file sink. Switching file logging
// off does not discard a pending buffer; it remains flushable.
func (l *Logger) SetFileLogging(enabled bool, filename string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.saveEnabled = enabled
	if filename != "" {
		l.filename = filename
	}
}

// Close flushes any buffered lines and shuts the logger down. It runs its
// teardown exactly once: later calls return nil, and emissions after Close
// are dropped. Intended to be deferred next to New so buffered records
// survive a graceful exit.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.flush()
}

// Writer returns the current terminal writer.
func (l *Logger) Writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writer
}

// UpdateWriter swaps the terminal writer for w and rebinds the style renderer
// to it. A nil writer is rejected. Returns true when the writer was updated.
func (l *Logger) UpdateWriter(w io.Writer) bool {
	if w == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
	l.renderer = l.newRenderer(w)
	return true
}

// newRenderer builds a lipgloss renderer for w, honoring a forced color
// profile when one was set through WithColorProfile. Without one, the
// renderer detects the writer's capabilities and degrades to plain text on
// non-terminal outputs.
func (l *Logger) newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if l.hasProfile {
		// The renderer's styling profile must be pinned directly; the
		// termenv output options only reach the underlying output, not
		// the profile the styles render with.
		r.SetColorProfile(l.profile)
	}
	return r
}
