package masterlog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Template placeholders recognized by render. Anything else between braces is
// left verbatim so a typo in a user template degrades the line, not the call.
const (
	tokenTime    = "asctime"
	tokenSource  = "source"
	tokenLevel   = "levelname"
	tokenMessage = "message"
)

// render substitutes the record's fields into the logger's template. With
// styled set, the source and level tokens are wrapped in their terminal
// styles; the plain form is used for file output. Deterministic for a given
// record, template, and date format.
func (l *Logger) render(rec record, styled bool) string {
	var b strings.Builder
	b.Grow(len(l.format) + len(rec.message) + 32)

	format := l.format
	for {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			b.WriteString(format)
			break
		}
		end := strings.IndexByte(format[open:], '}')
		if end < 0 {
			b.WriteString(format)
			break
		}
		end += open
		b.WriteString(format[:open])
		switch token := format[open+1 : end]; token {
		case tokenTime:
			b.WriteString(rec.when.Format(l.dateFormat))
		case tokenSource:
			if styled {
				b.WriteString(l.styleSource(rec.source, rec.color))
			} else {
				b.WriteString(rec.source)
			}
		case tokenLevel:
			if styled {
				b.WriteString(l.styleLevel(rec.level))
			} else {
				b.WriteString(rec.level.String())
			}
		case tokenMessage:
			b.WriteString(rec.message)
		default:
			// Unknown placeholder: keep it, braces included.
			b.WriteString(format[open : end+1])
		}
		format = format[end+1:]
	}
	return b.String()
}

// styleSource renders a source name in its display color, bold.
func (l *Logger) styleSource(name string, color Color) string {
	return color.style(l.renderer).Bold(true).Render(name)
}

// styleLevel renders a severity label in its conventional color: critical
// red and bold, error red, warning yellow, info green, debug faint. Release
// carries no style of its own.
func (l *Logger) styleLevel(level Severity) string {
	s := l.renderer.NewStyle()
	switch level {
	case CriticalLevel:
		s = s.Foreground(lipgloss.Color("1")).Bold(true)
	case ErrorLevel:
		s = s.Foreground(lipgloss.Color("1"))
	case WarningLevel:
		s = s.Foreground(lipgloss.Color("3"))
	case InfoLevel:
		s = s.Foreground(lipgloss.Color("2"))
	case DebugLevel:
		s = s.Faint(true)
	}
	return s.Render(level.String())
}

// style maps a palette color to a lipgloss style bound to the given renderer.
// AutoColor never reaches here for registered sources; it styles as plain
// text, as does any out-of-range value.
func (c Color) style(r *lipgloss.Renderer) lipgloss.Style {
	s := r.NewStyle()
	switch c {
	case Red:
		return s.Foreground(lipgloss.Color("1"))
	case Green:
		return s.Foreground(lipgloss.Color("2"))
	case Yellow:
		return s.Foreground(lipgloss.Color("3"))
	case Blue:
		return s.Foreground(lipgloss.Color("4"))
	case Magenta:
		return s.Foreground(lipgloss.Color("5"))
	case Cyan:
		return s.Foreground(lipgloss.Color("6"))
	case Dimmed:
		return s.Faint(true)
	}
	return s
}
