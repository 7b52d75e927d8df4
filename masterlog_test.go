package masterlog

import (
	"bytes"
	"strings"
	"testing"
)

// TestShouldEmit exercises the severity gate over every (level, threshold)
// pair: a message passes iff its rank is at or above the threshold, and
// Release always passes.
func TestShouldEmit(t *testing.T) {
	levels := []Severity{DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel, ReleaseLevel}
	for _, level := range levels {
		for _, threshold := range levels {
			want := level >= threshold || level == ReleaseLevel
			if got := shouldEmit(level, threshold); got != want {
				t.Errorf("shouldEmit(%v, %v) = %v, want %v", level, threshold, got, want)
			}
		}
	}
}

// TestSeverityFiltering ensures that messages below the threshold produce no
// output while messages at or above it do.
func TestSeverityFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false), WithLevel(WarningLevel))

	logger.Info("x")
	if buf.Len() != 0 {
		t.Errorf("Expected no output for info below WarningLevel, got: %s", buf.String())
	}

	logger.Error("y")
	if !strings.Contains(buf.String(), "y") {
		t.Errorf("Expected error output containing 'y', got: %s", buf.String())
	}
}

// TestReleaseAlwaysEmitted verifies that Release-level messages bypass the
// threshold entirely.
func TestReleaseAlwaysEmitted(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false), WithLevel(ReleaseLevel))

	logger.Critical("suppressed")
	if buf.Len() != 0 {
		t.Errorf("Expected critical below ReleaseLevel to be suppressed, got: %s", buf.String())
	}

	logger.Log(ReleaseLevel, "shipped")
	if !strings.Contains(buf.String(), "shipped") {
		t.Errorf("Expected release message to be emitted, got: %s", buf.String())
	}
}

// TestDisableEnable ensures Disable drops every emission before any sink
// write and Enable restores output.
func TestDisableEnable(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false), WithFileLogging(""))

	logger.Disable()
	logger.Debug("a")
	logger.Critical("b")
	logger.Log(ReleaseLevel, "c")
	if buf.Len() != 0 {
		t.Errorf("Expected zero terminal writes while disabled, got: %s", buf.String())
	}
	if len(logger.buffer) != 0 {
		t.Errorf("Expected zero buffered lines while disabled, got %d", len(logger.buffer))
	}

	logger.Enable()
	logger.Info("back")
	if !strings.Contains(buf.String(), "back") {
		t.Errorf("Expected output after Enable, got: %s", buf.String())
	}
}

// TestDefaultSourceFallback verifies an emission with no source configured
// renders with the built-in default and does not fail.
func TestDefaultSourceFallback(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false), WithFormat("{source}: {message}"))

	logger.Error("z")
	if got, want := buf.String(), "SYSTEM: z\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestInvalidSeverityDropped ensures out-of-range severities are rejected at
// the facade boundary without output or error.
func TestInvalidSeverityDropped(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false))

	logger.Log(Severity(0), "zero")
	logger.Log(Severity(99), "big")
	if buf.Len() != 0 {
		t.Errorf("Expected no output for invalid severities, got: %s", buf.String())
	}
}

// TestFormattedVariants checks the printf-style helpers format through the
// shared emission path.
func TestFormattedVariants(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false), WithFormat("{levelname}: {message}"))

	logger.Warningf("count=%d", 7)
	if got, want := buf.String(), "WARNING: count=7\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestSetAndGetLevel verifies runtime threshold changes and that values
// outside the defined range are ignored.
func TestSetAndGetLevel(t *testing.T) {
	logger := New(new(bytes.Buffer))

	logger.SetLevel(WarningLevel)
	if got := logger.GetLevel(); got != WarningLevel {
		t.Errorf("Expected level %v, got %v", WarningLevel, got)
	}

	logger.SetLevel(Severity(42))
	if got := logger.GetLevel(); got != WarningLevel {
		t.Errorf("Expected level to remain %v after invalid update, got %v", WarningLevel, got)
	}
}

// TestDefaultLoggerRouting redirects the package-level Default logger into a
// buffer and checks the package functions delegate to it.
func TestDefaultLoggerRouting(t *testing.T) {
	buf := new(bytes.Buffer)
	previous := Default.Writer()
	if ok := Default.UpdateWriter(buf); !ok {
		t.Fatal("Expected UpdateWriter to accept a buffer")
	}
	defer Default.UpdateWriter(previous)

	Info("through the default")
	if !strings.Contains(buf.String(), "through the default") {
		t.Errorf("Expected package-level Info output, got: %s", buf.String())
	}
}

// TestUpdateWriter covers writer swapping on an instance.
func TestUpdateWriter(t *testing.T) {
	t.Run("update to new writer", func(t *testing.T) {
		first := new(bytes.Buffer)
		second := new(bytes.Buffer)
		logger := New(first, WithColor(false))

		if ok := logger.UpdateWriter(second); !ok {
			t.Fatal("Expected UpdateWriter to succeed")
		}
		logger.Info("rerouted")
		if first.Len() != 0 {
			t.Errorf("Expected no output on the old writer, got: %s", first.String())
		}
		if !strings.Contains(second.String(), "rerouted") {
			t.Errorf("Expected output on the new writer, got: %s", second.String())
		}
	})

	t.Run("update to nil writer", func(t *testing.T) {
		logger := New(new(bytes.Buffer))
		if ok := logger.UpdateWriter(nil); ok {
			t.Error("Expected UpdateWriter to reject nil writer")
		}
	})
}

// TestNilWriterFallsBack ensures New with a nil writer does not panic and
// produces a usable logger.
func TestNilWriterFallsBack(t *testing.T) {
	logger := New(nil, WithLevel(ReleaseLevel))
	if logger.writer == nil {
		t.Fatal("Expected nil writer to fall back to a usable destination")
	}
	// Threshold at Release: this must be a silent no-op, not a crash.
	logger.Debug("quiet")
}
