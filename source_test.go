package masterlog

import (
	"bytes"
	"testing"
)

// TestAddSourceResolve covers registration, overwrite-on-duplicate, and
// resolution to the registered color.
func TestAddSourceResolve(t *testing.T) {
	logger := New(new(bytes.Buffer))

	logger.AddSource("X", Red)
	if name, color := logger.resolveSource("X"); name != "X" || color != Red {
		t.Errorf("Expected (X, Red), got (%s, %v)", name, color)
	}

	// Re-adding updates the color in place, no removal needed.
	logger.AddSource("X", Green)
	if _, color := logger.resolveSource("X"); color != Green {
		t.Errorf("Expected Green after re-add, got %v", color)
	}
}

// TestAddSourceAutoColor verifies AutoColor picks unused palette colors in
// declaration order. A fresh logger already holds SYSTEM in cyan.
func TestAddSourceAutoColor(t *testing.T) {
	logger := New(new(bytes.Buffer))

	logger.AddSource("A", AutoColor)
	if _, color := logger.resolveSource("A"); color != Red {
		t.Errorf("Expected first auto color Red, got %v", color)
	}

	logger.AddSource("B", AutoColor)
	if _, color := logger.resolveSource("B"); color != Green {
		t.Errorf("Expected second auto color Green, got %v", color)
	}

	// Out-of-range values behave like AutoColor.
	logger.AddSource("C", Color(200))
	if _, color := logger.resolveSource("C"); color != Yellow {
		t.Errorf("Expected out-of-range color to auto-pick Yellow, got %v", color)
	}
}

// TestAutoColorExhaustion checks Dimmed is used once every color is taken.
func TestAutoColorExhaustion(t *testing.T) {
	logger := New(new(bytes.Buffer))
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		logger.AddSource(name, AutoColor)
	}
	logger.AddSource("G", AutoColor)
	if _, color := logger.resolveSource("G"); color != Dimmed {
		t.Errorf("Expected Dimmed when palette exhausted, got %v", color)
	}
}

// TestRemoveUnknownSourceNoop ensures removing an unregistered source changes
// nothing and does not fail.
func TestRemoveUnknownSourceNoop(t *testing.T) {
	logger := New(new(bytes.Buffer))
	before := len(logger.sources)

	logger.RemoveSource("GHOST")
	if len(logger.sources) != before {
		t.Errorf("Expected registry unchanged, had %d sources, now %d", before, len(logger.sources))
	}
}

// TestRemoveDefaultFallsBack verifies removing the current default source
// reverts the default to the built-in SYSTEM source, and that emissions with
// no source keep working.
func TestRemoveDefaultFallsBack(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, WithColor(false), WithFormat("{source}: {message}"))

	logger.SetDefaultSource("APP", Yellow)
	logger.RemoveSource("APP")

	if logger.defaultSource != DefaultSourceName {
		t.Errorf("Expected default to revert to %s, got %s", DefaultSourceName, logger.defaultSource)
	}

	logger.Error("still works")
	if got, want := buf.String(), "SYSTEM: still works\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestSetDefaultSourceRegistersUnknown ensures SetDefaultSource registers a
// source it has not seen, and that the optional color updates a known one.
func TestSetDefaultSourceRegistersUnknown(t *testing.T) {
	logger := New(new(bytes.Buffer))

	logger.SetDefaultSource("NET")
	if logger.defaultSource != "NET" {
		t.Errorf("Expected default NET, got %s", logger.defaultSource)
	}
	if _, known := logger.sources["NET"]; !known {
		t.Error("Expected NET to be registered by SetDefaultSource")
	}

	logger.SetDefaultSource("NET", Magenta)
	if color := logger.sources["NET"]; color != Magenta {
		t.Errorf("Expected color update to Magenta, got %v", color)
	}
}

// TestResolveUnknownUsesDefault checks an unknown source tag is silently
// substituted with the default source.
func TestResolveUnknownUsesDefault(t *testing.T) {
	logger := New(new(bytes.Buffer))
	logger.SetDefaultSource("CORE", Blue)

	if name, color := logger.resolveSource("NOPE"); name != "CORE" || color != Blue {
		t.Errorf("Expected (CORE, Blue), got (%s, %v)", name, color)
	}
	if name, _ := logger.resolveSource(""); name != "CORE" {
		t.Errorf("Expected empty source to resolve to CORE, got %s", name)
	}
}
