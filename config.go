package masterlog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Configure applies a partial configuration update. Only fields that are set
// (non-nil pointers, non-empty strings, non-nil Sources) change the logger;
// everything else keeps its prior value. The update is atomic: it is
// validated first, and on error no field is touched.
//
// A non-nil Sources slice replaces the registered source set: listed sources
// are registered (AutoColor entries get an unused color) and previously
// registered sources missing from the list are removed. If that removes the
// current default, the default reverts to the built-in SYSTEM source.
func (l *Logger) Configure(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cfg.Level != nil && (*cfg.Level < DebugLevel || *cfg.Level > ReleaseLevel) {
		return fmt.Errorf("masterlog: invalid severity level %d", *cfg.Level)
	}
	if cfg.BufferLimit != nil && *cfg.BufferLimit < 0 {
		return fmt.Errorf("masterlog: invalid buffer limit %d", *cfg.BufferLimit)
	}
	for _, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("masterlog: source with empty name")
		}
	}

	if cfg.Level != nil {
		l.level = *cfg.Level
	}
	if cfg.Format != "" {
		l.format = cfg.Format
	}
	if cfg.DateFormat != "" {
		l.dateFormat = cfg.DateFormat
	}
	if cfg.EnableColor != nil {
		l.enableColor = *cfg.EnableColor
	}
	if cfg.EnableSave != nil {
		l.saveEnabled = *cfg.EnableSave
	}
	if cfg.Filename != "" {
		l.filename = cfg.Filename
	}
	if cfg.BufferLimit != nil {
		l.bufferLimit = *cfg.BufferLimit
	}
	if cfg.Enabled != nil {
		l.enabled = *cfg.Enabled
	}
	if cfg.Sources != nil {
		l.replaceSources(cfg.Sources)
	}
	return nil
}

// replaceSources swaps the registry for the given set, removing anything no
// longer listed. Removal of the current default falls back through
// removeSource to the built-in SYSTEM source.
func (l *Logger) replaceSources(sources []Source) {
	keep := make(map[string]bool, len(sources))
	for _, src := range sources {
		l.addSource(src.Name, src.Color)
		keep[src.Name] = true
	}
	var stale []string
	for name := range l.sources {
		if !keep[name] {
			stale = append(stale, name)
		}
	}
	for _, name := range stale {
		l.removeSource(name)
	}
}

// LoadConfig reads a TOML configuration file into a Config. Severities and
// colors are written by name, for example:
//
//	level = "WARNING"
//	format = "{asctime} {source} : {levelname} -> {message}"
//	enable_save = true
//	filename = "app.log"
//
//	[[sources]]
//	name = "APP"
//	color = "GREEN"
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("masterlog: read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("masterlog: parse config: %w", err)
	}
	return cfg, nil
}

// ConfigureFromFile loads a TOML configuration file and applies it with
// Configure's merge semantics.
func (l *Logger) ConfigureFromFile(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return l.Configure(cfg)
}
