package masterlog

// AddSource registers a new source under name with the given display color.
// Re-adding an existing name overwrites its color; duplicates are never an
// error. Passing AutoColor (or any value outside the palette) assigns the
// first color not already taken by another source, Dimmed when every color
// is in use.
func (l *Logger) AddSource(name string, color Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.addSource(name, color)
}

// RemoveSource unregisters a source. Removing an unknown name is a no-op.
// If the removed source was the default, the default reverts to the built-in
// SYSTEM source, which is re-registered if necessary.
func (l *Logger) RemoveSource(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeSource(name)
}

// SetDefaultSource marks name as the default source, registering it first if
// it is unknown. An optional color updates the registration.
func (l *Logger) SetDefaultSource(name string, color ...Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if name == "" {
		return
	}
	if _, known := l.sources[name]; !known {
		l.addSource(name, firstColor(color))
	} else if len(color) > 0 {
		l.addSource(name, color[0])
	}
	l.defaultSource = name
}

func (l *Logger) addSource(name string, color Color) {
	if name == "" {
		return
	}
	if color == AutoColor || color > Dimmed {
		color = l.pickColor()
	}
	l.sources[name] = color
}

func (l *Logger) removeSource(name string) {
	if _, known := l.sources[name]; !known {
		return
	}
	delete(l.sources, name)
	if name == l.defaultSource {
		if _, known := l.sources[DefaultSourceName]; !known {
			l.sources[DefaultSourceName] = Cyan
		}
		l.defaultSource = DefaultSourceName
	}
}

// resolveSource maps an emission's source argument to a usable (name, color)
// pair. Known names resolve to their registered color; an empty or unknown
// name resolves to the default source. It never fails.
func (l *Logger) resolveSource(name string) (string, Color) {
	if name != "" {
		if color, ok := l.sources[name]; ok {
			return name, color
		}
	}
	if color, ok := l.sources[l.defaultSource]; ok {
		return l.defaultSource, color
	}
	return DefaultSourceName, Cyan
}

// pickColor returns the first palette color no registered source is using,
// scanning in declaration order, or Dimmed when the palette is exhausted.
func (l *Logger) pickColor() Color {
	taken := make(map[Color]bool, len(l.sources))
	for _, c := range l.sources {
		taken[c] = true
	}
	for c := Red; c <= Dimmed; c++ {
		if !taken[c] {
			return c
		}
	}
	return Dimmed
}

func firstColor(color []Color) Color {
	if len(color) > 0 {
		return color[0]
	}
	return AutoColor
}
