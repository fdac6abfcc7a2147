package log

import (
	"github.com/jonboulle/clockwork"
)

// TextOption configures logger made by Default.
type TextOption func(l *TextLogger)

// WithMinLevel skips events below level.
func WithMinLevel(level Level) TextOption {
	return func(l *TextLogger) {
		l.minLevel = level
	}
}

// WithColoring highlights level names with ANSI colors.
func WithColoring() TextOption {
	return func(l *TextLogger) {
		l.coloring = true
	}
}

// WithClock replaces the clock of timestamps
func WithClock(clock clockwork.Clock) TextOption {
	return func(l *TextLogger) {
		l.clock = clock
	}
}
