package compiler

import (
	"fmt"
	"io"
	"os"
)

// Logger provides verbose output for parsing and generation.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a new logger instance.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[regast] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[regast] === %s ===\n", name)
	}
}

// Transition logs one step of the pattern state machine.
func (l *Logger) Transition(pos int, r rune, state string) {
	if !l.enabled {
		return
	}
	if r == 0 {
		fmt.Fprintf(l.out, "[regast] %4d  end   %s\n", pos, state)
		return
	}
	fmt.Fprintf(l.out, "[regast] %4d  %-5q %s\n", pos, r, state)
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
