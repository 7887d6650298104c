// Package logger writes leveled diagnostic messages to the error stream.
// Colour is used only when the destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level is the minimum severity a Logger emits.
type Level int

// Levels in increasing severity.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name (case-insensitive) to a Level.
// Unknown or empty names default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	color bool
}

// New creates a Logger writing to w. A nil w discards everything.
func New(w io.Writer, level string, noColor bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		w:     w,
		level: ParseLevel(level),
		color: !noColor && isTerminal(w),
	}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return New(io.Discard, "error", true)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Tracef logs per-item detail, such as every file written.
func (l *Logger) Tracef(format string, args ...any) {
	l.log(LevelTrace, "trace: ", color.New(color.Faint), format, args...)
}

// Debugf logs decisions taken along the way.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, "debug: ", color.New(color.Faint), format, args...)
}

// Warnf logs a problem that does not stop the run.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, "warning: ", color.New(color.FgYellow), format, args...)
}

// Errorf logs a failure.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, "error: ", color.New(color.FgRed, color.Bold), format, args...)
}

func (l *Logger) log(level Level, prefix string, c *color.Color, format string, args ...any) {
	if level < l.level {
		return
	}

	if l.color && c != nil {
		// The terminal check already happened; don't let color's own
		// stdout-based detection override it.
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}
