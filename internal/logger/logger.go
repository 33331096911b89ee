// Package logger provides the leveled logger used across the assistant.
// Three levels: off, normal (info and up), verbose (adds debug). Safe
// for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level controls verbosity.
type Level int

const (
	// LevelOff disables all output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables everything including debug.
	LevelVerbose
)

// Logger writes timestamped, tagged lines to a single output.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

// New creates a logger at the given level. A nil out means os.Stderr.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{level: level, out: out}
}

// SetLevel changes the level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) write(min Level, tag, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < min {
		return
	}
	ts := time.Now().Format("15:04:05")
	fmt.Fprintf(l.out, "%s %s %s\n", tag, ts, fmt.Sprintf(format, args...))
}

// Debug logs at debug level (verbose mode only).
func (l *Logger) Debug(format string, args ...any) {
	l.write(LevelVerbose, "[DBG]", format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.write(LevelNormal, "[INF]", format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.write(LevelNormal, "[WRN]", format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.write(LevelNormal, "[ERR]", format, args...)
}
