// Package logger writes run diagnostics to stderr when verbose mode is
// enabled with --verbose. Records may be written to stdout, so nothing
// here ever touches it.
package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

// Level is the severity printed in front of each message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "LEVEL" + strconv.Itoa(int(l))
	}
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log messages. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Log writes one message at level, followed by a newline.
// It does nothing unless verbose mode is enabled.
func Log(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

// Debug logs at LevelDebug.
func Debug(format string, args ...any) {
	Log(LevelDebug, format, args...)
}

// Info logs at LevelInfo.
func Info(format string, args ...any) {
	Log(LevelInfo, format, args...)
}

// Warn logs at LevelWarn.
func Warn(format string, args ...any) {
	Log(LevelWarn, format, args...)
}

// Line logs a debug message about the given 1-based input line.
func Line(line int, format string, args ...any) {
	Log(LevelDebug, "line %d: %s", line, fmt.Sprintf(format, args...))
}

// Section prints a header separating the phases of a run.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
