// Package logger provides leveled logging for pulsegif commands. Frame
// generation is silent by default; debug output is opted into with the
// PULSEGIF_DEBUG environment variable.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// DebugEnvVar enables per-frame debug output when set to any value.
const DebugEnvVar = "PULSEGIF_DEBUG"

// Logger is the logging interface passed into the scenario driver.
// Methods take fmt.Printf-style format strings.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes to a single destination, tagging each line with its
// prefix. Debug lines are dropped unless PULSEGIF_DEBUG was set when the
// logger was built.
type envLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
	debug  bool
}

// NewEnvLogger creates a stderr logger with the given prefix, e.g.
// "[generate]". The PULSEGIF_DEBUG check happens once, at construction.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{
		out:    os.Stderr,
		prefix: prefix,
		debug:  os.Getenv(DebugEnvVar) != "",
	}
}

func (l *envLogger) write(tag, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, l.prefix+tag+format+"\n", args...)
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.write(" ", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.write(" ", format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.write(" WARN: ", format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.write(" ERROR: ", format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards everything. Used for --quiet and
// --json runs where human log lines would corrupt the output.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one captured entry in a BufferLogger.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages so tests can assert on what was logged.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates an empty capturing logger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record("debug", format, args...)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record("info", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record("warn", format, args...)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record("error", format, args...)
}

// HasLevel reports whether any message was captured at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains reports whether any captured message includes the substring.
func (l *BufferLogger) Contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}
