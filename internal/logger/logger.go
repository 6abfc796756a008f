package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled lines through the standard log package.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

// New creates a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{
		info:  log.New(w, "INFO: ", log.LstdFlags),
		warn:  log.New(w, "WARN: ", log.LstdFlags),
		error: log.New(w, "ERROR: ", log.LstdFlags),
	}
}

// Default logs to stderr.
func Default() *Logger {
	return New(os.Stderr)
}

// Discard drops everything; used in tests.
func Discard() *Logger {
	return New(io.Discard)
}

func (l *Logger) Infof(format string, args ...any) {
	l.info.Printf(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warn.Printf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.error.Printf(format, args...)
}
