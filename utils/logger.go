package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// ANSI color codes per level.
const (
	colorInfo  = "\033[32m"
	colorWarn  = "\033[33m"
	colorError = "\033[31m"
	colorDebug = "\033[36m"
	colorReset = "\033[0m"
)

// Logger provides structured, leveled logging throughout the application.
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger creates a new Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return &Logger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "", 0),
	}
}

// NewLoggerTo creates a Logger writing all levels to the given writer.
// Used by tests to keep output quiet.
func NewLoggerTo(w io.Writer) *Logger {
	l := log.New(w, "", 0)
	return &Logger{out: l, err: l}
}

func (l *Logger) printf(dst *log.Logger, color, level, format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	dst.Printf(fmt.Sprintf("[%s] %s%s%s %s", ts, color, level, colorReset, format), args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.printf(l.out, colorInfo, "INFO ", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.printf(l.out, colorWarn, "WARN ", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.printf(l.err, colorError, "ERROR", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.printf(l.out, colorDebug, "DEBUG", format, args...)
}
