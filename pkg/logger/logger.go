// Package logger provides the process-wide diagnostic logger for xcuikit.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var (
	globalLogger *slog.Logger
	logFile      *os.File
	output       io.Writer = io.Discard
	mu           sync.Mutex
)

// Init initializes the global logger with the specified log file path.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	// Close previous log file if exists
	closeFile()

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //#nosec G304 -- user-provided log path
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	output = f
	globalLogger = slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000000",
		NoColor:    true,
	}))

	return nil
}

// InitConsole logs to w (usually stderr). Debug messages are only emitted
// when verbose is set.
func InitConsole(w io.Writer, verbose, noColor bool) {
	mu.Lock()
	defer mu.Unlock()

	closeFile()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	output = w
	globalLogger = slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// Close closes the log file and stops logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	globalLogger = nil
	output = io.Discard
}

func closeFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func logf(level slog.Level, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		return
	}
	ctx := context.Background()
	if !globalLogger.Enabled(ctx, level) {
		return
	}
	globalLogger.Log(ctx, level, fmt.Sprintf(format, v...))
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	logf(slog.LevelInfo, format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	logf(slog.LevelDebug, format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	logf(slog.LevelError, format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	logf(slog.LevelWarn, format, v...)
}

// GetWriter returns the underlying writer.
func GetWriter() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	return output
}
