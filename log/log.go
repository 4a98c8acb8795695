package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	infoLogger  *slog.Logger
	errorLogger *slog.Logger
)

// Init opens info.log and error.log under dir. Until Init or one of the
// Set*Output functions is called every log call is a no-op.
func Init(dir string) error {
	infoFile, err := os.OpenFile(filepath.Join(dir, "info.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open info.log: %w", err)
	}
	errorFile, err := os.OpenFile(filepath.Join(dir, "error.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		infoFile.Close()
		return fmt.Errorf("failed to open error.log: %w", err)
	}
	SetInfoOutput(infoFile)
	SetErrorOutput(errorFile)
	return nil
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	if infoLogger == nil {
		return
	}
	infoLogger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	if errorLogger == nil {
		return
	}
	errorLogger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// Info logs msg with slog key/value pairs
func Info(ctx context.Context, msg string, args ...any) {
	if infoLogger == nil {
		return
	}
	infoLogger.InfoContext(ctx, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	if errorLogger == nil {
		return
	}
	errorLogger.ErrorContext(ctx, msg, args...)
}

// SetInfoOutput sets a custom writer for info logs (useful for testing)
func SetInfoOutput(w io.Writer) {
	infoLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetErrorOutput sets a custom writer for error logs (useful for testing)
func SetErrorOutput(w io.Writer) {
	errorLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Reset turns logging back into a no-op
func Reset() {
	infoLogger = nil
	errorLogger = nil
}
