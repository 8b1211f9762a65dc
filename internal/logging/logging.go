// Package logging configures the application logger.
//
// vatscope owns the terminal while it runs, so log output always goes to a
// rotating file rather than stdout/stderr. The original diagnostic surface
// for the tool is `tail -f` on that file.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup builds a slog.Logger writing to logFile with rotation. Passing "-"
// sends records to stderr instead, with color when stderr is a terminal;
// that path is only sensible when the TUI is not running. The returned close
// func flushes and closes the underlying file.
func Setup(logFile, level string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	if logFile == "-" {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		})
		return slog.New(handler), func() error { return nil }, nil
	}

	logDir := filepath.Dir(logFile)
	if logDir != "" && logDir != "." {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	handler := tint.NewHandler(writer, &tint.Options{
		Level:      lvl,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	})

	return slog.New(handler), writer.Close, nil
}
