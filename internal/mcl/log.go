package mcl

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func logFilePath() string {
	if v := strings.TrimSpace(os.Getenv("MCL_LOG")); v != "" {
		return v
	}
	return filepath.Join(os.TempDir(), "mcl.log")
}

// openLogger returns a logger appending to the log file. The terminal belongs
// to the UI, so nothing is ever logged to stdout or stderr. If the file cannot
// be opened logging is disabled.
func openLogger(debug bool) (*slog.Logger, func()) {
	path := logFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discardLogger(), func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return discardLogger(), func() {}
	}
	return newLogger(f, debug), func() { _ = f.Close() }
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
