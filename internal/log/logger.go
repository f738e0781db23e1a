package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init installs a text slog logger as the default one. It writes to path in
// append mode, or to stdout when path is empty. level is one of "debug",
// "info", "warn" and "error" and defaults to "info".
func Init(path string, level string) error {
	var w io.Writer = os.Stdout

	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}

	slog.SetDefault(New(w, level))
	return nil
}

func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
