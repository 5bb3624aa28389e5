package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var logger = slog.Default()

// ParseLevel converts a level name to a slog level. Unknown or empty names
// give INFO.
func ParseLevel(level string) slog.Level {
	var lv slog.Level

	if level == "" {
		return slog.LevelInfo
	}
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lv
}

// InitializeLogger replaces the package logger with one writing to w.
// Terminals get a colored handler, anything else plain text.
func InitializeLogger(level string, w io.Writer) *slog.Logger {
	lv := ParseLevel(level)

	var h slog.Handler
	if isTerminal(w) {
		h = tint.NewHandler(w, &tint.Options{
			Level:      lv,
			TimeFormat: time.TimeOnly,
		})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: lv,
		})
	}

	logger = slog.New(h)
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// GetLogger returns the package logger tagged with category. The logger
// installed at call time is kept.
func GetLogger(category string) *slog.Logger {
	return logger.With(slog.String("category", category))
}
