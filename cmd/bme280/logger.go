package main

import (
	"io"
	"log/slog"

	logger "github.com/d2r2/go-logger"
	loggerFactory "github.com/walkure/bmeprobe/pkg/logger"
)

// initLogger builds the slog logger and aligns the d2r2 i2c package logger
// with the same level.
func initLogger(level string, w io.Writer) *slog.Logger {
	l := loggerFactory.InitializeLogger(level, w)

	logger.ChangePackageLogLevel("i2c", d2r2Level(loggerFactory.ParseLevel(level)))

	return l
}

func d2r2Level(lv slog.Level) logger.LogLevel {
	switch {
	case lv <= slog.LevelDebug:
		return logger.DebugLevel
	case lv <= slog.LevelInfo:
		return logger.InfoLevel
	case lv <= slog.LevelWarn:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}
