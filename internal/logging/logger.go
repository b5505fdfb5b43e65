package logging

// Package logging configures the application-wide zap logger. The UI and
// catalog layers log diagnostics through L(); load failures are never shown
// to the user as raw errors, so the log is the primary place they surface.

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init builds the global logger at the given level ("debug", "info", "warn",
// "error"; anything else falls back to info).
func Init(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true

	built, err := cfg.Build(zap.Fields(zap.String("service", "recipebox")))
	if err != nil {
		return err
	}

	logger = built
	zap.ReplaceGlobals(logger)
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = logger.Sync()
}
