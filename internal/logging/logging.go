// Package logging builds the zap loggers used by the entrypoints.
// Library packages stay logger-agnostic; anything that wants to log
// takes a *zap.Logger and defaults to a nop.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a named logger. Verbose enables debug level and console
// encoding for local runs; otherwise the production config applies.
func New(name string, verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named(name)
}

// Nop returns a logger that discards everything
func Nop() *zap.Logger {
	return zap.NewNop()
}
