// Package log builds the zap loggers the services use and keeps the
// process-wide instance.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = zap.NewNop()

// New builds a production logger at the given level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// SetGlobal replaces the process-wide logger.
func SetGlobal(l *zap.Logger) {
	global = l
}

// L returns the process-wide logger.
func L() *zap.Logger {
	return global
}
