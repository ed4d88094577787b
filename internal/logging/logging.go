// Package logging configures the process logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papersift-io/papersift/internal/config"
)

// New returns the process logger. With debug set it writes structured
// logs to ~/.papersift/debug.log; otherwise it is a no-op. Logs never go
// to stdout or stderr because the screening view owns the terminal.
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := config.EnsureGlobalDir(); err != nil {
		return nil, err
	}
	path, err := config.DebugLogFile()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
