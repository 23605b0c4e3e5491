// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the configuration for the logger
type Config struct {
	Level       string // zap level name, "info" when empty
	Development bool   // console encoding instead of JSON
}

// New creates a logger writing to stderr so stdout stays free for output.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		parsed, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var zapConfig zap.Config
	if cfg.Development {
		// Development mode: console logging
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		// Production mode: structured JSON logging
		zapConfig = zap.NewProductionConfig()
		zapConfig.DisableStacktrace = true
	}
	zapConfig.Level = level
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", "svgflat")), nil
}
