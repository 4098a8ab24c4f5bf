package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures console logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // none, normal, debug
}

// Validate checks the logging level.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "none", "normal", "debug":
		return nil
	default:
		return fmt.Errorf("invalid logging level: %s (must be none, normal, or debug)", c.Level)
	}
}

// Prepare returns the console logger. Diagnostics go to stderr so that
// generated CSS on stdout stays clean.
func (c LoggingConfig) Prepare() (*zap.Logger, error) {
	var level zapcore.Level
	switch c.Level {
	case "none":
		return zap.NewNop(), nil
	case "debug":
		level = zapcore.DebugLevel
	case "normal", "":
		level = zapcore.InfoLevel
	default:
		return nil, fmt.Errorf("invalid logging level: %s", c.Level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}
