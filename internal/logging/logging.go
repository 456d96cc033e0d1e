// Package logging builds the zap loggers used by the inputkit commands.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Search keystrokes and toasts come in bursts. In prod the first
// samplingInitial entries per message and second are kept, then one in
// samplingThereafter.
const (
	samplingInitial    = 20
	samplingThereafter = 50
)

// ValidLogLevels lists all valid zap log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// IsValidLogLevel checks if level is a valid zap log level, case-insensitively.
func IsValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, valid := range ValidLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// BootstrapLogger returns a console logger named name for use before config
// is loaded. It logs to stderr at info level.
func BootstrapLogger(name string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named(name)
}

// BuildLogger constructs the logger named name for the given level and env.
// "prod" uses a sampled JSON encoder, anything else the unsampled development
// console encoder. Every entry carries the env.
//
// An invalid level defaults to "info" and a warning is written to stderr.
func BuildLogger(name, level, env string) (*zap.Logger, error) {
	return buildLogger(name, level, env, os.Stderr, "stderr")
}

func buildLogger(name, level, env string, warn io.Writer, output string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.Sampling = &zap.SamplingConfig{
			Initial:    samplingInitial,
			Thereafter: samplingThereafter,
		}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Sampling = nil
	}

	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if err := cfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		_, _ = io.WriteString(warn, "WARNING: invalid log level \""+level+
			"\"; valid levels are: "+strings.Join(ValidLogLevels, ", ")+
			". Defaulting to \"info\".\n")
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}
	cfg.InitialFields = map[string]any{"env": env}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named(name), nil
}
