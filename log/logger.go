// Package log builds the zap loggers used by simplemongo and its host programs.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the encoder and threshold of a logger.
type Config struct {
	IsDev bool

	// Level is one of debug, info, warn, error. Empty means debug in dev and
	// info otherwise.
	Level string

	// Output lists zap sink paths. Defaults to stderr.
	Output []string
}

func (c Config) level() (zap.AtomicLevel, error) {
	if c.Level == "" {
		if c.IsDev {
			return zap.NewAtomicLevelAt(zap.DebugLevel), nil
		}
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	return zap.ParseAtomicLevel(c.Level)
}

func (c Config) output() []string {
	if len(c.Output) == 0 {
		return []string{"stderr"}
	}
	return c.Output
}

// Build returns a coloured console logger in dev mode and a JSON logger otherwise.
func Build(c Config) (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, fmt.Errorf("log: level %q: %w", c.Level, err)
	}

	var cfg zap.Config
	if c.IsDev {
		cfg = consoleConfig(lvl)
	} else {
		cfg = jsonConfig(lvl)
	}
	cfg.OutputPaths = c.output()
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// BuildLogger is Build with default level and output. It never returns nil.
func BuildLogger(isDev bool) *zap.Logger {
	logger, err := Build(Config{IsDev: isDev})
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewLogger creates a named logger, prefixed by the PLATFORM environment variable when set.
func NewLogger(name string, isDev bool) *zap.Logger {
	return BuildLogger(isDev).Named(os.Getenv("PLATFORM")).Named(name)
}

func jsonConfig(lvl zap.AtomicLevel) zap.Config {
	hostname, _ := os.Hostname()

	return zap.Config{
		Level:       lvl,
		Development: false,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "lvl",
			NameKey:        "service",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "trace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		InitialFields: map[string]any{"host": hostname},
	}
}

func consoleConfig(lvl zap.AtomicLevel) zap.Config {
	return zap.Config{
		Level:       lvl,
		Development: true,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			NameKey:        "service",
			EncodeName:     nameEncoder,
			MessageKey:     "message",
			TimeKey:        "time",
			EncodeTime:     timeEncoder,
			LevelKey:       "level",
			EncodeLevel:    levelEncoder,
			CallerKey:      "caller",
			EncodeCaller:   callerEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}
}
