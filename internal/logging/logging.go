// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger used across dossier. Console output
// is reserved for the wizard dialogue, so the logger stays silent unless
// verbose mode or a log file is configured.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nevinshine/research-dossier/pkg/types"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// ParseLevel maps a level name to a zapcore level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q: use debug, info, warn, or error", name)
	}
}

// New returns a logger for cfg. Verbose mode adds a human-readable console
// core on stderr at debug level. A non-empty cfg.File adds a JSON core that
// rotates through lumberjack. With neither, New returns a no-op logger.
func New(cfg types.LogConfig) (*zap.Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg types.LogConfig, console io.Writer) (*zap.Logger, error) {
	var cores []zapcore.Core

	if cfg.Verbose {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(console),
			zapcore.DebugLevel,
		))
	}

	if cfg.File != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := cfg.MaxBackups
		if maxBackups <= 0 {
			maxBackups = defaultMaxBackups
		}

		enc := zap.NewProductionEncoderConfig()
		enc.TimeKey = "timestamp"
		enc.EncodeTime = zapcore.RFC3339TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(enc),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    maxSize,
				MaxBackups: maxBackups,
			}),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}
