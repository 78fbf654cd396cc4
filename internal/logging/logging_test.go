// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nevinshine/research-dossier/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "INFO", want: zapcore.InfoLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: " error ", want: zapcore.ErrorLevel},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSilentByDefault(t *testing.T) {
	var console bytes.Buffer
	logger, err := newLogger(types.LogConfig{}, &console)
	require.NoError(t, err)

	logger.Error("should not appear")
	assert.Empty(t, console.String())
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewVerboseConsole(t *testing.T) {
	var console bytes.Buffer
	logger, err := newLogger(types.LogConfig{Verbose: true}, &console)
	require.NoError(t, err)

	logger.Debug("editor launch failed", zap.String("path", "a.md"))
	out := console.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "editor launch failed")
	assert.Contains(t, out, "a.md")
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dossier.log")
	logger, err := newLogger(types.LogConfig{File: path, Level: "warn"}, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Info("dropped below warn")
	logger.Error("write failed", zap.String("path", "x.md"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "write failed", rec["msg"])
	assert.Equal(t, "error", rec["level"])
	assert.Equal(t, "x.md", rec["path"])
	assert.Contains(t, rec, "timestamp")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := newLogger(types.LogConfig{File: filepath.Join(t.TempDir(), "d.log"), Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
