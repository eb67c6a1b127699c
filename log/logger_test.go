package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	logger, err := Build(Config{Output: []string{path}})
	require.NoError(t, err)

	logger.Named("store").Debug("hidden")
	logger.Named("store").Info("MGO/CONN CONNECTED", zap.String("database", "db"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "MGO/CONN CONNECTED", entry["msg"])
	assert.Equal(t, "info", entry["lvl"])
	assert.Equal(t, "store", entry["service"])
	assert.Equal(t, "db", entry["database"])
	assert.Contains(t, entry, "host")
}

func TestBuildConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	logger, err := Build(Config{IsDev: true, Output: []string{path}})
	require.NoError(t, err)

	logger.Debug("visible in dev")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible in dev")
	assert.Contains(t, string(data), Green("DEBUG"))
}

func TestBuildLevel(t *testing.T) {
	_, err := Build(Config{Level: "loud"})
	assert.Error(t, err)

	logger, err := Build(Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("simplemongo.test", true))
	assert.NotNil(t, NewLogger("simplemongo.test", false))
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "\x1b[31m\x1b[1mERROR\x1b[0m\x1b[0m", levelColor(zapcore.ErrorLevel))
}
