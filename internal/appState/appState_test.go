package appState

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/isaacphi/adminshell/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestSetupLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adminshell.log")

	logger, closer, err := setupLogger(config.Log{Level: "DEBUG", File: path}, true)
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Debug("screen transition", "to", "menu")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "screen transition")
	assert.Contains(t, string(data), "to=menu")
}

func TestSetupLoggerLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adminshell.log")

	logger, closer, err := setupLogger(config.Log{Level: "WARN", File: path}, false)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	logger, closer, err := setupLogger(config.Log{}, true)
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.NotNil(t, logger)
}

func TestSetupLoggerBadPath(t *testing.T) {
	_, _, err := setupLogger(config.Log{File: filepath.Join(t.TempDir(), "missing", "x.log")}, false)
	assert.Error(t, err)
}
