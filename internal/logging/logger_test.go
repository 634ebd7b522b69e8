package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	require.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	require.Equal(t, zapcore.InfoLevel, ParseLevel("nonsense"))
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewFileLogger(dir, "debug")
	require.NoError(t, err)

	logger.Info("hello", zap.String("k", "v"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "campusmind.log"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `"hello"`))
	require.True(t, strings.Contains(string(data), `"k":"v"`))
}

func TestNewFileLoggerRespectsLevel(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewFileLogger(dir, "warn")
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "campusmind.log"))
	require.NoError(t, err)
	require.False(t, strings.Contains(string(data), "quiet"))
	require.True(t, strings.Contains(string(data), "loud"))
}
