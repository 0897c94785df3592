package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "loadscreen.log")

	logger, closer, err := New(path, "debug", "test")
	require.NoError(t, err)

	logger.Debug("hello", "key", "value")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "key=value")
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadscreen.log")

	logger, closer, err := New(path, "warn", "")
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New("", "chatty", "")
	assert.Error(t, err)
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("", "info", "")
	require.NoError(t, err)
	assert.NotPanics(t, func() { logger.Info("nowhere") })
	assert.NoError(t, closer.Close())
}

func TestDiscardDropsEverything(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)
	assert.Equal(t, log.FatalLevel, logger.GetLevel())
	assert.NotPanics(t, func() { logger.Error("nowhere", "key", "value") })
}
