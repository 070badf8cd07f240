package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.log")

	logger, err := NewLogger(path, logrus.DebugLevel)
	require.NoError(t, err)

	logger.Debug("pattern %s tested", "abc")
	logger.Warning("something odd")
	logger.Entry(logrus.Fields{"engine": "go"}).Info("structured")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "pattern abc tested")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "engine=go")
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := NewLogger(path, logrus.WarnLevel)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Error("shown")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "x.log"), "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestClose_Twice(t *testing.T) {
	logger, err := NewLogger(filepath.Join(t.TempDir(), "x.log"), logrus.InfoLevel)
	require.NoError(t, err)
	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestEntry_AfterCloseIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	logger, err := NewLogger(path, logrus.DebugLevel)
	require.NoError(t, err)

	entry := logger.Entry(logrus.Fields{"engine": "re2"})
	entry.Info("before close")
	require.NoError(t, logger.Close())

	assert.NotPanics(t, func() {
		entry.Info("after close")
		logger.Entry(logrus.Fields{"k": "v"}).Warn("late entry")
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")
	assert.NotContains(t, string(data), "late entry")
}
