package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogRotationConfig(t *testing.T) {
	cfg := DefaultLogRotationConfig("/tmp/bot-admin.log")
	assert.Equal(t, "/tmp/bot-admin.log", cfg.Filename)
	assert.Equal(t, 10, cfg.MaxSize)
	assert.Equal(t, 10, cfg.MaxBackups)
	assert.Equal(t, 30, cfg.MaxAge)
	assert.True(t, cfg.Compress)
}

func TestSetupStderr(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	var buf bytes.Buffer
	closer := Setup(false, "", &buf)
	defer closer.Close()

	logrus.Debug("hidden")
	logrus.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	Setup(true, "", &buf)
	assert.Equal(t, logrus.TraceLevel, logrus.GetLevel())
}

func TestSetupLogFile(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	logFile := filepath.Join(t.TempDir(), "bot-admin.log")
	closer := Setup(true, logFile, os.Stderr)
	logrus.Debug("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
