package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "foryou.log")

	logger, closeFn, err := Open(path, "debug")
	require.NoError(t, err)
	logger.Debug("state published", "variant", "loading")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "state published")
	assert.Contains(t, string(data), "variant=loading")
}

func TestOpen_InvalidLevel(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "foryou.log"), "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.WarnLevel)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, log.InfoLevel), "viewmodel")
	logger.Info("hello")
	assert.Contains(t, buf.String(), "viewmodel")

	assert.NotNil(t, Component(nil, "x"))
}
