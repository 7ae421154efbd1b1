package console

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	prev := logger.GetLevel()
	t.Cleanup(func() {
		SetOutput(io.Discard)
		logger.SetLevel(prev)
	})
	return &buf
}

func TestLevels(t *testing.T) {
	buf := capture(t)
	require.NoError(t, SetLevel("warn"))

	Debug("debug line")
	Log("info line")
	Warn("warn", "line")
	Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestSetLevel_Invalid(t *testing.T) {
	err := SetLevel("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "chatty"`)
}

func TestWithFields(t *testing.T) {
	buf := capture(t)
	require.NoError(t, SetLevel("debug"))

	WithFields(map[string]any{"path": "/about"}).Info("navigated")

	assert.Contains(t, buf.String(), "path=/about")
	assert.Contains(t, buf.String(), "navigated")
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())
}
