package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modgraph/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("retrieved cached modules for Gradle build system")
	lg.Warn("settings script includes projects dynamically")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="retrieved cached modules for Gradle build system"`)
	assert.Contains(t, out, "level=WARN")
}

func TestLogger_Error(t *testing.T) {
	t.Run("nil error is ignored", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("text mode", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(errors.New("no suitable build system found"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "no suitable build system found")
	})

	t.Run("json mode", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetJSON(true)
		lg.Error(errors.New("boom"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "operation failed", record["msg"])
		assert.Equal(t, "boom", record["error"])
	})
}

func TestFormatError(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		assert.Equal(t, "simple error", logger.FormatError(errors.New("simple error")))
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(
			zerr.Wrap(errors.New("permission denied"), "failed to write module cache"),
			"resolve failed",
		)

		got := logger.FormatError(err)
		assert.Equal(t, "resolve failed\nCaused by:\n  -> failed to write module cache\n  -> permission denied", got)
	})
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	lg.SetOutput(nil)
	lg.Info("goes to stderr")
}
