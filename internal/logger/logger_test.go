package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Configure(level, FormatJSON, &buf)
	t.Cleanup(func() { Configure("info", FormatConsole, os.Stdout) })
	return &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestWithErrorAndField(t *testing.T) {
	buf := captureJSON(t, "info")

	New().WithField("location_id", "3").WithError(errors.New("disk full")).Warn("save failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "save failed", entry["message"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "3", entry["location_id"])
}

func TestLevelFiltering(t *testing.T) {
	buf := captureJSON(t, "warn")

	l := New()
	l.Debug("hidden")
	l.Info("hidden too")
	l.Error("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "shown"))
}

func TestSetLevel(t *testing.T) {
	buf := captureJSON(t, "info")

	l := New()
	l.SetLevel(LogLevelDebug)
	l.Debug("now visible")

	assert.Contains(t, buf.String(), "now visible")
}
