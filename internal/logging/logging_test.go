package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("test message", "key", "value")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "test message", parsed["msg"])
	assert.Equal(t, "value", parsed["key"])
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: Format("yaml"), Output: &buf})

	logger.Info("test message", "key", "value")

	var parsed map[string]any
	assert.Error(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Contains(t, buf.String(), "key=value")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.v), "verbosity %d", tt.v)
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(t.Context()))
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	require.NotNil(t, logger)
	logger.Debug("debug from test logger", "test", t.Name())
}
