package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now()
	logger.Info("file added", "name", "petstore.yaml")

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "file added")
	assert.Contains(t, output, "name=petstore.yaml")
	assert.Contains(t, output, now.Format(time.Kitchen))
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("session", "abc").WithGroup("store")

	logger.Info("event", "type", "Save")

	output := buf.String()
	assert.Contains(t, output, "session=abc")
	assert.Contains(t, output, "store.type=Save")
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "transition")

	assert.Contains(t, buf.String(), "TRACE")
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	require.NoError(t, h.Handle(t.Context(), r))

	assert.True(t, strings.HasPrefix(buf.String(), "INFO"), "got %q", buf.String())
}

func TestHandler_ClipsLongValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	content := strings.Repeat("openapi: 3.0.0\n", 40)
	logger.Info("input updated", "content", content)

	output := buf.String()
	assert.NotContains(t, output, content)
	assert.Contains(t, output, "...(600 bytes)")
	assert.Equal(t, 1, strings.Count(output, "\n"), "clipped value must stay on one line")
}
