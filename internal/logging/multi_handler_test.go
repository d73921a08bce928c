package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandler_DispatchesByLevel(t *testing.T) {
	var text, js bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("session", "s1").WithGroup("event")

	logger.Debug("only json", "name", "Save")
	logger.Warn("both")

	assert.NotContains(t, text.String(), "only json")
	assert.Contains(t, text.String(), "session=s1")
	assert.Contains(t, js.String(), "only json")
	assert.Contains(t, js.String(), `"session":"s1"`)
	assert.Contains(t, js.String(), `"event":{"name":"Save"}`)
	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, h.Enabled(t.Context(), LevelTrace))
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	ok := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(ok, failingHandler{ok})

	err := h.Handle(t.Context(), slog.NewRecord(time.Now(), slog.LevelError, "boom", 0))

	assert.ErrorContains(t, err, "disk full")
	assert.Contains(t, buf.String(), "boom")
}
