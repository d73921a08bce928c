package editor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		visual string
		want   string
	}{
		{name: "EDITOR wins", editor: "nvim", visual: "code", want: "nvim"},
		{name: "VISUAL when EDITOR empty", editor: "", visual: "code", want: "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)
			assert.Equal(t, tt.want, detectEditor())
		})
	}
}

func TestDetectEditor_Fallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	assert.Equal(t, want, detectEditor())
}

func TestEditor_Open(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as editor")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "args.txt")
	script := filepath.Join(dir, "fake-editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\" > "+out+"\n"), 0o755))

	target := filepath.Join(dir, "petstore.yaml")
	e := Editor{Command: script + " --wait"}
	require.NoError(t, e.Open(context.Background(), target))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "--wait "+target+"\n", string(got))
}

func TestEditor_OpenMissingBinary(t *testing.T) {
	e := Editor{Command: "zodplay-no-such-editor"}
	err := e.Open(context.Background(), "petstore.yaml")
	assert.ErrorContains(t, err, "zodplay-no-such-editor")
}

func TestEditor_OpenBlankCommand(t *testing.T) {
	t.Setenv("EDITOR", "   ")
	err := Open(context.Background(), "petstore.yaml")
	assert.ErrorIs(t, err, ErrNoEditor)
}
