// Package editor launches the user's text editor on a workspace file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/zodplay/internal/errors"
)

// ErrNoEditor indicates that no editor command could be determined.
var ErrNoEditor = errors.New("no editor configured")

// Editor runs an editor command attached to the given streams.
type Editor struct {
	// Command overrides editor detection. It may carry arguments, as in
	// "code --wait".
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Open edits path with the detected editor attached to the process streams.
func Open(ctx context.Context, path string) error {
	e := Editor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	return e.Open(ctx, path)
}

// Open edits path and waits for the editor to exit.
func (e Editor) Open(ctx context.Context, path string) error {
	command := e.Command
	if command == "" {
		command = detectEditor()
	}
	args := strings.Fields(command)
	if len(args) == 0 {
		return ErrNoEditor
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %q", args[0])
	}
	return nil
}

// detectEditor falls back from $EDITOR to $VISUAL, then nano, then vi.
func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
