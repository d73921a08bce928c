// Package fileutil provides size-limited reads and atomic writes.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/zodplay/internal/errors"
)

// DefaultFilePerm is the mode of files written by WriteAtomic.
const DefaultFilePerm os.FileMode = 0o644

// AtomicWriteFile writes data next to path and renames it into place, so a
// reader never observes a partial file. The parent directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".zodplay-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// WriteAtomic writes data with DefaultFilePerm, adding a trailing newline
// when data lacks one.
func WriteAtomic(path string, data []byte) error {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return AtomicWriteFile(path, data, DefaultFilePerm)
}
