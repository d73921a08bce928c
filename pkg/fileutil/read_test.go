package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/zodplay/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(small, []byte("baseUrl: x\n"), 0o600))

	exact := filepath.Join(dir, "exact.yaml")
	require.NoError(t, os.WriteFile(exact, []byte(strings.Repeat("a", MaxFileSize)), 0o600))

	large := filepath.Join(dir, "large.yaml")
	require.NoError(t, os.WriteFile(large, []byte(strings.Repeat("a", MaxFileSize+1)), 0o600))

	got, err := ReadFileWithLimit(small)
	require.NoError(t, err)
	assert.Equal(t, "baseUrl: x\n", string(got))

	got, err = ReadFileWithLimit(exact)
	require.NoError(t, err)
	assert.Len(t, got, MaxFileSize)

	_, err = ReadFileWithLimit(large)
	assert.True(t, errors.Is(err, ErrFileTooLarge))

	_, err = ReadFileWithLimit(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
