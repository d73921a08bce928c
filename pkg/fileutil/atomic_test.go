package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{name: "text", data: []byte("groupStrategy: tag\n"), perm: 0o644},
		{name: "empty", data: []byte{}, perm: 0o644},
		{name: "private", data: []byte(`{"baseUrl":"x"}`), perm: 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "options.yaml")

			require.NoError(t, AtomicWriteFile(path, tt.data, tt.perm))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.perm, info.Mode().Perm())
		})
	}
}

func TestAtomicWriteFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, AtomicWriteFile(path, []byte("new"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestAtomicWriteFile_MissingDirLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()

	err := AtomicWriteFile(filepath.Join(dir, "missing", "options.json"), []byte("x"), 0o600)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteAtomic_TrailingNewline(t *testing.T) {
	dir := t.TempDir()

	for name, data := range map[string]string{"a": "x", "b": "x\n"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteAtomic(path, []byte(data)))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "x\n", string(got))
	}
}
