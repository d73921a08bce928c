package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir_FollowsXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	Reload()
	t.Cleanup(Reload)

	assert.Equal(t, home, ConfigHome())
	assert.Equal(t, filepath.Join(home, "zodplay"), ConfigDir())
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir, 0))
	require.NoError(t, EnsureDir(dir, 0), "second call must be a no-op")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/work/.prettierrc.json"))
	assert.False(t, IsHidden("/work/petstore.yaml"))
	assert.False(t, IsHidden("dir.d/file"))
}
