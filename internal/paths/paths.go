package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "zodplay"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/zodplay.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// Reload re-reads the XDG environment variables. Tests that change
// XDG_CONFIG_HOME call this before resolving paths.
func Reload() {
	xdg.Reload()
}

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used. It is idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// IsHidden reports whether the base name of path starts with a dot.
// Prettier configuration files are hidden files that a workspace must
// still pick up, so callers decide what to do with the answer.
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
