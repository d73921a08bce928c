// Package paths resolves the directories zodplay reads from.
//
// It wraps github.com/adrg/xdg for XDG Base Directory compliance, so the
// configuration directory is ~/.config/zodplay on Linux and the
// platform-appropriate equivalent elsewhere.
package paths
