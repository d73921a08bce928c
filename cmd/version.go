// Package cmd holds build metadata injected via ldflags.
package cmd

// Set with -ldflags "-X github.com/thoreinstein/zodplay/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
