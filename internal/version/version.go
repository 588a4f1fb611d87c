// Package version holds build-time version information injected via ldflags.
package version

import "fmt"

// Set at build time via -ldflags "-X github.com/hazz-dev/healthpoll/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for the given binary name.
func String(binary string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", binary, Version, Commit, Date)
}
