// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Short returns the one-line form used by --version style output.
func Short() string {
	return fmt.Sprintf("papersift %s (%s, built %s)", Version, CommitHash, BuildDate)
}
