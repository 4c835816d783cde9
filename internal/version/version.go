package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/imgreorder/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/imgreorder/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/imgreorder/internal/version.Date={{.Date}}
)

// String returns the one-line build description printed by the version command.
func String() string {
	return fmt.Sprintf("imgreorder %s (commit %s, built %s)", Version, Commit, Date)
}
