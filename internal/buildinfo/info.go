// Package buildinfo holds release metadata stamped in with
// -ldflags "-X github.com/cleared-dev/boaparser/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

// Set at link time; the defaults identify a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the metadata the way --version prints it.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
