// Package version carries the sleepwise build metadata.
//
// A plain `go build` produces a development build; releases stamp the
// variables through -ldflags, e.g.:
//
//	go build -ldflags "\
//	  -X github.com/khanglvm/sleepwise/internal/version.Version=v0.2.0 \
//	  -X github.com/khanglvm/sleepwise/internal/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/khanglvm/sleepwise/internal/version.Date=$(date -u +%Y-%m-%d)"
package version

var (
	// Version is the release tag, or "dev" for unstamped builds.
	Version = "dev"
	// Commit is the short git commit hash.
	Commit = "none"
	// Date is the UTC build date, YYYY-MM-DD.
	Date = "unknown"
)

// GetVersion returns the one-line string shown by the version command and
// the root --version flag.
func GetVersion() string {
	if Version == "dev" {
		return Version + " (development build)"
	}
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}

// GetVersionComponents returns the individual metadata values.
func GetVersionComponents() (version, commit, date string) {
	return Version, Commit, Date
}
