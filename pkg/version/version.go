// Package version contains build information for prefixgender, set with -ldflags.
package version

var (
	// Version is the current version of prefixgender.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// String renders the version with its build metadata
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
