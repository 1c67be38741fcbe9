package version

import "fmt"

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/woodgeo/internal/version.Version=1.0.0"
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2025"
)

// String returns the one-line version banner.
func String() string {
	s := fmt.Sprintf("woodgeo v%s", Version)
	if GitCommit != "unknown" {
		s += fmt.Sprintf(" (%s)", GitCommit)
	}
	if BuildTime != "unknown" {
		s += fmt.Sprintf(" built %s", BuildTime)
	}
	return s
}
