// SPDX-License-Identifier: MIT
//
// Package build manages build information embedded into the binary at
// compile time via linker flags, for example:
//
//	go build -ldflags "-X prosody/internal/build.buildName=prosody \
//	                   -X prosody/internal/build.buildVersion=0.1.0"
//
// Development builds without ldflags fall back to "dev" placeholders.
package build

type ldFlags struct {
	Name    string // Application name
	Time    string // Build timestamp
	Commit  string // Git commit hash
	Version string // Semantic version
}

// Package-level variables for build information. These are populated by
// -ldflags during compilation.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
	buildFlags   = &ldFlags{
		Name:    "prosody",
		Time:    "unknown",
		Commit:  "unknown",
		Version: "dev",
	}
)

// Initialize copies build information from the ldflags variables into the
// buildFlags struct, keeping the development fallbacks for any flag that
// was not injected. Call early in program startup.
func Initialize() {
	if buildName != "" {
		buildFlags.Name = buildName
	}
	if buildTime != "" {
		buildFlags.Time = buildTime
	}
	if buildCommit != "" {
		buildFlags.Commit = buildCommit
	}
	if buildVersion != "" {
		buildFlags.Version = buildVersion
	}
}

// GetBuildFlags returns the current build information.
func GetBuildFlags() *ldFlags {
	return buildFlags
}
