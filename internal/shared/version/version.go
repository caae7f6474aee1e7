// Package version reports the build version stamped in at link time:
//
//	go build -ldflags "-X tradehub/internal/shared/version.Version=1.4.0" ./cmd/tradehub
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is overridden by the linker for release builds.
var Version = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// Current returns the canonical semver of the running build, or "dev" when
// the stamped value is not a valid version.
func Current() string {
	return canonical(Version)
}

func canonical(raw string) string {
	v := semver.Canonical(Normalize(raw))
	if v == "" {
		return "dev"
	}
	return v
}
