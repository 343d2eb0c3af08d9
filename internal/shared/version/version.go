// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is stamped at build time:
//
//	go build -ldflags "-X github.com/incidentdesk/incidentdesk/internal/shared/version.Current=1.4.0"
var Current = "dev"

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

// String returns Current in canonical semver form, or verbatim when it is
// not a semantic version (development builds).
func String() string {
	v := Normalize(Current)
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	return Current
}
