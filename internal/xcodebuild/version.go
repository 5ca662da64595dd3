package xcodebuild

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersion is the oldest Xcode that ships the iPhone 16 simulator used by
// the default build destination.
const MinVersion = "16.0"

// CompareVersions compares two Xcode version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. Tolerates a leading "v"
// and two-segment versions like "16.2".
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// MeetsMinVersion reports whether version is at least MinVersion.
func MeetsMinVersion(version string) (bool, error) {
	cmp, err := CompareVersions(version, MinVersion)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
