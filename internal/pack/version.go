package pack

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
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

// LatestChangelogVersion returns the highest version named in the
// changelog, skipping entries whose version does not parse. ok is false when
// no entry carries a usable version.
func LatestChangelogVersion(entries []ChangelogEntry) (latest string, ok bool) {
	var best *semver.Version
	for _, e := range entries {
		v, err := parseSemver(e.Version)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			latest = e.Version
		}
	}
	return latest, best != nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
