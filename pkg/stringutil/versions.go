package stringutil

import "regexp"

// Mod versions are plain X.Y.Z. Prerelease suffixes, build metadata and
// a leading "v" are all rejected so versions stay comparable as-is.
var semVerPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsSemVer reports whether s is a semantic version of the form X.Y.Z.
func IsSemVer(s string) bool {
	return semVerPattern.MatchString(s)
}
