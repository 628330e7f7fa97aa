package splice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultVersionIdentifier names the constant holding the application version.
const DefaultVersionIdentifier = "APP_VERSION"

// ErrVersionNotFound reports a target without a version declaration. Callers
// treat it as a warning.
var ErrVersionNotFound = errors.New("splice: version declaration not found")

// BumpPolicy selects which version component is incremented.
type BumpPolicy string

const (
	BumpPatch BumpPolicy = "patch"
	BumpMinor BumpPolicy = "minor"
)

// ParseBumpPolicy normalises user input. The second result is false for
// values other than patch or minor, which fall back to BumpPatch.
func ParseBumpPolicy(raw string) (BumpPolicy, bool) {
	switch BumpPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case BumpMinor:
		return BumpMinor, true
	case BumpPatch, "":
		return BumpPatch, true
	default:
		return BumpPatch, false
	}
}

// Version is a major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the next version. Minor bumps reset the patch number; every
// other policy increments the patch. The major number never changes.
func (v Version) Bump(policy BumpPolicy) Version {
	if policy == BumpMinor {
		return Version{Major: v.Major, Minor: v.Minor + 1}
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// VersionChange records a bump applied to a source file.
type VersionChange struct {
	From Version
	To   Version
}

func versionPattern(identifier string) *regexp.Regexp {
	return regexp.MustCompile(`const ` + regexp.QuoteMeta(identifier) + ` = '(\d+)\.(\d+)\.(\d+)';`)
}

// FindVersion returns the version declared as `const <identifier> = 'X.Y.Z';`.
func FindVersion(source, identifier string) (Version, error) {
	_, version, err := findVersion(source, identifier)
	return version, err
}

func findVersion(source, identifier string) ([]int, Version, error) {
	if identifier == "" {
		identifier = DefaultVersionIdentifier
	}
	loc := versionPattern(identifier).FindStringSubmatchIndex(source)
	if loc == nil {
		return nil, Version{}, fmt.Errorf("%w: %s", ErrVersionNotFound, identifier)
	}

	parts := make([]int, 3)
	for i := range parts {
		n, err := strconv.Atoi(source[loc[2+2*i]:loc[3+2*i]])
		if err != nil {
			return nil, Version{}, fmt.Errorf("splice: parse version: %w", err)
		}
		parts[i] = n
	}
	return loc, Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// BumpVersion rewrites the first version declaration according to policy.
// When no declaration exists the source is returned unchanged together with
// ErrVersionNotFound.
func BumpVersion(source, identifier string, policy BumpPolicy) (string, VersionChange, error) {
	if identifier == "" {
		identifier = DefaultVersionIdentifier
	}
	loc, current, err := findVersion(source, identifier)
	if err != nil {
		return source, VersionChange{}, err
	}

	next := current.Bump(policy)
	declaration := fmt.Sprintf("const %s = '%s';", identifier, next)
	updated := source[:loc[0]] + declaration + source[loc[1]:]
	return updated, VersionChange{From: current, To: next}, nil
}
