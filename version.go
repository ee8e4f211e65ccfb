package cardkit

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion reports a version string that is not a semantic version.
var ErrInvalidVersion = errors.New("cardkit: invalid semantic version")

// SemanticVersion is a version comparable by semantic-version precedence.
// Accepted forms are MAJOR[.MINOR[.PATCH]] with optional pre-release and build
// suffixes and an optional leading "v". The zero value is not a valid version.
type SemanticVersion struct {
	raw   string
	canon string
}

// ParseSemanticVersion parses s. Missing MINOR and PATCH components count as 0.
func ParseSemanticVersion(s string) (SemanticVersion, error) {
	raw := strings.TrimSpace(s)
	v := raw
	switch {
	case strings.HasPrefix(v, "v"):
	case strings.HasPrefix(v, "V"):
		v = "v" + v[1:]
	default:
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return SemanticVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	return SemanticVersion{raw: raw, canon: semver.Canonical(v)}, nil
}

// MustParseSemanticVersion is like ParseSemanticVersion but panics on error.
func MustParseSemanticVersion(s string) SemanticVersion {
	v, err := ParseSemanticVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as authored.
func (v SemanticVersion) String() string { return v.raw }

// IsZero reports whether v is the zero value.
func (v SemanticVersion) IsZero() bool { return v.canon == "" }

// Compare returns -1, 0 or +1 following semantic-version precedence. Build
// metadata is ignored.
func (v SemanticVersion) Compare(o SemanticVersion) int {
	return semver.Compare(v.canon, o.canon)
}

// AtLeast reports whether v >= min.
func (v SemanticVersion) AtLeast(min SemanticVersion) bool { return v.Compare(min) >= 0 }

// MarshalText implements encoding.TextMarshaler.
func (v SemanticVersion) MarshalText() ([]byte, error) { return []byte(v.raw), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SemanticVersion) UnmarshalText(b []byte) error {
	p, err := ParseSemanticVersion(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
