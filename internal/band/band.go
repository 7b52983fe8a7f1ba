// Package band implements the SDK feature band: the coarse version grouping
// under which workload manifests are namespaced on disk. A full SDK version
// maps onto its band by flooring the patch to its hundred (6.0.203 becomes
// 6.0.200) and truncating the prerelease to its first two dot-separated
// identifiers (preview.4.12345 becomes preview.4). Build metadata is dropped.
package band

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FeatureBand is a comparable feature band value. The zero value is the
// absent band; Parse is the only way to obtain a non-zero one.
type FeatureBand struct {
	v *semver.Version
}

// Parse derives a FeatureBand from a full SDK version or a band string.
// Parsing a string that is already a band is a no-op (flooring and
// truncation are idempotent).
func Parse(s string) (FeatureBand, error) {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return FeatureBand{}, fmt.Errorf("parsing feature band %q: %w", s, err)
	}

	patch := v.Patch() / 100 * 100

	pre := v.Prerelease()
	if pre != "" {
		parts := strings.SplitN(pre, ".", 3)
		if len(parts) > 2 {
			parts = parts[:2]
		}
		pre = strings.Join(parts, ".")
	}

	return FeatureBand{v: semver.New(v.Major(), v.Minor(), patch, pre, "")}, nil
}

// MustParse parses a band or panics. For constants and tests only.
func MustParse(s string) FeatureBand {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// IsZero reports whether b is the absent band.
func (b FeatureBand) IsZero() bool {
	return b.v == nil
}

// String returns the canonical band string, or "" for the zero value.
func (b FeatureBand) String() string {
	if b.v == nil {
		return ""
	}
	return b.v.String()
}

// Compare returns -1, 0 or 1 ordering b against other. Prerelease bands sort
// before their released counterpart. The zero value sorts before everything.
func (b FeatureBand) Compare(other FeatureBand) int {
	switch {
	case b.v == nil && other.v == nil:
		return 0
	case b.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return b.v.Compare(other.v)
}

// Less reports whether b orders before other.
func (b FeatureBand) Less(other FeatureBand) bool {
	return b.Compare(other) < 0
}

// Equal reports whether b and other denote the same band.
func (b FeatureBand) Equal(other FeatureBand) bool {
	return b.Compare(other) == 0
}

// WithoutPrerelease returns the released form of b (6.0.200-preview.4
// becomes 6.0.200). Released bands are returned unchanged.
func (b FeatureBand) WithoutPrerelease() FeatureBand {
	if b.v == nil || b.v.Prerelease() == "" {
		return b
	}
	return FeatureBand{v: semver.New(b.v.Major(), b.v.Minor(), b.v.Patch(), "", "")}
}

// Max returns the larger of a and b.
func Max(a, b FeatureBand) FeatureBand {
	if a.Less(b) {
		return b
	}
	return a
}
