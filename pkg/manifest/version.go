package manifest

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const versionSeparator = "."

// versionPart is one dot-separated component of a version: a leading
// run of ASCII digits followed by an arbitrary supplement.
type versionPart struct {
	number     uint64
	supplement string
}

// parseVersionPart splits a trimmed part into its numeric prefix and
// supplement. A numeric prefix that overflows uint64 counts as zero.
func parseVersionPart(s string) versionPart {
	s = strings.TrimSpace(s)
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	number, err := strconv.ParseUint(s[:digits], 10, 64)
	if err != nil {
		number = 0
	}
	return versionPart{number: number, supplement: s[digits:]}
}

// droppable reports whether the part is a trailing zero that does not
// affect ordering.
func (p versionPart) droppable() bool {
	return p.number == 0 && p.supplement == ""
}

// compare orders parts numerically first, then by supplement. An empty
// supplement sorts after any non-empty one, so "1.2" > "1.2-rc".
func (p versionPart) compare(other versionPart) int {
	if p.number != other.number {
		if p.number < other.number {
			return -1
		}
		return 1
	}
	switch {
	case p.supplement == other.supplement:
		return 0
	case p.supplement == "":
		return 1
	case other.supplement == "":
		return -1
	}
	return strings.Compare(p.supplement, other.supplement)
}

// Version is a relaxed version: any string parses, and ordering follows
// the numeric-then-supplement rules WinGet uses for package versions.
// The raw input is preserved for display and serialization; parsed
// parts drive ordering and equality.
type Version struct {
	raw   string
	parts []versionPart
}

// NewVersion parses input into a Version. Leading non-digit characters
// are dropped when a digit appears before the first separator, so
// "v1.2" and "Version 1.2" equal "1.2". Trailing zero parts are
// dropped, so "1.0" equals "1.0.0".
func NewVersion(input string) Version {
	trimmed := strings.TrimSpace(input)

	if digitPos := strings.IndexFunc(trimmed, isASCIIDigit); digitPos >= 0 {
		sepPos := strings.Index(trimmed, versionSeparator)
		if sepPos < 0 || digitPos < sepPos {
			trimmed = trimmed[digitPos:]
		}
	}

	var parts []versionPart
	if trimmed != "" {
		split := strings.Split(trimmed, versionSeparator)
		parts = make([]versionPart, len(split))
		for i, s := range split {
			parts[i] = parseVersionPart(s)
		}
	}

	last := len(parts)
	for last > 0 && parts[last-1].droppable() {
		last--
	}
	parts = parts[:last]

	return Version{raw: trimmed, parts: parts}
}

// String returns the raw version string.
func (v Version) String() string { return v.raw }

// IsLatest reports whether the version is "latest" (case-insensitive).
// A latest version is the maximum of any versions.
func (v Version) IsLatest() bool { return strings.EqualFold(v.raw, "latest") }

// IsUnknown reports whether the version is "unknown" (case-insensitive).
// An unknown version is the minimum of any versions.
func (v Version) IsUnknown() bool { return strings.EqualFold(v.raw, "unknown") }

// Equal reports whether two versions order the same.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compare returns -1, 0, or 1 ordering v against other.
func (v Version) Compare(other Version) int {
	switch {
	case v.IsLatest():
		if other.IsLatest() {
			return 0
		}
		return 1
	case other.IsLatest():
		return -1
	case v.IsUnknown():
		if other.IsUnknown() {
			return 0
		}
		return -1
	case other.IsUnknown():
		return 1
	}
	for i := 0; i < len(v.parts) || i < len(other.parts); i++ {
		if c := v.part(i).compare(other.part(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// part returns the i-th part, or the zero part past the end.
func (v Version) part(i int) versionPart {
	if i < len(v.parts) {
		return v.parts[i]
	}
	return versionPart{}
}

// Closest returns the index of the version in candidates nearest to v,
// or -1 if candidates is empty. Nearness prefers versions that diverge
// at a later part, then smaller numeric differences, then higher
// versions. Ties keep the earliest candidate.
func (v Version) Closest(candidates []Version) int {
	best := -1
	var bestKey distanceKey
	for i := range candidates {
		key := v.distanceTo(candidates[i])
		if best < 0 || key.less(bestKey) {
			best = i
			bestKey = key
		}
	}
	return best
}

// distanceKey ranks candidate versions for Closest. Smaller is nearer.
type distanceKey struct {
	lengthScore   uint64
	numericalDiff uint64
	totalOrder    int
	supplement    string
}

func (k distanceKey) less(other distanceKey) bool {
	if k.lengthScore != other.lengthScore {
		return k.lengthScore < other.lengthScore
	}
	if k.numericalDiff != other.numericalDiff {
		return k.numericalDiff < other.numericalDiff
	}
	if k.totalOrder != other.totalOrder {
		return k.totalOrder < other.totalOrder
	}
	// Higher supplements rank nearer.
	return k.supplement > other.supplement
}

// distanceTo computes the ranking key at the first part where the two
// versions differ. Identical versions get the all-zero key, which is
// the minimum.
func (v Version) distanceTo(other Version) distanceKey {
	for i := 0; i < len(v.parts) || i < len(other.parts); i++ {
		part, otherPart := v.part(i), other.part(i)
		if part == otherPart {
			continue
		}
		return distanceKey{
			lengthScore:   ^uint64(i),
			numericalDiff: absDiff(part.number, otherPart.number),
			totalOrder:    part.compare(otherPart),
			supplement:    otherPart.supplement,
		}
	}
	return distanceKey{}
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// MarshalYAML encodes the raw version string.
func (v Version) MarshalYAML() (any, error) { return v.raw, nil }

// UnmarshalYAML decodes any scalar as a version.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*v = NewVersion(s)
	return nil
}
