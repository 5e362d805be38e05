package installer

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MinimumOSVersion is the lowest Windows build an installer supports,
// as up to four dotted numeric parts. Missing parts read as zero.
type MinimumOSVersion struct {
	major uint16
	minor uint16
	build uint16
	rev   uint16
}

// OSVersion builds a MinimumOSVersion from its parts.
func OSVersion(major, minor, build, rev uint16) MinimumOSVersion {
	return MinimumOSVersion{major: major, minor: minor, build: build, rev: rev}
}

// ParseMinimumOSVersion parses a dotted version such as "10.0.17763.0".
func ParseMinimumOSVersion(s string) (MinimumOSVersion, error) {
	parts := strings.SplitN(s, ".", 4)
	var numbers [4]uint16
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return MinimumOSVersion{}, fmt.Errorf("os version %q: %w", s, ErrInvalidOSVersion)
		}
		numbers[i] = uint16(n)
	}
	return OSVersion(numbers[0], numbers[1], numbers[2], numbers[3]), nil
}

// String returns the version in "major.minor.build.revision" form.
func (v MinimumOSVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.major, v.minor, v.build, v.rev)
}

// Compare orders two versions part by part. It returns -1, 0, or 1.
func (v MinimumOSVersion) Compare(other MinimumOSVersion) int {
	left := [4]uint16{v.major, v.minor, v.build, v.rev}
	right := [4]uint16{other.major, other.minor, other.build, other.rev}
	for i := range left {
		if left[i] != right[i] {
			if left[i] < right[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// MarshalYAML encodes the version in its dotted form.
func (v MinimumOSVersion) MarshalYAML() (any, error) { return v.String(), nil }

// UnmarshalYAML decodes and validates a minimum OS version.
func (v *MinimumOSVersion) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMinimumOSVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
