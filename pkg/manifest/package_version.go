package manifest

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const packageVersionMaxLength = 128

// PackageVersion is a validated package version: non-empty, at most 128
// characters, with no control or filesystem-reserved characters. It
// embeds Version, so it orders and compares like one.
type PackageVersion struct {
	Version
}

// NewPackageVersion validates s and parses it into a PackageVersion.
func NewPackageVersion(s string) (PackageVersion, error) {
	if s == "" {
		return PackageVersion{}, fmt.Errorf("package version: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > packageVersionMaxLength {
		return PackageVersion{}, fmt.Errorf("package version %q: %w", s, ErrTooLong)
	}
	for _, r := range s {
		if unicode.IsControl(r) || isDisallowed(r) {
			return PackageVersion{}, fmt.Errorf("package version %q: %w", s, ErrDisallowedCharacter)
		}
	}
	return PackageVersion{Version: NewVersion(s)}, nil
}

// Equal reports whether two package versions order the same.
func (v PackageVersion) Equal(other PackageVersion) bool {
	return v.Version.Equal(other.Version)
}

// Compare returns -1, 0, or 1 ordering v against other.
func (v PackageVersion) Compare(other PackageVersion) int {
	return v.Version.Compare(other.Version)
}

// Less reports whether v orders before other.
func (v PackageVersion) Less(other PackageVersion) bool {
	return v.Version.Less(other.Version)
}

// Closest returns the index of the nearest candidate, or -1 if
// candidates is empty.
func (v PackageVersion) Closest(candidates []PackageVersion) int {
	versions := make([]Version, len(candidates))
	for i := range candidates {
		versions[i] = candidates[i].Version
	}
	return v.Version.Closest(versions)
}

// UnmarshalYAML decodes and validates a package version.
func (v *PackageVersion) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewPackageVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
