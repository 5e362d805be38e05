package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestVersion is the schema syntax version of a manifest, a
// major.minor.patch triple.
type ManifestVersion struct {
	major uint16
	minor uint16
	patch uint16
}

// DefaultManifestVersion returns the manifest syntax version written by
// this library for installer and version manifests.
func DefaultManifestVersion() ManifestVersion {
	return ManifestVersion{major: 1, minor: 10, patch: 0}
}

// ParseManifestVersion parses a major.minor.patch string.
func ParseManifestVersion(s string) (ManifestVersion, error) {
	majorStr, rest, ok := strings.Cut(s, ".")
	if !ok {
		return ManifestVersion{}, fmt.Errorf("manifest version %q: %w", s, ErrManifestVersionNoMinor)
	}
	minorStr, patchStr, ok := strings.Cut(rest, ".")
	if !ok {
		return ManifestVersion{}, fmt.Errorf("manifest version %q: %w", s, ErrManifestVersionNoPatch)
	}
	var parts [3]uint16
	for i, component := range []string{majorStr, minorStr, patchStr} {
		n, err := strconv.ParseUint(component, 10, 16)
		if err != nil {
			return ManifestVersion{}, fmt.Errorf("manifest version component %q: %w", component, ErrManifestVersionPart)
		}
		parts[i] = uint16(n)
	}
	return ManifestVersion{major: parts[0], minor: parts[1], patch: parts[2]}, nil
}

// Major returns the major component.
func (v ManifestVersion) Major() uint16 { return v.major }

// Minor returns the minor component.
func (v ManifestVersion) Minor() uint16 { return v.minor }

// Patch returns the patch component.
func (v ManifestVersion) Patch() uint16 { return v.patch }

// IsZero reports whether the version is unset.
func (v ManifestVersion) IsZero() bool { return v == ManifestVersion{} }

// String formats the version as major.minor.patch.
func (v ManifestVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// MarshalYAML encodes the version as a major.minor.patch string.
func (v ManifestVersion) MarshalYAML() (any, error) { return v.String(), nil }

// UnmarshalYAML decodes and validates a manifest version string.
func (v *ManifestVersion) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseManifestVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
