package installer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// validFileExtensions are the file extensions an installer URL may
// carry, in the order the architecture fallback probes them.
var validFileExtensions = []string{"msix", "msi", "appx", "exe", "zip", "msixbundle", "appxbundle"}

// InstallerType identifies the installer technology of a package.
type InstallerType string

// Installer types, in their YAML encodings.
const (
	InstallerTypeMsix     InstallerType = "msix"
	InstallerTypeMsi      InstallerType = "msi"
	InstallerTypeAppx     InstallerType = "appx"
	InstallerTypeExe      InstallerType = "exe"
	InstallerTypeZip      InstallerType = "zip"
	InstallerTypeInno     InstallerType = "inno"
	InstallerTypeNullsoft InstallerType = "nullsoft"
	InstallerTypeWix      InstallerType = "wix"
	InstallerTypeBurn     InstallerType = "burn"
	InstallerTypePwa      InstallerType = "pwa"
	InstallerTypePortable InstallerType = "portable"
	InstallerTypeFont     InstallerType = "font"
)

// ParseInstallerType validates s as an installer type.
func ParseInstallerType(s string) (InstallerType, error) {
	switch t := InstallerType(s); t {
	case InstallerTypeMsix, InstallerTypeMsi, InstallerTypeAppx, InstallerTypeExe,
		InstallerTypeZip, InstallerTypeInno, InstallerTypeNullsoft, InstallerTypeWix,
		InstallerTypeBurn, InstallerTypePwa, InstallerTypePortable, InstallerTypeFont:
		return t, nil
	}
	return "", fmt.Errorf("installer type %q: %w", s, ErrUnknownInstallerType)
}

// String returns the YAML encoding of the installer type.
func (t InstallerType) String() string { return string(t) }

// UnmarshalYAML decodes and validates an installer type.
func (t *InstallerType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseInstallerType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NestedInstallerType identifies the installer technology of a file
// inside an archive. Archives cannot nest zip or pwa installers.
type NestedInstallerType string

// Nested installer types, in their YAML encodings.
const (
	NestedInstallerTypeMsix     NestedInstallerType = "msix"
	NestedInstallerTypeMsi      NestedInstallerType = "msi"
	NestedInstallerTypeAppx     NestedInstallerType = "appx"
	NestedInstallerTypeExe      NestedInstallerType = "exe"
	NestedInstallerTypeInno     NestedInstallerType = "inno"
	NestedInstallerTypeNullsoft NestedInstallerType = "nullsoft"
	NestedInstallerTypeWix      NestedInstallerType = "wix"
	NestedInstallerTypeBurn     NestedInstallerType = "burn"
	NestedInstallerTypePortable NestedInstallerType = "portable"
	NestedInstallerTypeFont     NestedInstallerType = "font"
)

// ParseNestedInstallerType validates s as a nested installer type.
func ParseNestedInstallerType(s string) (NestedInstallerType, error) {
	switch t := NestedInstallerType(s); t {
	case NestedInstallerTypeMsix, NestedInstallerTypeMsi, NestedInstallerTypeAppx,
		NestedInstallerTypeExe, NestedInstallerTypeInno, NestedInstallerTypeNullsoft,
		NestedInstallerTypeWix, NestedInstallerTypeBurn, NestedInstallerTypePortable,
		NestedInstallerTypeFont:
		return t, nil
	}
	return "", fmt.Errorf("nested installer type %q: %w", s, ErrUnknownNestedInstallerType)
}

// String returns the YAML encoding of the nested installer type.
func (t NestedInstallerType) String() string { return string(t) }

// Nest converts an installer type to its nested equivalent. The second
// return value is false for zip and pwa, which cannot be nested.
func (t InstallerType) Nest() (NestedInstallerType, bool) {
	switch t {
	case InstallerTypeZip, InstallerTypePwa:
		return "", false
	default:
		return NestedInstallerType(t), true
	}
}

// UnmarshalYAML decodes and validates a nested installer type.
func (t *NestedInstallerType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseNestedInstallerType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
