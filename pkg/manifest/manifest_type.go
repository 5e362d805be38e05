package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestType identifies which of the four manifest kinds a YAML
// document contains.
type ManifestType string

// Manifest kinds, in their YAML encodings.
const (
	ManifestTypeInstaller     ManifestType = "installer"
	ManifestTypeDefaultLocale ManifestType = "defaultLocale"
	ManifestTypeLocale        ManifestType = "locale"
	ManifestTypeVersion       ManifestType = "version"
)

// ParseManifestType validates s as one of the four manifest kinds.
func ParseManifestType(s string) (ManifestType, error) {
	switch t := ManifestType(s); t {
	case ManifestTypeInstaller, ManifestTypeDefaultLocale, ManifestTypeLocale, ManifestTypeVersion:
		return t, nil
	}
	return "", fmt.Errorf("manifest type %q: %w", s, ErrUnknownManifestType)
}

// String returns the YAML encoding of the type.
func (t ManifestType) String() string { return string(t) }

// UnmarshalYAML decodes and validates a manifest type.
func (t *ManifestType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseManifestType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Manifest is implemented by the four concrete manifest structs.
type Manifest interface {
	// SchemaURL returns the JSON schema URL the manifest declares.
	SchemaURL() string
	// Kind returns the manifest type the struct models.
	Kind() ManifestType
}

// GenericManifest decodes only the ManifestType field of a manifest, so
// callers can detect which concrete type to decode the document into.
type GenericManifest struct {
	ManifestType ManifestType `yaml:"ManifestType"`
}

// DetectType returns the manifest type declared by a YAML document.
func DetectType(data []byte) (ManifestType, error) {
	var generic GenericManifest
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return "", fmt.Errorf("detect manifest type: %w", err)
	}
	if generic.ManifestType == "" {
		return "", fmt.Errorf("detect manifest type: %w", ErrUnknownManifestType)
	}
	return generic.ManifestType, nil
}
