package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// VersionSchemaURL is the JSON schema for version manifests.
const VersionSchemaURL = "https://aka.ms/winget-manifest.version.1.10.0.schema.json"

// VersionManifest is the top-level manifest naming a package version's
// default locale.
type VersionManifest struct {
	PackageIdentifier PackageIdentifier `yaml:"PackageIdentifier"`
	PackageVersion    PackageVersion    `yaml:"PackageVersion"`
	DefaultLocale     LanguageTag       `yaml:"DefaultLocale"`
	ManifestType      ManifestType      `yaml:"ManifestType"`
	ManifestVersion   ManifestVersion   `yaml:"ManifestVersion"`
}

// Validate checks that every field the schema marks mandatory is set.
func (m *VersionManifest) Validate() error {
	switch {
	case m.PackageIdentifier == "":
		return fmt.Errorf("PackageIdentifier: %w", ErrFieldRequired)
	case m.PackageVersion.String() == "":
		return fmt.Errorf("PackageVersion: %w", ErrFieldRequired)
	case m.DefaultLocale.IsZero():
		return fmt.Errorf("DefaultLocale: %w", ErrFieldRequired)
	}
	return nil
}

// UnmarshalYAML decodes the manifest, fills the schema defaults for the
// type and syntax version, and rejects missing mandatory fields.
func (m *VersionManifest) UnmarshalYAML(value *yaml.Node) error {
	type plain VersionManifest
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	parsed := VersionManifest(p)
	if parsed.ManifestType == "" {
		parsed.ManifestType = ManifestTypeVersion
	}
	if parsed.ManifestVersion.IsZero() {
		parsed.ManifestVersion = DefaultManifestVersion()
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Update points the manifest at a new package version and resets the
// type and syntax version to the values this library writes.
func (m *VersionManifest) Update(version PackageVersion) {
	m.PackageVersion = version
	m.ManifestType = ManifestTypeVersion
	m.ManifestVersion = DefaultManifestVersion()
}

// SchemaURL returns the version manifest schema URL.
func (m *VersionManifest) SchemaURL() string { return VersionSchemaURL }

// Kind returns ManifestTypeVersion.
func (m *VersionManifest) Kind() ManifestType { return ManifestTypeVersion }
