package locale

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// DefaultLocaleSchemaURL is the JSON schema for defaultLocale manifests.
const DefaultLocaleSchemaURL = "https://aka.ms/winget-manifest.defaultLocale.1.12.0.schema.json"

// DefaultLocaleManifest carries the package metadata for the locale
// shown when no translation matches the user's preferences. Publisher,
// package name, license, and short description are mandatory here;
// every other field is optional.
type DefaultLocaleManifest struct {
	PackageIdentifier manifest.PackageIdentifier `yaml:"PackageIdentifier"`
	PackageVersion    manifest.PackageVersion    `yaml:"PackageVersion"`
	PackageLocale     manifest.LanguageTag       `yaml:"PackageLocale"`

	Publisher           Publisher                    `yaml:"Publisher"`
	PublisherURL        manifest.PublisherURL        `yaml:"PublisherUrl,omitempty"`
	PublisherSupportURL manifest.PublisherSupportURL `yaml:"PublisherSupportUrl,omitempty"`
	PrivacyURL          manifest.DecodedURL          `yaml:"PrivacyUrl,omitempty"`
	Author              Author                       `yaml:"Author,omitempty"`

	PackageName PackageName         `yaml:"PackageName"`
	PackageURL  manifest.PackageURL `yaml:"PackageUrl,omitempty"`

	License      License               `yaml:"License"`
	LicenseURL   manifest.LicenseURL   `yaml:"LicenseUrl,omitempty"`
	Copyright    Copyright             `yaml:"Copyright,omitempty"`
	CopyrightURL manifest.CopyrightURL `yaml:"CopyrightUrl,omitempty"`

	ShortDescription ShortDescription `yaml:"ShortDescription"`
	Description      Description      `yaml:"Description,omitempty"`
	Moniker          Moniker          `yaml:"Moniker,omitempty"`
	Tags             []Tag            `yaml:"Tags,omitempty"`

	Agreements        []Agreement              `yaml:"Agreements,omitempty"`
	ReleaseNotes      ReleaseNotes             `yaml:"ReleaseNotes,omitempty"`
	ReleaseNotesURL   manifest.ReleaseNotesURL `yaml:"ReleaseNotesUrl,omitempty"`
	PurchaseURL       manifest.DecodedURL      `yaml:"PurchaseUrl,omitempty"`
	InstallationNotes InstallationNotes        `yaml:"InstallationNotes,omitempty"`
	Documentations    []Documentation          `yaml:"Documentations,omitempty"`
	Icons             []Icon                   `yaml:"Icons,omitempty"`

	ManifestType    manifest.ManifestType    `yaml:"ManifestType"`
	ManifestVersion manifest.ManifestVersion `yaml:"ManifestVersion"`
}

// Validate checks that every field the schema marks mandatory is set.
func (m *DefaultLocaleManifest) Validate() error {
	switch {
	case m.PackageIdentifier == "":
		return fmt.Errorf("PackageIdentifier: %w", manifest.ErrFieldRequired)
	case m.PackageVersion.String() == "":
		return fmt.Errorf("PackageVersion: %w", manifest.ErrFieldRequired)
	case m.PackageLocale.IsZero():
		return fmt.Errorf("PackageLocale: %w", manifest.ErrFieldRequired)
	case m.Publisher == "":
		return fmt.Errorf("Publisher: %w", manifest.ErrFieldRequired)
	case m.PackageName == "":
		return fmt.Errorf("PackageName: %w", manifest.ErrFieldRequired)
	case m.License == "":
		return fmt.Errorf("License: %w", manifest.ErrFieldRequired)
	case m.ShortDescription == "":
		return fmt.Errorf("ShortDescription: %w", manifest.ErrFieldRequired)
	}
	return nil
}

// UnmarshalYAML decodes the manifest, fills the schema defaults for the
// type and syntax version, and rejects missing mandatory fields.
func (m *DefaultLocaleManifest) UnmarshalYAML(value *yaml.Node) error {
	type plain DefaultLocaleManifest
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	parsed := DefaultLocaleManifest(p)
	if parsed.ManifestType == "" {
		parsed.ManifestType = manifest.ManifestTypeDefaultLocale
	}
	if parsed.ManifestVersion.IsZero() {
		parsed.ManifestVersion = manifest.DefaultManifestVersion()
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Update points the manifest at a new package version and resets the
// type and syntax version to the values this library writes.
func (m *DefaultLocaleManifest) Update(version manifest.PackageVersion) {
	m.PackageVersion = version
	m.ManifestType = manifest.ManifestTypeDefaultLocale
	m.ManifestVersion = manifest.DefaultManifestVersion()
}

// SchemaURL returns the defaultLocale manifest schema URL.
func (m *DefaultLocaleManifest) SchemaURL() string { return DefaultLocaleSchemaURL }

// Kind returns ManifestTypeDefaultLocale.
func (m *DefaultLocaleManifest) Kind() manifest.ManifestType {
	return manifest.ManifestTypeDefaultLocale
}
