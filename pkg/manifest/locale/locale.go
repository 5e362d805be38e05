package locale

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// LocaleSchemaURL is the JSON schema for locale manifests.
const LocaleSchemaURL = "https://aka.ms/winget-manifest.locale.1.12.0.schema.json"

// LocaleManifest is a translation of the package metadata into one
// locale. Unlike the default locale, every text field is optional, and
// a translation never carries the moniker.
type LocaleManifest struct {
	PackageIdentifier manifest.PackageIdentifier `yaml:"PackageIdentifier"`
	PackageVersion    manifest.PackageVersion    `yaml:"PackageVersion"`
	PackageLocale     manifest.LanguageTag       `yaml:"PackageLocale"`

	Publisher           Publisher                    `yaml:"Publisher,omitempty"`
	PublisherURL        manifest.PublisherURL        `yaml:"PublisherUrl,omitempty"`
	PublisherSupportURL manifest.PublisherSupportURL `yaml:"PublisherSupportUrl,omitempty"`
	PrivacyURL          manifest.DecodedURL          `yaml:"PrivacyUrl,omitempty"`
	Author              Author                       `yaml:"Author,omitempty"`

	PackageName PackageName         `yaml:"PackageName,omitempty"`
	PackageURL  manifest.PackageURL `yaml:"PackageUrl,omitempty"`

	License      License               `yaml:"License,omitempty"`
	LicenseURL   manifest.LicenseURL   `yaml:"LicenseUrl,omitempty"`
	Copyright    Copyright             `yaml:"Copyright,omitempty"`
	CopyrightURL manifest.CopyrightURL `yaml:"CopyrightUrl,omitempty"`

	ShortDescription ShortDescription `yaml:"ShortDescription,omitempty"`
	Description      Description      `yaml:"Description,omitempty"`
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

// Validate checks that the identity fields are set. Everything else in
// a translation is optional.
func (m *LocaleManifest) Validate() error {
	switch {
	case m.PackageIdentifier == "":
		return fmt.Errorf("PackageIdentifier: %w", manifest.ErrFieldRequired)
	case m.PackageVersion.String() == "":
		return fmt.Errorf("PackageVersion: %w", manifest.ErrFieldRequired)
	case m.PackageLocale.IsZero():
		return fmt.Errorf("PackageLocale: %w", manifest.ErrFieldRequired)
	}
	return nil
}

// UnmarshalYAML decodes the manifest, fills the schema defaults for the
// type and syntax version, and rejects missing mandatory fields.
func (m *LocaleManifest) UnmarshalYAML(value *yaml.Node) error {
	type plain LocaleManifest
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	parsed := LocaleManifest(p)
	if parsed.ManifestType == "" {
		parsed.ManifestType = manifest.ManifestTypeLocale
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
func (m *LocaleManifest) Update(version manifest.PackageVersion) {
	m.PackageVersion = version
	m.ManifestType = manifest.ManifestTypeLocale
	m.ManifestVersion = manifest.DefaultManifestVersion()
}

// SchemaURL returns the locale manifest schema URL.
func (m *LocaleManifest) SchemaURL() string { return LocaleSchemaURL }

// Kind returns ManifestTypeLocale.
func (m *LocaleManifest) Kind() manifest.ManifestType {
	return manifest.ManifestTypeLocale
}
