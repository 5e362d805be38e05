package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

const defaultLocaleManifestDoc = `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
PackageLocale: en-US
Publisher: Example Corporation
PublisherUrl: https://example.com
PackageName: Example App
License: MIT
ShortDescription: An example application
Moniker: exampleapp
Tags:
  - example
  - demo
Documentations:
  - DocumentLabel: User Guide
    DocumentUrl: https://example.com/docs
ManifestType: defaultLocale
ManifestVersion: 1.12.0
`

func TestDefaultLocaleManifestDecode(t *testing.T) {
	var m DefaultLocaleManifest
	require.NoError(t, yaml.Unmarshal([]byte(defaultLocaleManifestDoc), &m))

	assert.Equal(t, manifest.PackageIdentifier("Package.Identifier"), m.PackageIdentifier)
	assert.Equal(t, "en-US", m.PackageLocale.String())
	assert.Equal(t, Publisher("Example Corporation"), m.Publisher)
	assert.Equal(t, PackageName("Example App"), m.PackageName)
	assert.Equal(t, LicenseMIT, m.License)
	assert.Equal(t, Moniker("exampleapp"), m.Moniker)
	assert.Equal(t, []Tag{"example", "demo"}, m.Tags)
	assert.Equal(t, manifest.ManifestTypeDefaultLocale, m.ManifestType)

	require.Len(t, m.Documentations, 1)
	assert.Equal(t, DocumentLabel("User Guide"), m.Documentations[0].Label)
}

func TestDefaultLocaleManifestRejectsShortPublisher(t *testing.T) {
	doc := `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
Publisher: x
`
	var m DefaultLocaleManifest
	err := yaml.Unmarshal([]byte(doc), &m)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDefaultLocaleManifestDecodeRequiresMandatoryFields(t *testing.T) {
	// Identity fields alone are not enough: publisher, package name,
	// license, and short description are mandatory in the default locale.
	doc := `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
PackageLocale: en-US
ManifestType: defaultLocale
ManifestVersion: 1.12.0
`
	var m DefaultLocaleManifest
	err := yaml.Unmarshal([]byte(doc), &m)
	assert.ErrorIs(t, err, manifest.ErrFieldRequired)
}

func TestDefaultLocaleManifestRoundTrip(t *testing.T) {
	var m DefaultLocaleManifest
	require.NoError(t, yaml.Unmarshal([]byte(defaultLocaleManifestDoc), &m))

	out, err := yaml.Marshal(&m)
	require.NoError(t, err)

	var again DefaultLocaleManifest
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, m, again)
}

func TestDefaultLocaleManifestUpdate(t *testing.T) {
	var m DefaultLocaleManifest
	require.NoError(t, yaml.Unmarshal([]byte(defaultLocaleManifestDoc), &m))

	next, err := manifest.NewPackageVersion("2.0.0")
	require.NoError(t, err)
	m.Update(next)

	assert.Equal(t, next, m.PackageVersion)
	assert.Equal(t, manifest.ManifestTypeDefaultLocale, m.ManifestType)
	assert.Equal(t, manifest.DefaultManifestVersion(), m.ManifestVersion)
}

func TestLocaleManifestDecode(t *testing.T) {
	doc := `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
PackageLocale: de-DE
PackageName: Beispiel-App
ShortDescription: Eine Beispielanwendung
ManifestType: locale
ManifestVersion: 1.12.0
`
	var m LocaleManifest
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))

	assert.Equal(t, "de-DE", m.PackageLocale.String())
	assert.Equal(t, PackageName("Beispiel-App"), m.PackageName)
	assert.Empty(t, m.Publisher)
	assert.Equal(t, manifest.ManifestTypeLocale, m.ManifestType)
}

func TestLocaleManifestDecodeRequiresPackageLocale(t *testing.T) {
	doc := `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
ManifestType: locale
`
	var m LocaleManifest
	err := yaml.Unmarshal([]byte(doc), &m)
	assert.ErrorIs(t, err, manifest.ErrFieldRequired)
}
