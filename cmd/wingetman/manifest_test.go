package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/winget-types/pkg/manifest"
	"github.com/dukaforge/winget-types/pkg/manifest/installer"
	"github.com/dukaforge/winget-types/pkg/manifest/locale"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifestFileInstaller(t *testing.T) {
	path := writeManifest(t, "installer.yaml", `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
Installers:
  - Architecture: x64
    InstallerUrl: https://example.com/installer.msi
    InstallerSha256: BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD
ManifestType: installer
ManifestVersion: 1.10.0
`)

	loaded, err := loadManifestFile(path)
	require.NoError(t, err)

	assert.Equal(t, manifest.ManifestTypeInstaller, loaded.header.ManifestType)
	m, ok := loaded.parsed.(*installer.Manifest)
	require.True(t, ok)
	assert.Len(t, m.Installers, 1)
}

func TestLoadManifestFileDefaultLocale(t *testing.T) {
	path := writeManifest(t, "locale.yaml", `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
PackageLocale: en-US
Publisher: Example Corporation
PackageName: Example App
License: MIT
ShortDescription: An example application
ManifestType: defaultLocale
ManifestVersion: 1.12.0
`)

	loaded, err := loadManifestFile(path)
	require.NoError(t, err)

	m, ok := loaded.parsed.(*locale.DefaultLocaleManifest)
	require.True(t, ok)
	assert.Equal(t, locale.PackageName("Example App"), m.PackageName)
	assert.Equal(t, "en-US", loaded.header.PackageLocale.String())
}

func TestLoadManifestFileRejectsUnknownType(t *testing.T) {
	path := writeManifest(t, "bad.yaml", `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
ManifestType: singleton
`)

	_, err := loadManifestFile(path)
	assert.ErrorIs(t, err, manifest.ErrUnknownManifestType)
}

func TestLoadManifestFileRejectsMissingMandatoryField(t *testing.T) {
	path := writeManifest(t, "bad.yaml", `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
PackageLocale: en-US
ManifestType: defaultLocale
ManifestVersion: 1.12.0
`)

	_, err := loadManifestFile(path)
	assert.ErrorIs(t, err, manifest.ErrFieldRequired)
}

func TestLoadManifestFileRejectsInvalidField(t *testing.T) {
	path := writeManifest(t, "bad.yaml", `PackageIdentifier: Package.Identifier
PackageVersion: 1.2.3
Installers:
  - Architecture: mips
    InstallerUrl: https://example.com/installer.msi
    InstallerSha256: BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD
ManifestType: installer
ManifestVersion: 1.10.0
`)

	_, err := loadManifestFile(path)
	assert.ErrorIs(t, err, installer.ErrUnknownArchitecture)
}
