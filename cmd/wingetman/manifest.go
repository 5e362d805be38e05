// Manifest file loading shared by the wingetman subcommands.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
	"github.com/dukaforge/winget-types/pkg/manifest/installer"
	"github.com/dukaforge/winget-types/pkg/manifest/locale"
)

// manifestHeader carries the identity fields every manifest kind
// shares, used to dispatch on ManifestType before the full decode.
type manifestHeader struct {
	PackageIdentifier manifest.PackageIdentifier `yaml:"PackageIdentifier"`
	PackageVersion    manifest.PackageVersion    `yaml:"PackageVersion"`
	PackageLocale     manifest.LanguageTag       `yaml:"PackageLocale"`
	ManifestType      manifest.ManifestType      `yaml:"ManifestType"`
}

// loadedManifest is one decoded and validated manifest file.
type loadedManifest struct {
	header   manifestHeader
	document []byte
	parsed   any
}

// loadManifestFile reads path and decodes it as whichever manifest kind
// its ManifestType names. Decoding validates every field.
func loadManifestFile(path string) (*loadedManifest, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var header manifestHeader
	if err := yaml.Unmarshal(document, &header); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var parsed any
	switch header.ManifestType {
	case manifest.ManifestTypeInstaller:
		parsed = new(installer.Manifest)
	case manifest.ManifestTypeDefaultLocale:
		parsed = new(locale.DefaultLocaleManifest)
	case manifest.ManifestTypeLocale:
		parsed = new(locale.LocaleManifest)
	case manifest.ManifestTypeVersion:
		parsed = new(manifest.VersionManifest)
	default:
		return nil, fmt.Errorf("%s: %w", path, manifest.ErrUnknownManifestType)
	}

	if err := yaml.Unmarshal(document, parsed); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &loadedManifest{
		header:   header,
		document: document,
		parsed:   parsed,
	}, nil
}
