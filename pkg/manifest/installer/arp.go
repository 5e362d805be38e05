package installer

import (
	"github.com/dukaforge/winget-types/pkg/manifest"
	"github.com/dukaforge/winget-types/pkg/manifest/locale"
)

// AppsAndFeaturesEntry is the Apps and Features registry data an
// installer writes, when it differs from the package metadata.
type AppsAndFeaturesEntry struct {
	DisplayName    string            `yaml:"DisplayName,omitempty"`
	Publisher      string            `yaml:"Publisher,omitempty"`
	DisplayVersion *manifest.Version `yaml:"DisplayVersion,omitempty"`
	ProductCode    string            `yaml:"ProductCode,omitempty"`
	UpgradeCode    string            `yaml:"UpgradeCode,omitempty"`
	InstallerType  InstallerType     `yaml:"InstallerType,omitempty"`
}

// IsEmpty reports whether every field is unset.
func (e *AppsAndFeaturesEntry) IsEmpty() bool {
	return e.DisplayName == "" &&
		e.Publisher == "" &&
		e.DisplayVersion == nil &&
		e.ProductCode == "" &&
		e.UpgradeCode == "" &&
		e.InstallerType == ""
}

// Deduplicate clears fields that repeat the default locale: the display
// name against the package name, the publisher against the publisher,
// and the display version against the package version.
func (e *AppsAndFeaturesEntry) Deduplicate(defaultLocale *locale.DefaultLocaleManifest) {
	if e.DisplayName == defaultLocale.PackageName.String() {
		e.DisplayName = ""
	}
	if e.Publisher == defaultLocale.Publisher.String() {
		e.Publisher = ""
	}
	if e.DisplayVersion != nil && e.DisplayVersion.Equal(defaultLocale.PackageVersion.Version) {
		e.DisplayVersion = nil
	}
}
