package installer

import (
	"reflect"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// Installer is one downloadable artifact of a package release. Fields
// left unset fall back to the manifest-level value, when one exists.
type Installer struct {
	Locale                      manifest.LanguageTag       `yaml:"InstallerLocale,omitempty"`
	Platform                    Platform                   `yaml:"Platform,omitempty"`
	MinimumOSVersion            *MinimumOSVersion          `yaml:"MinimumOSVersion,omitempty"`
	Architecture                Architecture               `yaml:"Architecture"`
	Type                        InstallerType              `yaml:"InstallerType,omitempty"`
	NestedInstallerType         NestedInstallerType        `yaml:"NestedInstallerType,omitempty"`
	NestedInstallerFiles        []NestedInstallerFile      `yaml:"NestedInstallerFiles,omitempty"`
	Scope                       Scope                      `yaml:"Scope,omitempty"`
	URL                         manifest.DecodedURL        `yaml:"InstallerUrl"`
	SHA256                      manifest.SHA256            `yaml:"InstallerSha256"`
	SignatureSHA256             manifest.SHA256            `yaml:"SignatureSha256,omitempty"`
	InstallModes                InstallModes               `yaml:"InstallModes,omitempty"`
	Switches                    Switches                   `yaml:"InstallerSwitches,omitempty"`
	SuccessCodes                []SuccessCode              `yaml:"InstallerSuccessCodes,omitempty"`
	ExpectedReturnCodes         []ExpectedReturnCode       `yaml:"ExpectedReturnCodes,omitempty"`
	UpgradeBehavior             UpgradeBehavior            `yaml:"UpgradeBehavior,omitempty"`
	Commands                    []Command                  `yaml:"Commands,omitempty"`
	Protocols                   []Protocol                 `yaml:"Protocols,omitempty"`
	FileExtensions              []FileExtension            `yaml:"FileExtensions,omitempty"`
	Dependencies                Dependencies               `yaml:"Dependencies,omitempty"`
	PackageFamilyName           PackageFamilyName          `yaml:"PackageFamilyName,omitempty"`
	ProductCode                 string                     `yaml:"ProductCode,omitempty"`
	Capabilities                []Capability               `yaml:"Capabilities,omitempty"`
	RestrictedCapabilities      []RestrictedCapability     `yaml:"RestrictedCapabilities,omitempty"`
	Markets                     *Markets                   `yaml:"Markets,omitempty"`
	AbortsTerminal              bool                       `yaml:"InstallerAbortsTerminal,omitempty"`
	ReleaseDate                 *manifest.Date             `yaml:"ReleaseDate,omitempty"`
	InstallLocationRequired     bool                       `yaml:"InstallLocationRequired,omitempty"`
	RequireExplicitUpgrade      bool                       `yaml:"RequireExplicitUpgrade,omitempty"`
	DisplayInstallWarnings      bool                       `yaml:"DisplayInstallWarnings,omitempty"`
	UnsupportedOSArchitectures  UnsupportedOSArchitectures `yaml:"UnsupportedOSArchitectures,omitempty"`
	UnsupportedArguments        UnsupportedArguments       `yaml:"UnsupportedArguments,omitempty"`
	AppsAndFeaturesEntries      []AppsAndFeaturesEntry     `yaml:"AppsAndFeaturesEntries,omitempty"`
	ElevationRequirement        ElevationRequirement       `yaml:"ElevationRequirement,omitempty"`
	InstallationMetadata        InstallationMetadata       `yaml:"InstallationMetadata,omitempty"`
	DownloadCommandProhibited   bool                       `yaml:"DownloadCommandProhibited,omitempty"`
	RepairBehavior              RepairBehavior             `yaml:"RepairBehavior,omitempty"`
	ArchiveBinariesDependOnPath bool                       `yaml:"ArchiveBinariesDependOnPath,omitempty"`
	Authentication              *Authentication            `yaml:"Authentication,omitempty"`
}

// fillZero copies src into dst when dst still holds its zero value.
func fillZero[T any](dst *T, src T) {
	var zero T
	if reflect.DeepEqual(*dst, zero) {
		*dst = src
	}
}

// mergeSwitch appends the parts of src that dst is missing, compared
// case insensitively. Both sides must already be set.
func mergeSwitch(dst *Switch, src Switch) {
	if len(*dst) == 0 || len(src) == 0 {
		return
	}
	for _, part := range src {
		if !dst.Contains(part) {
			*dst = append(*dst, part)
		}
	}
}

// MergeWith fills the unset fields of the installer from other and
// returns the result. Fields the installer already sets win; switches
// that both sides set are unioned part by part. The identity fields,
// architecture, URL, and hashes, are never taken from other.
func (i Installer) MergeWith(other Installer) Installer {
	fillZero(&i.Locale, other.Locale)
	fillZero(&i.Platform, other.Platform)
	fillZero(&i.MinimumOSVersion, other.MinimumOSVersion)
	fillZero(&i.Type, other.Type)
	fillZero(&i.NestedInstallerType, other.NestedInstallerType)
	fillZero(&i.NestedInstallerFiles, other.NestedInstallerFiles)
	fillZero(&i.Scope, other.Scope)
	fillZero(&i.InstallModes, other.InstallModes)
	fillZero(&i.SuccessCodes, other.SuccessCodes)
	fillZero(&i.ExpectedReturnCodes, other.ExpectedReturnCodes)
	fillZero(&i.UpgradeBehavior, other.UpgradeBehavior)
	fillZero(&i.Commands, other.Commands)
	fillZero(&i.Protocols, other.Protocols)
	fillZero(&i.FileExtensions, other.FileExtensions)
	fillZero(&i.Dependencies, other.Dependencies)
	fillZero(&i.PackageFamilyName, other.PackageFamilyName)
	fillZero(&i.ProductCode, other.ProductCode)
	fillZero(&i.Capabilities, other.Capabilities)
	fillZero(&i.RestrictedCapabilities, other.RestrictedCapabilities)
	fillZero(&i.Markets, other.Markets)
	fillZero(&i.AbortsTerminal, other.AbortsTerminal)
	fillZero(&i.ReleaseDate, other.ReleaseDate)
	fillZero(&i.InstallLocationRequired, other.InstallLocationRequired)
	fillZero(&i.RequireExplicitUpgrade, other.RequireExplicitUpgrade)
	fillZero(&i.DisplayInstallWarnings, other.DisplayInstallWarnings)
	fillZero(&i.UnsupportedOSArchitectures, other.UnsupportedOSArchitectures)
	fillZero(&i.UnsupportedArguments, other.UnsupportedArguments)
	fillZero(&i.AppsAndFeaturesEntries, other.AppsAndFeaturesEntries)
	fillZero(&i.ElevationRequirement, other.ElevationRequirement)
	fillZero(&i.InstallationMetadata, other.InstallationMetadata)
	fillZero(&i.DownloadCommandProhibited, other.DownloadCommandProhibited)
	fillZero(&i.RepairBehavior, other.RepairBehavior)
	fillZero(&i.ArchiveBinariesDependOnPath, other.ArchiveBinariesDependOnPath)

	mergeSwitch(&i.Switches.Silent, other.Switches.Silent)
	mergeSwitch(&i.Switches.SilentWithProgress, other.Switches.SilentWithProgress)
	mergeSwitch(&i.Switches.Interactive, other.Switches.Interactive)
	mergeSwitch(&i.Switches.InstallLocation, other.Switches.InstallLocation)
	mergeSwitch(&i.Switches.Log, other.Switches.Log)
	mergeSwitch(&i.Switches.Upgrade, other.Switches.Upgrade)
	mergeSwitch((*Switch)(&i.Switches.Custom), Switch(other.Switches.Custom))
	mergeSwitch(&i.Switches.Repair, other.Switches.Repair)

	return i
}
