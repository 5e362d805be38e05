package installer

import (
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// SchemaURL is the JSON schema an installer manifest declares.
const SchemaURL = "https://aka.ms/winget-manifest.installer.1.10.0.schema.json"

// Manifest is the installer manifest for one version of a package. It
// carries the downloadable installers plus the defaults shared between
// them.
type Manifest struct {
	PackageIdentifier manifest.PackageIdentifier `yaml:"PackageIdentifier"`
	PackageVersion    manifest.PackageVersion    `yaml:"PackageVersion"`
	Channel           Channel                    `yaml:"Channel,omitempty"`

	Locale                      manifest.LanguageTag       `yaml:"InstallerLocale,omitempty"`
	Platform                    Platform                   `yaml:"Platform,omitempty"`
	MinimumOSVersion            *MinimumOSVersion          `yaml:"MinimumOSVersion,omitempty"`
	Type                        InstallerType              `yaml:"InstallerType,omitempty"`
	NestedInstallerType         NestedInstallerType        `yaml:"NestedInstallerType,omitempty"`
	NestedInstallerFiles        []NestedInstallerFile      `yaml:"NestedInstallerFiles,omitempty"`
	Scope                       Scope                      `yaml:"Scope,omitempty"`
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

	Installers []Installer `yaml:"Installers"`

	ManifestType    manifest.ManifestType    `yaml:"ManifestType"`
	ManifestVersion manifest.ManifestVersion `yaml:"ManifestVersion"`
}

// SchemaURL returns the JSON schema the manifest declares.
func (m *Manifest) SchemaURL() string { return SchemaURL }

// Kind returns the manifest type.
func (m *Manifest) Kind() manifest.ManifestType { return manifest.ManifestTypeInstaller }

// Validate checks that every field the schema marks mandatory is set.
func (m *Manifest) Validate() error {
	switch {
	case m.PackageIdentifier == "":
		return fmt.Errorf("PackageIdentifier: %w", manifest.ErrFieldRequired)
	case m.PackageVersion.String() == "":
		return fmt.Errorf("PackageVersion: %w", manifest.ErrFieldRequired)
	case len(m.Installers) == 0:
		return fmt.Errorf("Installers: %w", manifest.ErrFieldRequired)
	}
	return nil
}

// UnmarshalYAML decodes the manifest, fills the schema defaults for the
// type and syntax version, and rejects missing mandatory fields.
func (m *Manifest) UnmarshalYAML(value *yaml.Node) error {
	type plain Manifest
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	parsed := Manifest(p)
	if parsed.ManifestType == "" {
		parsed.ManifestType = manifest.ManifestTypeInstaller
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

// lift moves a field to the manifest root when every installer holds
// the same value, clearing it from the installers. Otherwise the root
// value is reset, since the installers disagree and each must keep its
// own.
func lift[T any](root *T, installers []Installer, field func(*Installer) *T) {
	var zero T
	if len(installers) == 0 {
		*root = zero
		return
	}
	first := *field(&installers[0])
	for idx := 1; idx < len(installers); idx++ {
		if !reflect.DeepEqual(*field(&installers[idx]), first) {
			*root = zero
			return
		}
	}
	*root = first
	for idx := range installers {
		*field(&installers[idx]) = zero
	}
}

// Optimize normalizes the manifest: values shared by every installer
// move up to the manifest root, the manifest version is reset to the
// current default, and the installers are sorted and deduplicated. The
// custom switch always stays per installer.
func (m *Manifest) Optimize() {
	ins := m.Installers

	lift(&m.Locale, ins, func(i *Installer) *manifest.LanguageTag { return &i.Locale })
	lift(&m.Platform, ins, func(i *Installer) *Platform { return &i.Platform })
	lift(&m.MinimumOSVersion, ins, func(i *Installer) **MinimumOSVersion { return &i.MinimumOSVersion })
	lift(&m.Type, ins, func(i *Installer) *InstallerType { return &i.Type })
	lift(&m.NestedInstallerType, ins, func(i *Installer) *NestedInstallerType { return &i.NestedInstallerType })
	lift(&m.NestedInstallerFiles, ins, func(i *Installer) *[]NestedInstallerFile { return &i.NestedInstallerFiles })
	lift(&m.Scope, ins, func(i *Installer) *Scope { return &i.Scope })
	lift(&m.InstallModes, ins, func(i *Installer) *InstallModes { return &i.InstallModes })
	lift(&m.Switches.Silent, ins, func(i *Installer) *Switch { return &i.Switches.Silent })
	lift(&m.Switches.SilentWithProgress, ins, func(i *Installer) *Switch { return &i.Switches.SilentWithProgress })
	lift(&m.Switches.Interactive, ins, func(i *Installer) *Switch { return &i.Switches.Interactive })
	lift(&m.Switches.InstallLocation, ins, func(i *Installer) *Switch { return &i.Switches.InstallLocation })
	lift(&m.Switches.Log, ins, func(i *Installer) *Switch { return &i.Switches.Log })
	lift(&m.Switches.Upgrade, ins, func(i *Installer) *Switch { return &i.Switches.Upgrade })
	lift(&m.Switches.Repair, ins, func(i *Installer) *Switch { return &i.Switches.Repair })
	lift(&m.SuccessCodes, ins, func(i *Installer) *[]SuccessCode { return &i.SuccessCodes })
	lift(&m.ExpectedReturnCodes, ins, func(i *Installer) *[]ExpectedReturnCode { return &i.ExpectedReturnCodes })
	lift(&m.UpgradeBehavior, ins, func(i *Installer) *UpgradeBehavior { return &i.UpgradeBehavior })
	lift(&m.Commands, ins, func(i *Installer) *[]Command { return &i.Commands })
	lift(&m.Protocols, ins, func(i *Installer) *[]Protocol { return &i.Protocols })
	lift(&m.FileExtensions, ins, func(i *Installer) *[]FileExtension { return &i.FileExtensions })
	lift(&m.Dependencies.WindowsFeatures, ins, func(i *Installer) *[]string { return &i.Dependencies.WindowsFeatures })
	lift(&m.Dependencies.WindowsLibraries, ins, func(i *Installer) *[]string { return &i.Dependencies.WindowsLibraries })
	lift(&m.Dependencies.Package, ins, func(i *Installer) *[]PackageDependency { return &i.Dependencies.Package })
	lift(&m.Dependencies.External, ins, func(i *Installer) *[]string { return &i.Dependencies.External })
	lift(&m.PackageFamilyName, ins, func(i *Installer) *PackageFamilyName { return &i.PackageFamilyName })
	lift(&m.ProductCode, ins, func(i *Installer) *string { return &i.ProductCode })
	lift(&m.Capabilities, ins, func(i *Installer) *[]Capability { return &i.Capabilities })
	lift(&m.RestrictedCapabilities, ins, func(i *Installer) *[]RestrictedCapability { return &i.RestrictedCapabilities })
	lift(&m.Markets, ins, func(i *Installer) **Markets { return &i.Markets })
	lift(&m.AbortsTerminal, ins, func(i *Installer) *bool { return &i.AbortsTerminal })
	lift(&m.ReleaseDate, ins, func(i *Installer) **manifest.Date { return &i.ReleaseDate })
	lift(&m.InstallLocationRequired, ins, func(i *Installer) *bool { return &i.InstallLocationRequired })
	lift(&m.RequireExplicitUpgrade, ins, func(i *Installer) *bool { return &i.RequireExplicitUpgrade })
	lift(&m.DisplayInstallWarnings, ins, func(i *Installer) *bool { return &i.DisplayInstallWarnings })
	lift(&m.UnsupportedOSArchitectures, ins, func(i *Installer) *UnsupportedOSArchitectures { return &i.UnsupportedOSArchitectures })
	lift(&m.UnsupportedArguments, ins, func(i *Installer) *UnsupportedArguments { return &i.UnsupportedArguments })
	lift(&m.AppsAndFeaturesEntries, ins, func(i *Installer) *[]AppsAndFeaturesEntry { return &i.AppsAndFeaturesEntries })
	lift(&m.ElevationRequirement, ins, func(i *Installer) *ElevationRequirement { return &i.ElevationRequirement })
	lift(&m.InstallationMetadata, ins, func(i *Installer) *InstallationMetadata { return &i.InstallationMetadata })
	lift(&m.DownloadCommandProhibited, ins, func(i *Installer) *bool { return &i.DownloadCommandProhibited })
	lift(&m.RepairBehavior, ins, func(i *Installer) *RepairBehavior { return &i.RepairBehavior })
	lift(&m.ArchiveBinariesDependOnPath, ins, func(i *Installer) *bool { return &i.ArchiveBinariesDependOnPath })

	m.ManifestVersion = manifest.DefaultManifestVersion()

	sort.SliceStable(m.Installers, func(a, b int) bool {
		left, right := &m.Installers[a], &m.Installers[b]
		if left.Architecture != right.Architecture {
			return left.Architecture < right.Architecture
		}
		if left.Type != right.Type {
			return left.Type < right.Type
		}
		if left.Scope != right.Scope {
			return left.Scope < right.Scope
		}
		return left.URL < right.URL
	})
	m.Installers = dedupInstallers(m.Installers)
}

// dedupInstallers drops exact duplicates, keeping the first of each.
// The sort key covers only a few fields, so equal installers are not
// necessarily adjacent.
func dedupInstallers(installers []Installer) []Installer {
	out := installers[:0]
	for idx := range installers {
		seen := false
		for kept := range out {
			if reflect.DeepEqual(installers[idx], out[kept]) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, installers[idx])
		}
	}
	return out
}
