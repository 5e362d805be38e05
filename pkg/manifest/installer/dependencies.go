package installer

import "github.com/dukaforge/winget-types/pkg/manifest"

// PackageDependency names another package from the same source that
// must be installed first, optionally at a minimum version.
type PackageDependency struct {
	PackageIdentifier manifest.PackageIdentifier `yaml:"PackageIdentifier"`
	MinimumVersion    *manifest.PackageVersion   `yaml:"MinimumVersion,omitempty"`
}

// Dependencies lists everything a package needs before it can install.
type Dependencies struct {
	WindowsFeatures  []string            `yaml:"WindowsFeatures,omitempty"`
	WindowsLibraries []string            `yaml:"WindowsLibraries,omitempty"`
	Package          []PackageDependency `yaml:"PackageDependencies,omitempty"`
	External         []string            `yaml:"ExternalDependencies,omitempty"`
}

// IsEmpty reports whether no dependency of any kind is listed.
func (d *Dependencies) IsEmpty() bool {
	return len(d.WindowsFeatures) == 0 &&
		len(d.WindowsLibraries) == 0 &&
		len(d.Package) == 0 &&
		len(d.External) == 0
}
