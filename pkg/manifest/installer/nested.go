package installer

// NestedInstallerFile locates an installer inside an archive. Portable
// installers may also name the shell alias to register.
type NestedInstallerFile struct {
	RelativeFilePath     string               `yaml:"RelativeFilePath"`
	PortableCommandAlias PortableCommandAlias `yaml:"PortableCommandAlias,omitempty"`
}
