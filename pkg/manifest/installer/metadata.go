package installer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// MetadataFileType classifies a file an installer puts on disk. Files
// without an explicit type are treated as other.
type MetadataFileType string

// Metadata file types, in their YAML encodings.
const (
	MetadataFileTypeLaunch    MetadataFileType = "launch"
	MetadataFileTypeUninstall MetadataFileType = "uninstall"
	MetadataFileTypeOther     MetadataFileType = "other"
)

// ParseMetadataFileType validates s as a metadata file type.
func ParseMetadataFileType(s string) (MetadataFileType, error) {
	switch t := MetadataFileType(s); t {
	case MetadataFileTypeLaunch, MetadataFileTypeUninstall, MetadataFileTypeOther:
		return t, nil
	}
	return "", fmt.Errorf("metadata file type %q: %w", s, ErrUnknownMetadataFileType)
}

// String returns the YAML encoding of the file type.
func (t MetadataFileType) String() string { return string(t) }

// UnmarshalYAML decodes and validates a metadata file type.
func (t *MetadataFileType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMetadataFileType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MetadataFile describes one file an installer writes, relative to the
// default install location.
type MetadataFile struct {
	RelativeFilePath    string           `yaml:"RelativeFilePath"`
	FileSHA256          manifest.SHA256  `yaml:"FileSha256,omitempty"`
	FileType            MetadataFileType `yaml:"FileType,omitempty"`
	InvocationParameter string           `yaml:"InvocationParameter,omitempty"`
	DisplayName         string           `yaml:"DisplayName,omitempty"`
}

// InstallationMetadata describes what an installer leaves on disk.
type InstallationMetadata struct {
	DefaultInstallLocation string         `yaml:"DefaultInstallLocation,omitempty"`
	Files                  []MetadataFile `yaml:"Files,omitempty"`
}

// IsEmpty reports whether no location or files are recorded.
func (m *InstallationMetadata) IsEmpty() bool {
	return m.DefaultInstallLocation == "" && len(m.Files) == 0
}
