package locale

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// IconFileType is the image format of a package icon.
type IconFileType string

// Valid icon file types.
const (
	IconFileTypePng  IconFileType = "png"
	IconFileTypeJpeg IconFileType = "jpeg"
	IconFileTypeIco  IconFileType = "ico"
)

// ParseIconFileType validates s as an icon file type.
func ParseIconFileType(s string) (IconFileType, error) {
	switch t := IconFileType(s); t {
	case IconFileTypePng, IconFileTypeJpeg, IconFileTypeIco:
		return t, nil
	}
	return "", fmt.Errorf("icon file type %q: %w", s, ErrUnknownIconFileType)
}

// String returns the file type as a plain string.
func (t IconFileType) String() string { return string(t) }

// UnmarshalYAML decodes and validates an icon file type.
func (t *IconFileType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseIconFileType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IconTheme is the visual theme an icon is designed for.
type IconTheme string

// Valid icon themes.
const (
	IconThemeDefault      IconTheme = "default"
	IconThemeLight        IconTheme = "light"
	IconThemeDark         IconTheme = "dark"
	IconThemeHighContrast IconTheme = "highContrast"
)

// ParseIconTheme validates s as an icon theme.
func ParseIconTheme(s string) (IconTheme, error) {
	switch t := IconTheme(s); t {
	case IconThemeDefault, IconThemeLight, IconThemeDark, IconThemeHighContrast:
		return t, nil
	}
	return "", fmt.Errorf("icon theme %q: %w", s, ErrUnknownIconTheme)
}

// String returns the theme as a plain string.
func (t IconTheme) String() string { return string(t) }

// UnmarshalYAML decodes and validates an icon theme.
func (t *IconTheme) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseIconTheme(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IconResolution is the pixel size of an icon, or "custom" for
// non-square or unusual sizes.
type IconResolution string

// Valid icon resolutions.
const (
	IconResolutionCustom IconResolution = "custom"
	IconResolution16     IconResolution = "16x16"
	IconResolution20     IconResolution = "20x20"
	IconResolution24     IconResolution = "24x24"
	IconResolution30     IconResolution = "30x30"
	IconResolution32     IconResolution = "32x32"
	IconResolution36     IconResolution = "36x36"
	IconResolution40     IconResolution = "40x40"
	IconResolution48     IconResolution = "48x48"
	IconResolution60     IconResolution = "60x60"
	IconResolution64     IconResolution = "64x64"
	IconResolution72     IconResolution = "72x72"
	IconResolution80     IconResolution = "80x80"
	IconResolution96     IconResolution = "96x96"
	IconResolution256    IconResolution = "256x256"
)

// ParseIconResolution validates s as an icon resolution.
func ParseIconResolution(s string) (IconResolution, error) {
	switch r := IconResolution(s); r {
	case IconResolutionCustom,
		IconResolution16, IconResolution20, IconResolution24,
		IconResolution30, IconResolution32, IconResolution36,
		IconResolution40, IconResolution48, IconResolution60,
		IconResolution64, IconResolution72, IconResolution80,
		IconResolution96, IconResolution256:
		return r, nil
	}
	return "", fmt.Errorf("icon resolution %q: %w", s, ErrUnknownIconResolution)
}

// String returns the resolution as a plain string.
func (r IconResolution) String() string { return string(r) }

// UnmarshalYAML decodes and validates an icon resolution.
func (r *IconResolution) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseIconResolution(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Icon is a package icon the client can display.
type Icon struct {
	URL        manifest.DecodedURL `yaml:"IconUrl"`
	FileType   IconFileType        `yaml:"IconFileType"`
	Resolution IconResolution      `yaml:"IconResolution,omitempty"`
	Theme      IconTheme           `yaml:"IconTheme,omitempty"`
	SHA256     manifest.SHA256     `yaml:"IconSha256,omitempty"`
}
