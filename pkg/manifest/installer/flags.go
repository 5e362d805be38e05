package installer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// flagName binds one bit of a flag set to its YAML string. Slices of
// flagName are ordered by bit value, which fixes the encoding order.
type flagName struct {
	bit  uint8
	name string
}

func encodeFlags(v uint8, names []flagName) []string {
	out := make([]string, 0, len(names))
	for _, fn := range names {
		if v&fn.bit != 0 {
			out = append(out, fn.name)
		}
	}
	return out
}

func decodeFlags(value *yaml.Node, names []flagName, unknown error) (uint8, error) {
	var entries []string
	if err := value.Decode(&entries); err != nil {
		return 0, err
	}
	var v uint8
entries:
	for _, entry := range entries {
		for _, fn := range names {
			if entry == fn.name {
				v |= fn.bit
				continue entries
			}
		}
		return 0, fmt.Errorf("%q: %w", entry, unknown)
	}
	return v, nil
}

// InstallModes is the set of install experiences an installer supports.
// It encodes as a sorted YAML sequence of mode names.
type InstallModes uint8

// Install mode bits.
const (
	InstallModeInteractive InstallModes = 1 << iota
	InstallModeSilent
	InstallModeSilentWithProgress
)

var installModeNames = []flagName{
	{uint8(InstallModeInteractive), "interactive"},
	{uint8(InstallModeSilent), "silent"},
	{uint8(InstallModeSilentWithProgress), "silentWithProgress"},
}

// Has reports whether all modes in mode are set.
func (m InstallModes) Has(mode InstallModes) bool { return m&mode == mode }

// IsZero reports whether no mode is set. The zero set is omitted from
// YAML output.
func (m InstallModes) IsZero() bool { return m == 0 }

// MarshalYAML encodes the set as a sorted sequence of mode names.
func (m InstallModes) MarshalYAML() (any, error) {
	return encodeFlags(uint8(m), installModeNames), nil
}

// UnmarshalYAML decodes and validates a sequence of mode names.
func (m *InstallModes) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeFlags(value, installModeNames, ErrUnknownInstallMode)
	if err != nil {
		return err
	}
	*m = InstallModes(v)
	return nil
}

// UnsupportedArguments is the set of client arguments an installer does
// not support. Only the log and location arguments can be named.
type UnsupportedArguments uint8

// Unsupported argument bits.
const (
	UnsupportedArgumentLog UnsupportedArguments = 1 << iota
	UnsupportedArgumentLocation
)

var unsupportedArgumentNames = []flagName{
	{uint8(UnsupportedArgumentLog), "Log"},
	{uint8(UnsupportedArgumentLocation), "Location"},
}

// Has reports whether all arguments in arg are set.
func (u UnsupportedArguments) Has(arg UnsupportedArguments) bool { return u&arg == arg }

// IsZero reports whether no argument is set.
func (u UnsupportedArguments) IsZero() bool { return u == 0 }

// MarshalYAML encodes the set as a sorted sequence of argument names.
func (u UnsupportedArguments) MarshalYAML() (any, error) {
	return encodeFlags(uint8(u), unsupportedArgumentNames), nil
}

// UnmarshalYAML decodes and validates a sequence of argument names.
func (u *UnsupportedArguments) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeFlags(value, unsupportedArgumentNames, ErrUnknownUnsupportedArgument)
	if err != nil {
		return err
	}
	*u = UnsupportedArguments(v)
	return nil
}

// UnsupportedOSArchitectures is the set of architectures a package is
// known not to work on, generally under emulation.
type UnsupportedOSArchitectures uint8

// Unsupported architecture bits.
const (
	UnsupportedOSArchitectureX86 UnsupportedOSArchitectures = 1 << iota
	UnsupportedOSArchitectureX64
	UnsupportedOSArchitectureArm
	UnsupportedOSArchitectureArm64
)

var unsupportedOSArchitectureNames = []flagName{
	{uint8(UnsupportedOSArchitectureX86), "x86"},
	{uint8(UnsupportedOSArchitectureX64), "x64"},
	{uint8(UnsupportedOSArchitectureArm), "arm"},
	{uint8(UnsupportedOSArchitectureArm64), "arm64"},
}

// Has reports whether all architectures in arch are set.
func (u UnsupportedOSArchitectures) Has(arch UnsupportedOSArchitectures) bool {
	return u&arch == arch
}

// IsZero reports whether no architecture is set.
func (u UnsupportedOSArchitectures) IsZero() bool { return u == 0 }

// MarshalYAML encodes the set as a sorted sequence of architecture
// names.
func (u UnsupportedOSArchitectures) MarshalYAML() (any, error) {
	return encodeFlags(uint8(u), unsupportedOSArchitectureNames), nil
}

// UnmarshalYAML decodes and validates a sequence of architecture names.
func (u *UnsupportedOSArchitectures) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeFlags(value, unsupportedOSArchitectureNames, ErrUnknownArchitecture)
	if err != nil {
		return err
	}
	*u = UnsupportedOSArchitectures(v)
	return nil
}

// Platform is the set of Windows platforms an installer targets.
type Platform uint8

// Platform bits.
const (
	PlatformWindowsDesktop Platform = 1 << iota
	PlatformWindowsUniversal
)

var platformNames = []flagName{
	{uint8(PlatformWindowsDesktop), "Windows.Desktop"},
	{uint8(PlatformWindowsUniversal), "Windows.Universal"},
}

// Has reports whether all platforms in p are set.
func (pl Platform) Has(p Platform) bool { return pl&p == p }

// IsZero reports whether no platform is set.
func (pl Platform) IsZero() bool { return pl == 0 }

// MarshalYAML encodes the set as a sorted sequence of platform names.
func (pl Platform) MarshalYAML() (any, error) {
	return encodeFlags(uint8(pl), platformNames), nil
}

// UnmarshalYAML decodes and validates a sequence of platform names.
func (pl *Platform) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeFlags(value, platformNames, ErrUnknownPlatform)
	if err != nil {
		return err
	}
	*pl = Platform(v)
	return nil
}
