package installer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Architecture is the hardware architecture targeted by an installer.
type Architecture string

// Architectures, in their YAML encodings.
const (
	ArchitectureX86     Architecture = "x86"
	ArchitectureX64     Architecture = "x64"
	ArchitectureArm     Architecture = "arm"
	ArchitectureArm64   Architecture = "arm64"
	ArchitectureNeutral Architecture = "neutral"
)

// ParseArchitecture validates s as an architecture value.
func ParseArchitecture(s string) (Architecture, error) {
	switch a := Architecture(s); a {
	case ArchitectureX86, ArchitectureX64, ArchitectureArm, ArchitectureArm64, ArchitectureNeutral:
		return a, nil
	}
	return "", fmt.Errorf("architecture %q: %w", s, ErrUnknownArchitecture)
}

// String returns the YAML encoding of the architecture.
func (a Architecture) String() string { return string(a) }

// Is64Bit reports whether the architecture is 64-bit.
func (a Architecture) Is64Bit() bool { return a == ArchitectureX64 || a == ArchitectureArm64 }

// Is32Bit reports whether the architecture is 32-bit.
func (a Architecture) Is32Bit() bool { return a == ArchitectureX86 || a == ArchitectureArm }

// UnmarshalYAML decodes and validates an architecture.
func (a *Architecture) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseArchitecture(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// architectureDelimiters separate an architecture name from the rest of
// a URL.
const architectureDelimiters = `,/\._-()`

// architectureAliases maps URL substrings to architectures. More
// specific aliases come first so that, on a tie at the same position,
// the longer name wins.
var architectureAliases = []struct {
	name string
	arch Architecture
}{
	{"x86-64", ArchitectureX64},
	{"x86_64", ArchitectureX64},
	{"x64", ArchitectureX64},
	{"64-bit", ArchitectureX64},
	{"64bit", ArchitectureX64},
	{"win64a", ArchitectureArm64},
	{"win64", ArchitectureX64},
	{"winx64", ArchitectureX64},
	{"ia64", ArchitectureX64},
	{"amd64", ArchitectureX64},
	{"x86", ArchitectureX86},
	{"x32", ArchitectureX86},
	{"32-bit", ArchitectureX86},
	{"32bit", ArchitectureX86},
	{"win32", ArchitectureX86},
	{"winx86", ArchitectureX86},
	{"ia32", ArchitectureX86},
	{"i386", ArchitectureX86},
	{"i486", ArchitectureX86},
	{"i586", ArchitectureX86},
	{"i686", ArchitectureX86},
	{"386", ArchitectureX86},
	{"486", ArchitectureX86},
	{"586", ArchitectureX86},
	{"686", ArchitectureX86},
	{"arm64ec", ArchitectureArm64},
	{"arm64", ArchitectureArm64},
	{"aarch64", ArchitectureArm64},
	{"arm", ArchitectureArm},
	{"armv7", ArchitectureArm},
	{"aarch", ArchitectureArm},
	{"neutral", ArchitectureNeutral},
}

// ArchitectureFromURL guesses the architecture of an installer from its
// download URL. It looks for a delimited architecture alias, preferring
// the rightmost match and then the longest name; failing that, it
// accepts an alias directly before the file extension. The second
// return value is false when nothing matches.
func ArchitectureFromURL(url string) (Architecture, bool) {
	url = strings.ToLower(url)

	bestIndex := -1
	bestLen := 0
	var best Architecture
	for _, alias := range architectureAliases {
		if index := rightmostDelimited(url, alias.name); index > bestIndex || (index == bestIndex && index >= 0 && len(alias.name) > bestLen) {
			bestIndex = index
			bestLen = len(alias.name)
			best = alias.arch
		}
	}
	if bestIndex >= 0 {
		return best, true
	}

	// Fall back to {architecture}.{extension}.
	for _, extension := range validFileExtensions {
		end := strings.LastIndex(url, extension)
		if end <= 0 || url[end-1] != '.' {
			continue
		}
		for _, alias := range architectureAliases {
			start := end - 1 - len(alias.name)
			if start >= 0 && url[start:end-1] == alias.name {
				return alias.arch, true
			}
		}
	}

	return "", false
}

// rightmostDelimited returns the index of the rightmost occurrence of
// name in url that has a delimiter on both sides, or -1.
func rightmostDelimited(url, name string) int {
	for end := len(url); end > 0; {
		index := strings.LastIndex(url[:end], name)
		if index < 0 {
			return -1
		}
		if index > 0 && index+len(name) < len(url) &&
			strings.IndexByte(architectureDelimiters, url[index-1]) >= 0 &&
			strings.IndexByte(architectureDelimiters, url[index+len(name)]) >= 0 {
			return index
		}
		end = index
	}
	return -1
}
