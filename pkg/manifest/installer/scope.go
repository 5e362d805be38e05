package installer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scope is the context an installer installs the package under.
type Scope string

// Scopes, in their YAML encodings.
const (
	ScopeUser    Scope = "user"
	ScopeMachine Scope = "machine"
)

// ParseScope validates s as a scope value.
func ParseScope(s string) (Scope, error) {
	switch sc := Scope(s); sc {
	case ScopeUser, ScopeMachine:
		return sc, nil
	}
	return "", fmt.Errorf("scope %q: %w", s, ErrUnknownScope)
}

// String returns the YAML encoding of the scope.
func (s Scope) String() string { return string(s) }

// UnmarshalYAML decodes and validates a scope.
func (s *Scope) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseScope(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// FindScope probes a free-form string, such as an installer switch or a
// download URL, for a scope name. "user" is checked before "machine".
// The second return value is false when neither appears.
func FindScope(value string) (Scope, bool) {
	lower := strings.ToLower(value)
	if strings.Contains(lower, string(ScopeUser)) {
		return ScopeUser, true
	}
	if strings.Contains(lower, string(ScopeMachine)) {
		return ScopeMachine, true
	}
	return "", false
}

// Well-known Windows directory tokens used in default install locations.
const (
	DirProgramFiles64 = "%ProgramFiles%"
	DirProgramFiles32 = "%ProgramFiles(x86)%"
	DirCommonFiles64  = "%CommonProgramFiles%"
	DirCommonFiles32  = "%CommonProgramFiles(x86)%"
	DirAppData        = "%AppData%"
	DirLocalAppData   = "%LocalAppData%"
	DirProgramData    = "%ProgramData%"
	DirWindows        = "%WinDir%"
	DirSystemRoot     = "%SystemRoot%"
)

var (
	userInstallDirs    = []string{DirAppData, DirLocalAppData}
	machineInstallDirs = []string{
		DirProgramFiles64,
		DirProgramFiles32,
		DirCommonFiles64,
		DirCommonFiles32,
		DirProgramData,
		DirWindows,
		DirSystemRoot,
	}
)

// ScopeFromInstallDirectory derives the scope from a default install
// location that starts with a well-known directory token. The second
// return value is false when the directory implies neither scope.
func ScopeFromInstallDirectory(installDirectory string) (Scope, bool) {
	for _, dir := range userInstallDirs {
		if strings.HasPrefix(installDirectory, dir) {
			return ScopeUser, true
		}
	}
	for _, dir := range machineInstallDirs {
		if strings.HasPrefix(installDirectory, dir) {
			return ScopeMachine, true
		}
	}
	return "", false
}
