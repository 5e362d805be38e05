package installer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Character-count limits for a single switch value.
const (
	maxSwitchLength       = 512
	maxCustomSwitchLength = 2048
)

// Switch is an installer command line argument. It encodes as one YAML
// string; parts may be separated by spaces or commas.
type Switch []string

func parseSwitch(s string, limit int) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("switch: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > limit {
		return nil, fmt.Errorf("switch over %d characters: %w", limit, ErrTooLong)
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	return fields, nil
}

// NewSwitch parses and validates s as a switch value.
func NewSwitch(s string) (Switch, error) {
	parts, err := parseSwitch(s, maxSwitchLength)
	if err != nil {
		return nil, err
	}
	return Switch(parts), nil
}

// Contains reports whether the switch carries part, compared case
// insensitively.
func (s Switch) Contains(part string) bool {
	for _, p := range s {
		if strings.EqualFold(p, part) {
			return true
		}
	}
	return false
}

// String joins the parts back into a single space-separated value.
func (s Switch) String() string { return strings.Join(s, " ") }

// MarshalYAML encodes the switch as one string.
func (s Switch) MarshalYAML() (any, error) { return s.String(), nil }

// UnmarshalYAML decodes and validates a switch.
func (s *Switch) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := NewSwitch(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CustomSwitch is a switch the client always passes to the installer.
// It allows a longer value than the other switches.
type CustomSwitch []string

// NewCustomSwitch parses and validates s as a custom switch value.
func NewCustomSwitch(s string) (CustomSwitch, error) {
	parts, err := parseSwitch(s, maxCustomSwitchLength)
	if err != nil {
		return nil, err
	}
	return CustomSwitch(parts), nil
}

// Contains reports whether the switch carries part, compared case
// insensitively.
func (s CustomSwitch) Contains(part string) bool { return Switch(s).Contains(part) }

// String joins the parts back into a single space-separated value.
func (s CustomSwitch) String() string { return strings.Join(s, " ") }

// MarshalYAML encodes the switch as one string.
func (s CustomSwitch) MarshalYAML() (any, error) { return s.String(), nil }

// UnmarshalYAML decodes and validates a custom switch.
func (s *CustomSwitch) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := NewCustomSwitch(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Switches are the command line arguments the client passes to an
// installer for each install experience.
type Switches struct {
	Silent             Switch       `yaml:"Silent,omitempty"`
	SilentWithProgress Switch       `yaml:"SilentWithProgress,omitempty"`
	Interactive        Switch       `yaml:"Interactive,omitempty"`
	InstallLocation    Switch       `yaml:"InstallLocation,omitempty"`
	Log                Switch       `yaml:"Log,omitempty"`
	Upgrade            Switch       `yaml:"Upgrade,omitempty"`
	Custom             CustomSwitch `yaml:"Custom,omitempty"`
	Repair             Switch       `yaml:"Repair,omitempty"`
}

// IsEmpty reports whether no switch is set.
func (s *Switches) IsEmpty() bool {
	return len(s.Silent) == 0 &&
		len(s.SilentWithProgress) == 0 &&
		len(s.Interactive) == 0 &&
		len(s.InstallLocation) == 0 &&
		len(s.Log) == 0 &&
		len(s.Upgrade) == 0 &&
		len(s.Custom) == 0 &&
		len(s.Repair) == 0
}
