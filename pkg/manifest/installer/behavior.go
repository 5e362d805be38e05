package installer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UpgradeBehavior tells the client what to do with the installed
// package during an upgrade.
type UpgradeBehavior string

// Upgrade behaviors, in their YAML encodings.
const (
	UpgradeBehaviorInstall           UpgradeBehavior = "install"
	UpgradeBehaviorUninstallPrevious UpgradeBehavior = "uninstallPrevious"
	UpgradeBehaviorDeny              UpgradeBehavior = "deny"
)

// ParseUpgradeBehavior validates s as an upgrade behavior.
func ParseUpgradeBehavior(s string) (UpgradeBehavior, error) {
	switch b := UpgradeBehavior(s); b {
	case UpgradeBehaviorInstall, UpgradeBehaviorUninstallPrevious, UpgradeBehaviorDeny:
		return b, nil
	}
	return "", fmt.Errorf("upgrade behavior %q: %w", s, ErrUnknownUpgradeBehavior)
}

// String returns the YAML encoding of the behavior.
func (b UpgradeBehavior) String() string { return string(b) }

// UnmarshalYAML decodes and validates an upgrade behavior.
func (b *UpgradeBehavior) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseUpgradeBehavior(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// RepairBehavior tells the client how to repair an existing
// installation: rerun the ModifyPath command, the uninstaller, or the
// installer itself.
type RepairBehavior string

// Repair behaviors, in their YAML encodings.
const (
	RepairBehaviorModify      RepairBehavior = "modify"
	RepairBehaviorUninstaller RepairBehavior = "uninstaller"
	RepairBehaviorInstaller   RepairBehavior = "installer"
)

// ParseRepairBehavior validates s as a repair behavior.
func ParseRepairBehavior(s string) (RepairBehavior, error) {
	switch b := RepairBehavior(s); b {
	case RepairBehaviorModify, RepairBehaviorUninstaller, RepairBehaviorInstaller:
		return b, nil
	}
	return "", fmt.Errorf("repair behavior %q: %w", s, ErrUnknownRepairBehavior)
}

// String returns the YAML encoding of the behavior.
func (b RepairBehavior) String() string { return string(b) }

// UnmarshalYAML decodes and validates a repair behavior.
func (b *RepairBehavior) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRepairBehavior(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ElevationRequirement is the administrative context an installer must
// run under.
type ElevationRequirement string

// Elevation requirements, in their YAML encodings.
const (
	ElevationRequired   ElevationRequirement = "elevationRequired"
	ElevationProhibited ElevationRequirement = "elevationProhibited"
	ElevatesSelf        ElevationRequirement = "elevatesSelf"
)

// ParseElevationRequirement validates s as an elevation requirement.
func ParseElevationRequirement(s string) (ElevationRequirement, error) {
	switch r := ElevationRequirement(s); r {
	case ElevationRequired, ElevationProhibited, ElevatesSelf:
		return r, nil
	}
	return "", fmt.Errorf("elevation requirement %q: %w", s, ErrUnknownElevationRequirement)
}

// String returns the YAML encoding of the requirement.
func (r ElevationRequirement) String() string { return string(r) }

// UnmarshalYAML decodes and validates an elevation requirement.
func (r *ElevationRequirement) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseElevationRequirement(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
