package installer

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// ReturnCode is a non-zero exit code an installer can produce. Windows
// installers report either a signed or an unsigned 32-bit value, so the
// valid range spans both.
type ReturnCode int64

// NewReturnCode validates code as an installer return code.
func NewReturnCode(code int64) (ReturnCode, error) {
	if code == 0 {
		return 0, ErrReturnCodeZero
	}
	if code < math.MinInt32 || code > math.MaxUint32 {
		return 0, fmt.Errorf("return code %d: %w", code, ErrReturnCodeRange)
	}
	return ReturnCode(code), nil
}

// UnmarshalYAML decodes and validates a return code.
func (r *ReturnCode) UnmarshalYAML(value *yaml.Node) error {
	var code int64
	if err := value.Decode(&code); err != nil {
		return err
	}
	parsed, err := NewReturnCode(code)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// SuccessCode is a non-default return code that still indicates a
// successful install.
type SuccessCode = ReturnCode

// ReturnResponse is the client's interpretation of a non-success return
// code.
type ReturnResponse string

// Return responses, in their YAML encodings.
const (
	ReturnResponsePackageInUse              ReturnResponse = "packageInUse"
	ReturnResponsePackageInUseByApplication ReturnResponse = "packageInUseByApplication"
	ReturnResponseInstallInProgress         ReturnResponse = "installInProgress"
	ReturnResponseFileInUse                 ReturnResponse = "fileInUse"
	ReturnResponseMissingDependency         ReturnResponse = "missingDependency"
	ReturnResponseDiskFull                  ReturnResponse = "diskFull"
	ReturnResponseInsufficientMemory        ReturnResponse = "insufficientMemory"
	ReturnResponseInvalidParameter          ReturnResponse = "invalidParameter"
	ReturnResponseNoNetwork                 ReturnResponse = "noNetwork"
	ReturnResponseContactSupport            ReturnResponse = "contactSupport"
	ReturnResponseRebootRequiredToFinish    ReturnResponse = "rebootRequiredToFinish"
	ReturnResponseRebootRequiredForInstall  ReturnResponse = "rebootRequiredForInstall"
	ReturnResponseRebootInitiated           ReturnResponse = "rebootInitiated"
	ReturnResponseCancelledByUser           ReturnResponse = "cancelledByUser"
	ReturnResponseAlreadyInstalled          ReturnResponse = "alreadyInstalled"
	ReturnResponseDowngrade                 ReturnResponse = "downgrade"
	ReturnResponseBlockedByPolicy           ReturnResponse = "blockedByPolicy"
	ReturnResponseSystemNotSupported        ReturnResponse = "systemNotSupported"
	ReturnResponseCustom                    ReturnResponse = "custom"
)

// ParseReturnResponse validates s as a return response.
func ParseReturnResponse(s string) (ReturnResponse, error) {
	switch r := ReturnResponse(s); r {
	case ReturnResponsePackageInUse, ReturnResponsePackageInUseByApplication,
		ReturnResponseInstallInProgress, ReturnResponseFileInUse,
		ReturnResponseMissingDependency, ReturnResponseDiskFull,
		ReturnResponseInsufficientMemory, ReturnResponseInvalidParameter,
		ReturnResponseNoNetwork, ReturnResponseContactSupport,
		ReturnResponseRebootRequiredToFinish, ReturnResponseRebootRequiredForInstall,
		ReturnResponseRebootInitiated, ReturnResponseCancelledByUser,
		ReturnResponseAlreadyInstalled, ReturnResponseDowngrade,
		ReturnResponseBlockedByPolicy, ReturnResponseSystemNotSupported,
		ReturnResponseCustom:
		return r, nil
	}
	return "", fmt.Errorf("return response %q: %w", s, ErrUnknownReturnResponse)
}

// String returns the YAML encoding of the return response.
func (r ReturnResponse) String() string { return string(r) }

// UnmarshalYAML decodes and validates a return response.
func (r *ReturnResponse) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseReturnResponse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ExpectedReturnCode maps an installer return code to the response the
// client should surface, optionally with a URL explaining the failure.
type ExpectedReturnCode struct {
	InstallerReturnCode ReturnCode                 `yaml:"InstallerReturnCode,omitempty"`
	ReturnResponse      ReturnResponse             `yaml:"ReturnResponse"`
	ReturnResponseURL   manifest.ReturnResponseURL `yaml:"ReturnResponseUrl,omitempty"`
}
