package installer

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const maxEntraIDFieldLength = 512

// AuthenticationType selects how the client authenticates against a
// private source when downloading an installer.
type AuthenticationType string

// Authentication types, in their YAML encodings.
const (
	AuthenticationNone             AuthenticationType = "none"
	AuthenticationMicrosoftEntraID AuthenticationType = "microsoftEntraId"

	AuthenticationMicrosoftEntraIDForAzureBlobStorage AuthenticationType = "microsoftEntraIdForAzureBlobStorage"
)

// ParseAuthenticationType validates s as an authentication type.
func ParseAuthenticationType(s string) (AuthenticationType, error) {
	switch t := AuthenticationType(s); t {
	case AuthenticationNone, AuthenticationMicrosoftEntraID,
		AuthenticationMicrosoftEntraIDForAzureBlobStorage:
		return t, nil
	}
	return "", fmt.Errorf("authentication type %q: %w", s, ErrUnknownAuthenticationType)
}

// String returns the YAML encoding of the authentication type.
func (t AuthenticationType) String() string { return string(t) }

// UnmarshalYAML decodes and validates an authentication type.
func (t *AuthenticationType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAuthenticationType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// EntraIDResource is the Entra ID resource used when downloading from a
// secured source.
type EntraIDResource string

// NewEntraIDResource validates s as an Entra ID resource.
func NewEntraIDResource(s string) (EntraIDResource, error) {
	if s == "" {
		return "", fmt.Errorf("entra id resource: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxEntraIDFieldLength {
		return "", fmt.Errorf("entra id resource over %d characters: %w", maxEntraIDFieldLength, ErrTooLong)
	}
	return EntraIDResource(s), nil
}

// String returns the resource as a plain string.
func (r EntraIDResource) String() string { return string(r) }

// UnmarshalYAML decodes and validates an Entra ID resource.
func (r *EntraIDResource) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewEntraIDResource(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// EntraIDScope is the Entra ID scope used when downloading from a
// secured source.
type EntraIDScope string

// NewEntraIDScope validates s as an Entra ID scope.
func NewEntraIDScope(s string) (EntraIDScope, error) {
	if s == "" {
		return "", fmt.Errorf("entra id scope: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxEntraIDFieldLength {
		return "", fmt.Errorf("entra id scope over %d characters: %w", maxEntraIDFieldLength, ErrTooLong)
	}
	return EntraIDScope(s), nil
}

// String returns the scope as a plain string.
func (s EntraIDScope) String() string { return string(s) }

// UnmarshalYAML decodes and validates an Entra ID scope.
func (s *EntraIDScope) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := NewEntraIDScope(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// EntraIDAuthenticationInfo carries the resource and scope used when a
// private source is secured with Entra ID.
type EntraIDAuthenticationInfo struct {
	Resource EntraIDResource `yaml:"Resource,omitempty"`
	Scope    EntraIDScope    `yaml:"Scope,omitempty"`
}

// IsEmpty reports whether neither resource nor scope is set.
func (i *EntraIDAuthenticationInfo) IsEmpty() bool {
	return i.Resource == "" && i.Scope == ""
}

// Authentication describes how to authenticate against the source an
// installer is downloaded from.
type Authentication struct {
	Type        AuthenticationType         `yaml:"AuthenticationType"`
	EntraIDInfo *EntraIDAuthenticationInfo `yaml:"MicrosoftEntraIdAuthenticationInfo,omitempty"`
}
