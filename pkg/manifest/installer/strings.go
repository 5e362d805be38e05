package installer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Character-count limits for the bounded string types.
const (
	maxChannelLength              = 16
	maxCommandLength              = 40
	maxFileExtensionLength        = 64
	maxProtocolLength             = 2048
	maxPortableCommandAliasLength = 40
)

// disallowedCharacters cannot appear in values that end up on a
// filesystem.
const disallowedCharacters = `\/:*?"<>|`

func containsDisallowed(s string) bool {
	return strings.ContainsAny(s, disallowedCharacters) ||
		strings.ContainsFunc(s, unicode.IsControl)
}

// Channel is the distribution channel an installer belongs to, such as
// "stable" or "beta".
type Channel string

// NewChannel validates s as a channel name.
func NewChannel(s string) (Channel, error) {
	if s == "" {
		return "", fmt.Errorf("channel: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxChannelLength {
		return "", fmt.Errorf("channel %q over %d characters: %w", s, maxChannelLength, ErrTooLong)
	}
	return Channel(s), nil
}

// String returns the channel as a plain string.
func (c Channel) String() string { return string(c) }

// UnmarshalYAML decodes and validates a channel name.
func (c *Channel) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewChannel(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Command is an alias the client registers so the package can be run
// from a shell.
type Command string

// NewCommand validates s as a command alias.
func NewCommand(s string) (Command, error) {
	if s == "" {
		return "", fmt.Errorf("command: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxCommandLength {
		return "", fmt.Errorf("command %q over %d characters: %w", s, maxCommandLength, ErrTooLong)
	}
	return Command(s), nil
}

// String returns the command as a plain string.
func (c Command) String() string { return string(c) }

// UnmarshalYAML decodes and validates a command alias.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewCommand(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FileExtension is a file type the package can open. It is stored
// without the leading dot.
type FileExtension string

// NewFileExtension validates s as a file extension, stripping any
// leading dots.
func NewFileExtension(s string) (FileExtension, error) {
	s = strings.TrimLeft(s, ".")
	if s == "" {
		return "", fmt.Errorf("file extension: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxFileExtensionLength {
		return "", fmt.Errorf("file extension %q over %d characters: %w", s, maxFileExtensionLength, ErrTooLong)
	}
	if containsDisallowed(s) {
		return "", fmt.Errorf("file extension %q: %w", s, ErrInvalidCharacter)
	}
	return FileExtension(s), nil
}

// String returns the extension as a plain string.
func (f FileExtension) String() string { return string(f) }

// UnmarshalYAML decodes and validates a file extension.
func (f *FileExtension) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewFileExtension(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Protocol is a URI scheme the package registers a handler for.
type Protocol string

// NewProtocol validates s as a protocol name.
func NewProtocol(s string) (Protocol, error) {
	if s == "" {
		return "", fmt.Errorf("protocol: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxProtocolLength {
		return "", fmt.Errorf("protocol %q over %d characters: %w", s, maxProtocolLength, ErrTooLong)
	}
	return Protocol(s), nil
}

// String returns the protocol as a plain string.
func (p Protocol) String() string { return string(p) }

// UnmarshalYAML decodes and validates a protocol name.
func (p *Protocol) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewProtocol(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PortableCommandAlias is the shell alias a portable installer is
// registered under.
type PortableCommandAlias string

// NewPortableCommandAlias validates s, after trimming surrounding
// whitespace, as a portable command alias.
func NewPortableCommandAlias(s string) (PortableCommandAlias, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("portable command alias: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxPortableCommandAliasLength {
		return "", fmt.Errorf("portable command alias %q over %d characters: %w", s, maxPortableCommandAliasLength, ErrTooLong)
	}
	return PortableCommandAlias(s), nil
}

// String returns the alias as a plain string.
func (p PortableCommandAlias) String() string { return string(p) }

// UnmarshalYAML decodes and validates a portable command alias.
func (p *PortableCommandAlias) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewPortableCommandAlias(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
