package locale

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const maxTagLength = 40

// Tag is a search keyword for the package.
type Tag string

// Moniker is the package's shorthand alias, such as "vscode". It shares
// Tag's validation.
type Moniker = Tag

// NewTag validates s as a tag.
func NewTag(s string) (Tag, error) {
	if s == "" {
		return "", fmt.Errorf("tag: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxTagLength {
		return "", fmt.Errorf("tag %q over %d characters: %w", s, maxTagLength, ErrTooLong)
	}
	return Tag(s), nil
}

// String returns the tag as a plain string.
func (t Tag) String() string { return string(t) }

// UnmarshalYAML decodes and validates a tag.
func (t *Tag) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewTag(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
