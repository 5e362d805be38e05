package manifest

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LanguageTag is a validated BCP 47 language tag, such as "en-US".
type LanguageTag struct {
	tag language.Tag
}

// DefaultLanguageTag returns "en-US", the locale WinGet assumes when a
// manifest does not name one.
func DefaultLanguageTag() LanguageTag {
	return LanguageTag{tag: language.AmericanEnglish}
}

// NewLanguageTag parses and canonicalizes a BCP 47 tag.
func NewLanguageTag(s string) (LanguageTag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return LanguageTag{}, fmt.Errorf("language tag %q: %w", s, ErrInvalidLanguageTag)
	}
	return LanguageTag{tag: tag}, nil
}

// String returns the canonical form of the tag, or "und" for the zero
// value.
func (t LanguageTag) String() string { return t.tag.String() }

// IsZero reports whether the tag is unset.
func (t LanguageTag) IsZero() bool { return t.tag == language.Tag{} }

// Compare orders tags lexicographically by canonical form, for use in
// sorted collections.
func (t LanguageTag) Compare(other LanguageTag) int {
	return strings.Compare(t.String(), other.String())
}

// MarshalYAML encodes the canonical tag string.
func (t LanguageTag) MarshalYAML() (any, error) { return t.String(), nil }

// UnmarshalYAML decodes and validates a language tag.
func (t *LanguageTag) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewLanguageTag(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
