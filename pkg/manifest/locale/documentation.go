package locale

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

const maxDocumentLabelLength = 100

// DocumentLabel names a piece of package documentation, such as
// "User Guide".
type DocumentLabel string

// NewDocumentLabel validates s as a document label.
func NewDocumentLabel(s string) (DocumentLabel, error) {
	if s == "" {
		return "", fmt.Errorf("document label: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxDocumentLabelLength {
		return "", fmt.Errorf("document label %q over %d characters: %w", s, maxDocumentLabelLength, ErrTooLong)
	}
	return DocumentLabel(s), nil
}

// String returns the label as a plain string.
func (l DocumentLabel) String() string { return string(l) }

// UnmarshalYAML decodes and validates a document label.
func (l *DocumentLabel) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewDocumentLabel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Documentation links to a piece of package documentation.
type Documentation struct {
	Label DocumentLabel       `yaml:"DocumentLabel,omitempty"`
	URL   manifest.DecodedURL `yaml:"DocumentUrl,omitempty"`
}

// IsEmpty reports whether every field is unset.
func (d *Documentation) IsEmpty() bool {
	return d.Label == "" && d.URL == ""
}
