package locale

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Character-count limits for the bounded string types.
const (
	minPublisherLength = 2
	maxPublisherLength = 256

	minPackageNameLength = 2
	maxPackageNameLength = 256

	minAuthorLength = 2
	maxAuthorLength = 256

	minCopyrightLength = 3
	maxCopyrightLength = 512

	minShortDescriptionLength = 2
	maxShortDescriptionLength = 256

	minDescriptionLength = 3
	maxDescriptionLength = 10_000
)

// checkLength validates that s has between min and max characters,
// naming the field kind in the error.
func checkLength(kind, s string, min, max int) error {
	count := utf8.RuneCountInString(s)
	switch {
	case s == "":
		return fmt.Errorf("%s: %w", kind, ErrEmpty)
	case count < min:
		return fmt.Errorf("%s %q under %d characters: %w", kind, s, min, ErrTooShort)
	case count > max:
		return fmt.Errorf("%s %q over %d characters: %w", kind, s, max, ErrTooLong)
	}
	return nil
}

// Publisher is the name of the company or individual publishing the
// package.
type Publisher string

// NewPublisher validates s as a publisher name.
func NewPublisher(s string) (Publisher, error) {
	if err := checkLength("publisher", s, minPublisherLength, maxPublisherLength); err != nil {
		return "", err
	}
	return Publisher(s), nil
}

// String returns the publisher as a plain string.
func (p Publisher) String() string { return string(p) }

// UnmarshalYAML decodes and validates a publisher name.
func (p *Publisher) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewPublisher(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PackageName is the name of the package as shown to users.
type PackageName string

// NewPackageName validates s as a package name.
func NewPackageName(s string) (PackageName, error) {
	if err := checkLength("package name", s, minPackageNameLength, maxPackageNameLength); err != nil {
		return "", err
	}
	return PackageName(s), nil
}

// String returns the package name as a plain string.
func (n PackageName) String() string { return string(n) }

// UnmarshalYAML decodes and validates a package name.
func (n *PackageName) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewPackageName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Author is the original author of the package, when distinct from the
// publisher.
type Author string

// NewAuthor validates s as an author name.
func NewAuthor(s string) (Author, error) {
	if err := checkLength("author", s, minAuthorLength, maxAuthorLength); err != nil {
		return "", err
	}
	return Author(s), nil
}

// String returns the author as a plain string.
func (a Author) String() string { return string(a) }

// UnmarshalYAML decodes and validates an author name.
func (a *Author) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewAuthor(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Copyright is the copyright notice for the package.
type Copyright string

// NewCopyright validates s as a copyright notice.
func NewCopyright(s string) (Copyright, error) {
	if err := checkLength("copyright", s, minCopyrightLength, maxCopyrightLength); err != nil {
		return "", err
	}
	return Copyright(s), nil
}

// String returns the copyright as a plain string.
func (c Copyright) String() string { return string(c) }

// UnmarshalYAML decodes and validates a copyright notice.
func (c *Copyright) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewCopyright(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ShortDescription is the one-line description of the package.
type ShortDescription string

// NewShortDescription validates s as a short description.
func NewShortDescription(s string) (ShortDescription, error) {
	if err := checkLength("short description", s, minShortDescriptionLength, maxShortDescriptionLength); err != nil {
		return "", err
	}
	return ShortDescription(s), nil
}

// String returns the short description as a plain string.
func (d ShortDescription) String() string { return string(d) }

// UnmarshalYAML decodes and validates a short description.
func (d *ShortDescription) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewShortDescription(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Description is the full description of the package.
type Description string

// NewDescription validates s as a full description.
func NewDescription(s string) (Description, error) {
	if err := checkLength("description", s, minDescriptionLength, maxDescriptionLength); err != nil {
		return "", err
	}
	return Description(s), nil
}

// String returns the description as a plain string.
func (d Description) String() string { return string(d) }

// UnmarshalYAML decodes and validates a full description.
func (d *Description) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewDescription(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
