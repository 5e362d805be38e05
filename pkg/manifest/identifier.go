package manifest

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// disallowedCharacters are rejected in identifiers and package versions,
// matching the characters Windows reserves in file names.
const disallowedCharacters = `\/:*?"<>|`

// isDisallowed reports whether r may not appear in an identifier or
// package version.
func isDisallowed(r rune) bool {
	return unicode.IsControl(r) || strings.ContainsRune(disallowedCharacters, r)
}

// PackageIdentifier limits.
const (
	identifierMaxLength     = 128
	identifierPartMaxLength = 32
	identifierMinParts      = 2
	identifierMaxParts      = 8
)

// PackageIdentifier is a dotted, case-sensitive package identifier of
// the form Publisher.Package, with two to eight parts.
type PackageIdentifier string

// NewPackageIdentifier validates s and returns it as a PackageIdentifier.
func NewPackageIdentifier(s string) (PackageIdentifier, error) {
	if s == "" {
		return "", fmt.Errorf("package identifier: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > identifierMaxLength {
		return "", fmt.Errorf("package identifier %q: %w", s, ErrTooLong)
	}
	parts := strings.Split(s, ".")
	if len(parts) < identifierMinParts || len(parts) > identifierMaxParts {
		return "", fmt.Errorf("package identifier %q has %d parts: %w", s, len(parts), ErrIdentifierPartCount)
	}
	for _, part := range parts {
		if part == "" {
			return "", fmt.Errorf("package identifier %q: %w", s, ErrIdentifierEmptyPart)
		}
		if utf8.RuneCountInString(part) > identifierPartMaxLength {
			return "", fmt.Errorf("package identifier part %q: %w", part, ErrIdentifierPartTooLong)
		}
		for _, r := range part {
			if unicode.IsSpace(r) || isDisallowed(r) {
				return "", fmt.Errorf("package identifier %q: %w", s, ErrDisallowedCharacter)
			}
		}
	}
	return PackageIdentifier(s), nil
}

// String returns the identifier as a plain string.
func (id PackageIdentifier) String() string { return string(id) }

// Publisher returns the first dot-separated part of the identifier.
func (id PackageIdentifier) Publisher() string {
	part, _, _ := strings.Cut(string(id), ".")
	return part
}

// Name returns everything after the first dot-separated part.
func (id PackageIdentifier) Name() string {
	_, rest, _ := strings.Cut(string(id), ".")
	return rest
}

// UnmarshalYAML decodes and validates a package identifier.
func (id *PackageIdentifier) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewPackageIdentifier(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
