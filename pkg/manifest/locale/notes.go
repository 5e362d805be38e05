package locale

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const maxNotesLength = 10_000

// InstallationNotes is text shown to the user after installation.
type InstallationNotes string

// NewInstallationNotes validates s as installation notes.
func NewInstallationNotes(s string) (InstallationNotes, error) {
	if s == "" {
		return "", fmt.Errorf("installation notes: %w", ErrEmpty)
	}
	if utf8.RuneCountInString(s) > maxNotesLength {
		return "", fmt.Errorf("installation notes over %d characters: %w", maxNotesLength, ErrTooLong)
	}
	return InstallationNotes(s), nil
}

// String returns the notes as a plain string.
func (n InstallationNotes) String() string { return string(n) }

// UnmarshalYAML decodes and validates installation notes.
func (n *InstallationNotes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewInstallationNotes(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ReleaseNotes is the changelog text for a package version.
type ReleaseNotes string

// NewReleaseNotes trims s and validates it as release notes. Notes over
// the limit are truncated to the last whole line that still fits.
func NewReleaseNotes(s string) (ReleaseNotes, error) {
	s = truncateWithLines(strings.TrimSpace(s), maxNotesLength)
	if s == "" {
		return "", fmt.Errorf("release notes: %w", ErrEmpty)
	}
	return ReleaseNotes(s), nil
}

// String returns the notes as a plain string.
func (n ReleaseNotes) String() string { return string(n) }

// UnmarshalYAML decodes and validates release notes.
func (n *ReleaseNotes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewReleaseNotes(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// truncateWithLines shortens s to the longest prefix of whole lines
// whose total character count, newlines included, stays within limit.
func truncateWithLines(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	var b strings.Builder
	count := 0
	for i, line := range strings.Split(s, "\n") {
		lineCount := utf8.RuneCountInString(line) + 1
		if count+lineCount > limit {
			break
		}
		count += lineCount
		if i != 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
