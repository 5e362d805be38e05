package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstallationNotes(t *testing.T) {
	parsed, err := NewInstallationNotes("Run the installer as administrator.")
	assert.NoError(t, err)
	assert.Equal(t, "Run the installer as administrator.", parsed.String())

	_, err = NewInstallationNotes("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewInstallationNotes(strings.Repeat("n", 10_001))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestNewReleaseNotes(t *testing.T) {
	parsed, err := NewReleaseNotes("  - Fixed a crash on startup\n")
	require.NoError(t, err)
	assert.Equal(t, "- Fixed a crash on startup", parsed.String())

	_, err = NewReleaseNotes("   \n  ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNewReleaseNotesTruncatesWholeLines(t *testing.T) {
	// Eleven 1000-character lines exceed the limit. Each line costs
	// 1001 characters with its newline, so nine lines fit.
	line := strings.Repeat("r", 1000)
	input := strings.TrimSuffix(strings.Repeat(line+"\n", 11), "\n")

	parsed, err := NewReleaseNotes(input)
	require.NoError(t, err)

	lines := strings.Split(parsed.String(), "\n")
	assert.Len(t, lines, 9)
	for _, l := range lines {
		assert.Equal(t, line, l)
	}
}

func TestNewReleaseNotesAtLimitUnchanged(t *testing.T) {
	input := strings.Repeat("r", 10_000)
	parsed, err := NewReleaseNotes(input)
	require.NoError(t, err)
	assert.Equal(t, input, parsed.String())
}
