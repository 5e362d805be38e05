package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple", input: "Microsoft Corporation"},
		{name: "at minimum", input: "ab"},
		{name: "at limit", input: strings.Repeat("p", 256)},
		{name: "one character", input: "a", wantErr: ErrTooShort},
		{name: "too long", input: strings.Repeat("p", 257), wantErr: ErrTooLong},
		{name: "empty", input: "", wantErr: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := NewPublisher(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, parsed.String())
			}
		})
	}
}

func TestNewPackageName(t *testing.T) {
	parsed, err := NewPackageName("Windows Terminal")
	assert.NoError(t, err)
	assert.Equal(t, PackageName("Windows Terminal"), parsed)

	_, err = NewPackageName("x")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = NewPackageName(strings.Repeat("n", 257))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestNewShortDescription(t *testing.T) {
	parsed, err := NewShortDescription("A terminal for Windows")
	assert.NoError(t, err)
	assert.Equal(t, "A terminal for Windows", parsed.String())

	_, err = NewShortDescription("x")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = NewShortDescription(strings.Repeat("d", 257))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestNewDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "at minimum", input: "abc"},
		{name: "at limit", input: strings.Repeat("d", 10_000)},
		{name: "two characters", input: "ab", wantErr: ErrTooShort},
		{name: "too long", input: strings.Repeat("d", 10_001), wantErr: ErrTooLong},
		{name: "empty", input: "", wantErr: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := NewDescription(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, parsed.String())
			}
		})
	}
}

func TestNewCopyright(t *testing.T) {
	parsed, err := NewCopyright("Copyright (c) Microsoft Corporation")
	assert.NoError(t, err)
	assert.Equal(t, "Copyright (c) Microsoft Corporation", parsed.String())

	_, err = NewCopyright("ab")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = NewCopyright(strings.Repeat("c", 513))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestCheckLengthCountsCharacters(t *testing.T) {
	// Multi-byte characters count once, so 256 of them stay in bounds.
	parsed, err := NewPublisher(strings.Repeat("é", 256))
	assert.NoError(t, err)
	assert.Equal(t, 256, len([]rune(parsed.String())))
}
