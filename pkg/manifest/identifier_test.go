package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPackageIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "two parts", input: "Package.Identifier"},
		{name: "publisher dot package", input: "Microsoft.PowerShell"},
		{name: "four parts", input: "EclipseAdoptium.Temurin.21.JDK"},
		{name: "max part count", input: "a.b.c.d.e.f.g.h"},
		{name: "empty", input: "", wantErr: ErrEmpty},
		{name: "single part", input: "OnePart", wantErr: ErrIdentifierPartCount},
		{name: "too many parts", input: "a.b.c.d.e.f.g.h.i", wantErr: ErrIdentifierPartCount},
		{name: "trailing empty part", input: "a.b.", wantErr: ErrIdentifierEmptyPart},
		{name: "inner empty part", input: "a..b", wantErr: ErrIdentifierEmptyPart},
		{name: "part over 32 chars", input: "Publisher." + strings.Repeat("x", 33), wantErr: ErrIdentifierPartTooLong},
		{name: "total over 128 chars", input: strings.Repeat(strings.Repeat("x", 31)+".", 4) + strings.Repeat("y", 8), wantErr: ErrTooLong},
		{name: "whitespace rejected", input: "My Publisher.Package", wantErr: ErrDisallowedCharacter},
		{name: "backslash rejected", input: `Publisher.Pack\age`, wantErr: ErrDisallowedCharacter},
		{name: "question mark rejected", input: "Publisher.Package?", wantErr: ErrDisallowedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewPackageIdentifier(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, id.String())
			}
		})
	}
}

func TestPackageIdentifierParts(t *testing.T) {
	id, err := NewPackageIdentifier("EclipseAdoptium.Temurin.21.JDK")
	assert.NoError(t, err)
	assert.Equal(t, "EclipseAdoptium", id.Publisher())
	assert.Equal(t, "Temurin.21.JDK", id.Name())
}
