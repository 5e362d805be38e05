package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPackageFamilyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "terminal", input: "Microsoft.WindowsTerminal_8wekyb3d8bbwe"},
		{name: "name with dots", input: "Some.Publisher.App_abcdefghjkmnp"},
		{name: "no separator", input: "Microsoft.WindowsTerminal", wantErr: ErrInvalidPackageFamilyName},
		{name: "missing name", input: "_8wekyb3d8bbwe", wantErr: ErrInvalidPackageFamilyName},
		{name: "short publisher id", input: "App_8wekyb3d8bbw", wantErr: ErrInvalidPackageFamilyName},
		{name: "uppercase publisher id", input: "App_8WEKYB3D8BBWE", wantErr: ErrInvalidPackageFamilyName},
		{name: "excluded base32 letter", input: "App_8wekyb3d8bbwu", wantErr: ErrInvalidPackageFamilyName},
		{name: "empty", input: "", wantErr: ErrInvalidPackageFamilyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := NewPackageFamilyName(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, parsed.String())
			}
		})
	}
}

func TestFamilyNameFromIdentity(t *testing.T) {
	got := FamilyNameFromIdentity(
		"Microsoft.WindowsTerminal",
		"CN=Microsoft Corporation, O=Microsoft Corporation, L=Redmond, S=Washington, C=US",
	)
	assert.Equal(t, PackageFamilyName("Microsoft.WindowsTerminal_8wekyb3d8bbwe"), got)
}
