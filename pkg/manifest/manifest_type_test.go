package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManifestType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ManifestType
		wantErr error
	}{
		{name: "installer", input: "installer", want: ManifestTypeInstaller},
		{name: "default locale", input: "defaultLocale", want: ManifestTypeDefaultLocale},
		{name: "locale", input: "locale", want: ManifestTypeLocale},
		{name: "version", input: "version", want: ManifestTypeVersion},
		{name: "wrong case", input: "Installer", wantErr: ErrUnknownManifestType},
		{name: "unknown", input: "manifest", wantErr: ErrUnknownManifestType},
		{name: "empty", input: "", wantErr: ErrUnknownManifestType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseManifestType(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, parsed)
			}
		})
	}
}

func TestDetectType(t *testing.T) {
	doc := []byte("PackageIdentifier: Package.Identifier\nManifestType: defaultLocale\nManifestVersion: 1.12.0\n")
	kind, err := DetectType(doc)
	assert.NoError(t, err)
	assert.Equal(t, ManifestTypeDefaultLocale, kind)

	_, err = DetectType([]byte("PackageIdentifier: Package.Identifier\n"))
	assert.ErrorIs(t, err, ErrUnknownManifestType)

	_, err = DetectType([]byte("ManifestType: bogus\n"))
	assert.ErrorIs(t, err, ErrUnknownManifestType)
}
