package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDecodedURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain https", input: "https://example.com", want: "https://example.com"},
		{name: "percent decoded", input: "https://example.com/my%20file.exe", want: "https://example.com/my file.exe"},
		{name: "query preserved", input: "https://example.com/download?arch=x64", want: "https://example.com/download?arch=x64"},
		{name: "relative rejected", input: "/just/a/path", wantErr: ErrURLNotAbsolute},
		{name: "schemeless rejected", input: "example.com/file", wantErr: ErrURLNotAbsolute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewDecodedURL(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, u.String())
			}
		})
	}
}
