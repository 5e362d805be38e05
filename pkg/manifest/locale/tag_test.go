package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple", input: "terminal"},
		{name: "at limit", input: strings.Repeat("t", 40)},
		{name: "too long", input: strings.Repeat("t", 41), wantErr: ErrTooLong},
		{name: "empty", input: "", wantErr: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := NewTag(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, parsed.String())
			}
		})
	}
}

func TestMonikerSharesTagValidation(t *testing.T) {
	var m Moniker = "vscode"
	assert.Equal(t, "vscode", m.String())

	_, err := NewTag(strings.Repeat("m", 41))
	assert.ErrorIs(t, err, ErrTooLong)
}
