package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scope
		wantErr error
	}{
		{name: "user", input: "user", want: ScopeUser},
		{name: "machine", input: "machine", want: ScopeMachine},
		{name: "wrong case", input: "User", wantErr: ErrUnknownScope},
		{name: "empty", input: "", wantErr: ErrUnknownScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseScope(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, parsed)
			}
		})
	}
}

func TestFindScope(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Scope
		found bool
	}{
		{name: "switch with user", input: "/CURRENTUSER", want: ScopeUser, found: true},
		{name: "switch with machine", input: "/ALLMACHINES", want: ScopeMachine, found: true},
		{name: "url with user", input: "https://example.com/app-user-setup.exe", want: ScopeUser, found: true},
		{name: "user wins over machine", input: "user-machine", want: ScopeUser, found: true},
		{name: "no scope", input: "/SILENT", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, found := FindScope(tt.input)

			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, scope)
			}
		})
	}
}

func TestScopeFromInstallDirectory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Scope
		found bool
	}{
		{name: "appdata", input: `%AppData%\App`, want: ScopeUser, found: true},
		{name: "localappdata", input: `%LocalAppData%\Programs\App`, want: ScopeUser, found: true},
		{name: "program files", input: `%ProgramFiles%\App`, want: ScopeMachine, found: true},
		{name: "program files x86", input: `%ProgramFiles(x86)%\App`, want: ScopeMachine, found: true},
		{name: "windir", input: `%WinDir%\System32`, want: ScopeMachine, found: true},
		{name: "plain path", input: `C:\App`, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, found := ScopeFromInstallDirectory(tt.input)

			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, scope)
			}
		})
	}
}
