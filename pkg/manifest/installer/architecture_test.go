package installer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArchitecture(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Architecture
		wantErr error
	}{
		{name: "x86", input: "x86", want: ArchitectureX86},
		{name: "x64", input: "x64", want: ArchitectureX64},
		{name: "arm", input: "arm", want: ArchitectureArm},
		{name: "arm64", input: "arm64", want: ArchitectureArm64},
		{name: "neutral", input: "neutral", want: ArchitectureNeutral},
		{name: "wrong case", input: "X64", wantErr: ErrUnknownArchitecture},
		{name: "alias is not canonical", input: "amd64", wantErr: ErrUnknownArchitecture},
		{name: "empty", input: "", wantErr: ErrUnknownArchitecture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseArchitecture(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, parsed)
			}
		})
	}
}

func TestArchitectureBitness(t *testing.T) {
	assert.True(t, ArchitectureX64.Is64Bit())
	assert.True(t, ArchitectureArm64.Is64Bit())
	assert.False(t, ArchitectureX86.Is64Bit())

	assert.True(t, ArchitectureX86.Is32Bit())
	assert.True(t, ArchitectureArm.Is32Bit())
	assert.False(t, ArchitectureArm64.Is32Bit())

	assert.False(t, ArchitectureNeutral.Is64Bit())
	assert.False(t, ArchitectureNeutral.Is32Bit())
}

var architectureURLAliases = map[Architecture][]string{
	ArchitectureX64: {"x86-64", "x86_64", "x64", "64-bit", "64bit", "Win64", "Winx64", "ia64", "amd64"},
	ArchitectureX86: {
		"x86", "x32", "32-bit", "32bit", "win32", "winx86", "ia32",
		"i386", "i486", "i586", "i686", "386", "486", "586", "686",
	},
	ArchitectureArm64: {"arm64ec", "arm64", "aarch64", "win64a"},
	ArchitectureArm:   {"arm", "armv7", "aarch"},
}

func TestArchitectureFromURLBeforeExtension(t *testing.T) {
	for want, aliases := range architectureURLAliases {
		for _, alias := range aliases {
			url := fmt.Sprintf("https://www.example.com/file%s.exe", alias)
			arch, ok := ArchitectureFromURL(url)
			assert.True(t, ok, url)
			assert.Equal(t, want, arch, url)
		}
	}
}

func TestArchitectureFromURLDelimited(t *testing.T) {
	for want, aliases := range architectureURLAliases {
		for _, alias := range aliases {
			for _, delimiter := range []string{",", "/", `\`, ".", "_", "-", "(", ")"} {
				url := fmt.Sprintf("https://www.example.com/file%[1]s%[2]s%[1]sapp.exe", delimiter, alias)
				arch, ok := ArchitectureFromURL(url)
				assert.True(t, ok, url)
				assert.Equal(t, want, arch, url)
			}
		}
	}
}

func TestArchitectureFromURLNoArchitecture(t *testing.T) {
	_, ok := ArchitectureFromURL("https://www.example.com/file.exe")
	assert.False(t, ok)
}

func TestArchitectureFromURLRightmostWins(t *testing.T) {
	// win32 appears in the repository name but the artifact itself is arm64.
	arch, ok := ArchitectureFromURL(
		"https://github.com/vim/vim-win32-installer/releases/download/v9.1.1234/gvim_9.1.1234_arm64.exe",
	)
	assert.True(t, ok)
	assert.Equal(t, ArchitectureArm64, arch)
}
