package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInstallModesYAML(t *testing.T) {
	var modes InstallModes
	err := yaml.Unmarshal([]byte("[silent, interactive]"), &modes)
	require.NoError(t, err)

	assert.True(t, modes.Has(InstallModeSilent))
	assert.True(t, modes.Has(InstallModeInteractive))
	assert.False(t, modes.Has(InstallModeSilentWithProgress))

	// Encoding order is fixed regardless of input order.
	out, err := yaml.Marshal(modes)
	require.NoError(t, err)
	assert.Equal(t, "- interactive\n- silent\n", string(out))
}

func TestInstallModesUnknown(t *testing.T) {
	var modes InstallModes
	err := yaml.Unmarshal([]byte("[quiet]"), &modes)
	assert.ErrorIs(t, err, ErrUnknownInstallMode)
}

func TestUnsupportedArgumentsYAML(t *testing.T) {
	var args UnsupportedArguments
	err := yaml.Unmarshal([]byte("[Location, Log]"), &args)
	require.NoError(t, err)

	assert.True(t, args.Has(UnsupportedArgumentLog))
	assert.True(t, args.Has(UnsupportedArgumentLocation))

	// The argument names are capitalized, unlike the other flag sets.
	err = yaml.Unmarshal([]byte("[log]"), &args)
	assert.ErrorIs(t, err, ErrUnknownUnsupportedArgument)
}

func TestUnsupportedOSArchitecturesYAML(t *testing.T) {
	var archs UnsupportedOSArchitectures
	err := yaml.Unmarshal([]byte("[arm, x86]"), &archs)
	require.NoError(t, err)

	assert.True(t, archs.Has(UnsupportedOSArchitectureArm))
	assert.True(t, archs.Has(UnsupportedOSArchitectureX86))
	assert.False(t, archs.Has(UnsupportedOSArchitectureArm64))

	err = yaml.Unmarshal([]byte("[mips]"), &archs)
	assert.ErrorIs(t, err, ErrUnknownArchitecture)
}

func TestPlatformYAML(t *testing.T) {
	var platform Platform
	err := yaml.Unmarshal([]byte("[Windows.Universal, Windows.Desktop]"), &platform)
	require.NoError(t, err)

	assert.True(t, platform.Has(PlatformWindowsDesktop|PlatformWindowsUniversal))

	out, err := yaml.Marshal(platform)
	require.NoError(t, err)
	assert.Equal(t, "- Windows.Desktop\n- Windows.Universal\n", string(out))

	err = yaml.Unmarshal([]byte("[Windows.Phone]"), &platform)
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}
