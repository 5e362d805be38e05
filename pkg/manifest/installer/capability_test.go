package installer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCapability(t *testing.T) {
	valid := []string{
		"musicLibrary", "picturesLibrary", "videosLibrary", "removableStorage",
		"internetClient", "internetClientServer", "privateNetworkClientServer",
		"codeGeneration", "allJoyn", "phoneCallHistoryPublic", "objects3D",
		"lowLevelDevices", "backgroundMediaPlayback", "spatialPerception",
		"graphicsCaptureWithoutBorder", "userNotificationListener",
		// Device capabilities, including the two historic lowercase names.
		"location", "microphone", "webcam", "usb", "humaninterfacedevice",
		"serialcommunication", "pointOfService", "wiFiControl", "gazeInput",
	}
	for _, input := range valid {
		parsed, err := ParseCapability(input)
		assert.NoError(t, err, input)
		assert.Equal(t, Capability(input), parsed)
	}
}

func TestParseCapabilityInvalid(t *testing.T) {
	_, err := ParseCapability("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ParseCapability("HumanInterfaceDevice")
	assert.ErrorIs(t, err, ErrUnknownCapability)

	_, err = ParseCapability(strings.Repeat("c", 41))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestParseRestrictedCapability(t *testing.T) {
	valid := []string{
		"enterpriseAuthentication", "sharedUserCertificates", "documentsLibrary",
		"broadFileSystemAccess", "runFullTrust", "allowElevation",
		"packageWriteRedirectionCompatibilityShim", "customInstallActions",
		"inputInjectionBrokered", "smbios", "uiAccess", "enterpriseCloudSSO",
	}
	for _, input := range valid {
		parsed, err := ParseRestrictedCapability(input)
		assert.NoError(t, err, input)
		assert.Equal(t, RestrictedCapability(input), parsed)
	}

	_, err := ParseRestrictedCapability("")
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = ParseRestrictedCapability("fullTrust")
	assert.ErrorIs(t, err, ErrUnknownCapability)
}
