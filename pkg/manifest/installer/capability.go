package installer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const maxCapabilityLength = 40

// Capability is an MSIX capability the package requests. Most names are
// camelCase; humaninterfacedevice and serialcommunication are the two
// historic all-lowercase exceptions.
type Capability string

var validCapabilities = map[Capability]struct{}{
	"activity":                     {},
	"allJoyn":                      {},
	"appointments":                 {},
	"backgroundMediaPlayback":      {},
	"blockedChatMessages":          {},
	"bluetooth":                    {},
	"chat":                         {},
	"codeGeneration":               {},
	"contacts":                     {},
	"gazeInput":                    {},
	"globalMediaControl":           {},
	"graphicsCapture":              {},
	"graphicsCaptureProgrammatic":  {},
	"graphicsCaptureWithoutBorder": {},
	"humaninterfacedevice":         {},
	"humanPresence":                {},
	"internetClient":               {},
	"internetClientServer":         {},
	"location":                     {},
	"lowLevel":                     {},
	"lowLevelDevices":              {},
	"microphone":                   {},
	"musicLibrary":                 {},
	"objects3D":                    {},
	"optical":                      {},
	"phoneCall":                    {},
	"phoneCallHistoryPublic":       {},
	"picturesLibrary":              {},
	"pointOfService":               {},
	"privateNetworkClientServer":   {},
	"proximity":                    {},
	"radios":                       {},
	"recordedCallsFolder":          {},
	"remoteSystem":                 {},
	"removableStorage":             {},
	"serialcommunication":          {},
	"spatialPerception":            {},
	"systemManagement":             {},
	"usb":                          {},
	"userAccountInformation":       {},
	"userDataTasks":                {},
	"userNotificationListener":     {},
	"videosLibrary":                {},
	"voipCall":                     {},
	"webcam":                       {},
	"wiFiControl":                  {},
}

// ParseCapability validates s as an MSIX capability.
func ParseCapability(s string) (Capability, error) {
	if s == "" {
		return "", fmt.Errorf("capability: %w", ErrEmpty)
	}
	if len(s) > maxCapabilityLength {
		return "", fmt.Errorf("capability over %d characters: %w", maxCapabilityLength, ErrTooLong)
	}
	c := Capability(s)
	if _, ok := validCapabilities[c]; !ok {
		return "", fmt.Errorf("capability %q: %w", s, ErrUnknownCapability)
	}
	return c, nil
}

// String returns the capability as a plain string.
func (c Capability) String() string { return string(c) }

// UnmarshalYAML decodes and validates a capability.
func (c *Capability) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCapability(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RestrictedCapability is an MSIX restricted capability, one that
// requires extra approval before the Store accepts the package.
type RestrictedCapability string

var validRestrictedCapabilities = map[RestrictedCapability]struct{}{
	"accessoryManager":                         {},
	"allAppMods":                               {},
	"allowElevation":                           {},
	"appBroadcastServices":                     {},
	"appCaptureServices":                       {},
	"appCaptureSettings":                       {},
	"appDiagnostics":                           {},
	"appLicensing":                             {},
	"appointmentsSystem":                       {},
	"audioDeviceConfiguration":                 {},
	"backgroundMediaRecording":                 {},
	"backgroundSpatialPerception":              {},
	"backgroundVoIP":                           {},
	"broadFileSystemAccess":                    {},
	"cameraProcessingExtension":                {},
	"cellularDeviceControl":                    {},
	"cellularDeviceIdentity":                   {},
	"cellularMessaging":                        {},
	"chatSystem":                               {},
	"confirmAppClose":                          {},
	"contactsSystem":                           {},
	"cortanaPermissions":                       {},
	"cortanaSpeechAccessory":                   {},
	"customInstallActions":                     {},
	"developmentModeNetwork":                   {},
	"deviceManagementDmAccount":                {},
	"deviceManagementEmailAccount":             {},
	"deviceManagementFoundation":               {},
	"deviceManagementWapSecurityPolicies":      {},
	"devicePortalProvider":                     {},
	"deviceUnlock":                             {},
	"documentsLibrary":                         {},
	"dualSimTiles":                             {},
	"email":                                    {},
	"emailSystem":                              {},
	"enterpriseAuthentication":                 {},
	"enterpriseCloudSSO":                       {},
	"enterpriseDataPolicy":                     {},
	"enterpriseDeviceLockdown":                 {},
	"expandedResources":                        {},
	"extendedBackgroundTaskTime":               {},
	"extendedExecutionBackgroundAudio":         {},
	"extendedExecutionCritical":                {},
	"extendedExecutionUnconstrained":           {},
	"firstSignInSettings":                      {},
	"gameBarServices":                          {},
	"gameList":                                 {},
	"gameMonitor":                              {},
	"inputForegroundObservation":               {},
	"inputInjectionBrokered":                   {},
	"inputObservation":                         {},
	"inputSuppression":                         {},
	"interopServices":                          {},
	"localSystemServices":                      {},
	"locationHistory":                          {},
	"locationSystem":                           {},
	"modifiableApp":                            {},
	"networkConnectionManagerProvisioning":     {},
	"networkDataPlanProvisioning":              {},
	"networkDataUsageManagement":               {},
	"networkingVpnProvider":                    {},
	"oemDeployment":                            {},
	"oemPublicDirectory":                       {},
	"oneProcessVoIP":                           {},
	"packagedServices":                         {},
	"packageManagement":                        {},
	"packagePolicySystem":                      {},
	"packageQuery":                             {},
	"packageWriteRedirectionCompatibilityShim": {},
	"phoneCallHistory":                         {},
	"phoneCallHistorySystem":                   {},
	"phoneLineTransportManagement":             {},
	"previewInkWorkspace":                      {},
	"previewPenWorkspace":                      {},
	"previewStore":                             {},
	"previewUiComposition":                     {},
	"protectedApp":                             {},
	"remotePassportAuthentication":             {},
	"runFullTrust":                             {},
	"screenDuplication":                        {},
	"secondaryAuthenticationFactor":            {},
	"secureAssessment":                         {},
	"sharedUserCertificates":                   {},
	"slapiQueryLicenseValue":                   {},
	"smbios":                                   {},
	"smsSend":                                  {},
	"startScreenManagement":                    {},
	"storeLicenseManagement":                   {},
	"targetedContent":                          {},
	"teamEditionDeviceCredential":              {},
	"teamEditionExperience":                    {},
	"teamEditionView":                          {},
	"uiAccess":                                 {},
	"uiAutomation":                             {},
	"unvirtualizedResources":                   {},
	"userDataAccountsProvider":                 {},
	"userDataSystem":                           {},
	"userPrincipalName":                        {},
	"userSystemId":                             {},
	"walletSystem":                             {},
	"xboxAccessoryManagement":                  {},
}

// ParseRestrictedCapability validates s as a restricted capability.
func ParseRestrictedCapability(s string) (RestrictedCapability, error) {
	if s == "" {
		return "", fmt.Errorf("restricted capability: %w", ErrEmpty)
	}
	if len(s) > maxCapabilityLength {
		return "", fmt.Errorf("restricted capability over %d characters: %w", maxCapabilityLength, ErrTooLong)
	}
	c := RestrictedCapability(s)
	if _, ok := validRestrictedCapabilities[c]; !ok {
		return "", fmt.Errorf("restricted capability %q: %w", s, ErrUnknownCapability)
	}
	return c, nil
}

// String returns the restricted capability as a plain string.
func (c RestrictedCapability) String() string { return string(c) }

// UnmarshalYAML decodes and validates a restricted capability.
func (c *RestrictedCapability) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRestrictedCapability(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
