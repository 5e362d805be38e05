package installer

import "errors"

// Standard errors returned by the validated constructors in this package.
var (
	// ErrEmpty indicates a required string value was empty.
	ErrEmpty = errors.New("value is empty")
	// ErrTooLong indicates a value exceeded its maximum length.
	ErrTooLong = errors.New("value is too long")
	// ErrInvalidCharacter indicates a value contained a control or
	// filesystem-reserved character.
	ErrInvalidCharacter = errors.New("value contains an invalid character")

	// ErrUnknownArchitecture indicates an unrecognized architecture value.
	ErrUnknownArchitecture = errors.New("unknown architecture")
	// ErrUnknownScope indicates an unrecognized installer scope.
	ErrUnknownScope = errors.New("unknown scope")
	// ErrUnknownInstallerType indicates an unrecognized installer type.
	ErrUnknownInstallerType = errors.New("unknown installer type")
	// ErrUnknownNestedInstallerType indicates an installer type that
	// cannot appear inside an archive.
	ErrUnknownNestedInstallerType = errors.New("unknown nested installer type")
	// ErrUnknownUpgradeBehavior indicates an unrecognized upgrade behavior.
	ErrUnknownUpgradeBehavior = errors.New("unknown upgrade behavior")
	// ErrUnknownRepairBehavior indicates an unrecognized repair behavior.
	ErrUnknownRepairBehavior = errors.New("unknown repair behavior")
	// ErrUnknownElevationRequirement indicates an unrecognized elevation
	// requirement.
	ErrUnknownElevationRequirement = errors.New("unknown elevation requirement")
	// ErrUnknownReturnResponse indicates an unrecognized return response.
	ErrUnknownReturnResponse = errors.New("unknown return response")
	// ErrUnknownAuthenticationType indicates an unrecognized
	// authentication type.
	ErrUnknownAuthenticationType = errors.New("unknown authentication type")
	// ErrUnknownInstallMode indicates an unrecognized install mode.
	ErrUnknownInstallMode = errors.New("unknown install mode")
	// ErrUnknownUnsupportedArgument indicates an unsupported-argument
	// value other than Log or Location.
	ErrUnknownUnsupportedArgument = errors.New("unknown unsupported argument")
	// ErrUnknownPlatform indicates an unrecognized Windows platform.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrUnknownCapability indicates an unrecognized MSIX capability.
	ErrUnknownCapability = errors.New("unknown capability")
	// ErrUnknownMetadataFileType indicates an unrecognized installed-file
	// type.
	ErrUnknownMetadataFileType = errors.New("unknown metadata file type")

	// ErrReturnCodeZero indicates a return code of zero, which installers
	// reserve for success.
	ErrReturnCodeZero = errors.New("return code must not be zero")
	// ErrReturnCodeRange indicates a return code outside the range an
	// installer can produce.
	ErrReturnCodeRange = errors.New("return code out of range")

	// ErrInvalidOSVersion indicates a malformed minimum OS version.
	ErrInvalidOSVersion = errors.New("invalid minimum os version")

	// ErrMarketLength indicates a market code that is not two characters.
	ErrMarketLength = errors.New("market must be exactly 2 characters")
	// ErrMarketCharacter indicates a market code with characters other
	// than ASCII uppercase letters.
	ErrMarketCharacter = errors.New("market must be ASCII uppercase")
	// ErrTooManyMarkets indicates a market set over the 256-entry limit.
	ErrTooManyMarkets = errors.New("too many markets")
	// ErrMarketsConflict indicates a Markets value naming both allowed
	// and excluded sets.
	ErrMarketsConflict = errors.New("markets cannot be both allowed and excluded")
	// ErrMarketsEmpty indicates a Markets value naming neither an
	// allowed nor an excluded set.
	ErrMarketsEmpty = errors.New("markets name neither an allowed nor an excluded set")

	// ErrInvalidPackageFamilyName indicates a malformed package family
	// name.
	ErrInvalidPackageFamilyName = errors.New("invalid package family name")
)
