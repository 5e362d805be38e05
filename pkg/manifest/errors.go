package manifest

import "errors"

// Standard errors returned by the validated constructors in this package.
var (
	// ErrEmpty indicates a required string value was empty.
	ErrEmpty = errors.New("value is empty")
	// ErrTooLong indicates a value exceeded its maximum length.
	ErrTooLong = errors.New("value is too long")
	// ErrDisallowedCharacter indicates a value contained a control,
	// whitespace, or filesystem-reserved character.
	ErrDisallowedCharacter = errors.New("value contains a disallowed character")

	// ErrIdentifierEmptyPart indicates a package identifier contained an
	// empty dot-separated part.
	ErrIdentifierEmptyPart = errors.New("package identifier has an empty part")
	// ErrIdentifierPartTooLong indicates a package identifier part
	// exceeded the per-part length limit.
	ErrIdentifierPartTooLong = errors.New("package identifier part is too long")
	// ErrIdentifierPartCount indicates a package identifier did not have
	// between two and eight parts.
	ErrIdentifierPartCount = errors.New("package identifier must have between 2 and 8 parts")

	// ErrManifestVersionNoMinor indicates a manifest version string was
	// missing the minor component.
	ErrManifestVersionNoMinor = errors.New("manifest version has no minor component")
	// ErrManifestVersionNoPatch indicates a manifest version string was
	// missing the patch component.
	ErrManifestVersionNoPatch = errors.New("manifest version has no patch component")
	// ErrManifestVersionPart indicates a manifest version component was
	// not an unsigned 16-bit integer.
	ErrManifestVersionPart = errors.New("manifest version component is not a number")

	// ErrUnknownManifestType indicates an unrecognized ManifestType value.
	ErrUnknownManifestType = errors.New("unknown manifest type")

	// ErrFieldRequired indicates a manifest was missing a field its
	// schema marks as mandatory.
	ErrFieldRequired = errors.New("required field is missing")

	// ErrInvalidLanguageTag indicates a string was not a well-formed
	// BCP 47 language tag.
	ErrInvalidLanguageTag = errors.New("invalid language tag")

	// ErrDigestLength indicates a SHA-256 digest string was not exactly
	// 64 characters.
	ErrDigestLength = errors.New("sha256 digest must be 64 hex characters")
	// ErrDigestCharacter indicates a SHA-256 digest string contained a
	// non-hexadecimal character.
	ErrDigestCharacter = errors.New("sha256 digest contains a non-hex character")

	// ErrURLNotAbsolute indicates a URL had no scheme after decoding.
	ErrURLNotAbsolute = errors.New("url is not absolute")

	// ErrInvalidDate indicates a date string was not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD form")
)
