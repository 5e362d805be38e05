package locale

import "errors"

// Standard errors returned by the validated constructors in this package.
var (
	// ErrEmpty indicates a required string value was empty.
	ErrEmpty = errors.New("value is empty")
	// ErrTooShort indicates a value below its minimum length.
	ErrTooShort = errors.New("value is too short")
	// ErrTooLong indicates a value exceeded its maximum length.
	ErrTooLong = errors.New("value is too long")

	// ErrUnknownIconFileType indicates an icon file type other than
	// png, jpeg, or ico.
	ErrUnknownIconFileType = errors.New("unknown icon file type")
	// ErrUnknownIconTheme indicates an unrecognized icon theme.
	ErrUnknownIconTheme = errors.New("unknown icon theme")
	// ErrUnknownIconResolution indicates an unrecognized icon resolution.
	ErrUnknownIconResolution = errors.New("unknown icon resolution")
)
