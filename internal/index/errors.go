package index

import "errors"

// Sentinel errors returned by the store.
var (
	// ErrAlreadyAttached indicates Attach was called on an attached store.
	ErrAlreadyAttached = errors.New("store already attached")
	// ErrDetached indicates an operation on a store that is not attached.
	ErrDetached = errors.New("store not attached")
	// ErrNotFound indicates no manifest matched the key.
	ErrNotFound = errors.New("manifest not found")
	// ErrInvalidKey indicates a key with an empty identifier or version.
	ErrInvalidKey = errors.New("invalid manifest key")
	// ErrNoVersions indicates a package with no indexed versions.
	ErrNoVersions = errors.New("no versions indexed")
)
