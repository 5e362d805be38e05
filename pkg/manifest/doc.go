// Package manifest defines the shared scalar types of the WinGet
// manifest schema: package identifiers, package and manifest versions,
// manifest types, language tags, SHA-256 digests, and decoded URLs.
// All validated types decode from YAML with the same rules their
// constructors enforce.
package manifest
