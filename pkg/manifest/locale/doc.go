// Package locale defines the defaultLocale and locale manifests of the
// WinGet schema: the human-readable package metadata such as publisher,
// description, license, tags, agreements, documentation, and icons.
package locale
