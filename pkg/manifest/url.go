package manifest

import (
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
)

// DecodedURL is an absolute URL with percent-encoding removed, so
// "https://example.com/my%20file" and "https://example.com/my file"
// compare equal.
type DecodedURL string

// Typed URL fields of the manifest schema. They share DecodedURL's
// validation and YAML codec.
type (
	PublisherURL        = DecodedURL
	PublisherSupportURL = DecodedURL
	LicenseURL          = DecodedURL
	CopyrightURL        = DecodedURL
	PackageURL          = DecodedURL
	ReleaseNotesURL     = DecodedURL
	ReturnResponseURL   = DecodedURL
)

// NewDecodedURL percent-decodes s and validates it as an absolute URL.
// Input that is not valid percent-encoding is kept as-is.
func NewDecodedURL(s string) (DecodedURL, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		decoded = s
	}
	parsed, err := url.Parse(decoded)
	if err != nil {
		return "", fmt.Errorf("url %q: %w", s, err)
	}
	if !parsed.IsAbs() {
		return "", fmt.Errorf("url %q: %w", s, ErrURLNotAbsolute)
	}
	return DecodedURL(decoded), nil
}

// String returns the decoded URL as a plain string.
func (u DecodedURL) String() string { return string(u) }

// UnmarshalYAML decodes and validates a URL.
func (u *DecodedURL) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewDecodedURL(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
