package locale

import (
	"gopkg.in/yaml.v3"
)

// License is the license the package is distributed under, either an
// SPDX identifier or a free-form name.
type License string

const (
	minLicenseLength = 3
	maxLicenseLength = 512
)

// Common license values. Closed-source packages use
// LicenseProprietary; the rest are SPDX identifiers.
const (
	LicenseProprietary License = "Proprietary"

	LicenseApache1  License = "Apache-1.0"
	LicenseApache11 License = "Apache-1.1"
	LicenseApache2  License = "Apache-2.0"

	LicenseBSD3Clause License = "BSD-3-Clause"

	LicenseAGPL1Only    License = "AGPL-1.0-only"
	LicenseAGPL1OrLater License = "AGPL-1.0-or-later"
	LicenseAGPL3Only    License = "AGPL-3.0-only"
	LicenseAGPL3OrLater License = "AGPL-3.0-or-later"

	LicenseGPL1Only    License = "GPL-1.0-only"
	LicenseGPL1OrLater License = "GPL-1.0-or-later"
	LicenseGPL2Only    License = "GPL-2.0-only"
	LicenseGPL2OrLater License = "GPL-2.0-or-later"
	LicenseGPL3Only    License = "GPL-3.0-only"
	LicenseGPL3OrLater License = "GPL-3.0-or-later"

	LicenseMIT License = "MIT"
)

// DefaultLicense returns the license assumed when a package does not
// declare one.
func DefaultLicense() License { return LicenseProprietary }

// NewLicense validates s as a license value.
func NewLicense(s string) (License, error) {
	if err := checkLength("license", s, minLicenseLength, maxLicenseLength); err != nil {
		return "", err
	}
	return License(s), nil
}

// String returns the license as a plain string.
func (l License) String() string { return string(l) }

// UnmarshalYAML decodes and validates a license value.
func (l *License) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewLicense(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
