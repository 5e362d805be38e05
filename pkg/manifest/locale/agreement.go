package locale

import "github.com/dukaforge/winget-types/pkg/manifest"

// Agreement is a package agreement the user accepts at install time,
// such as an end-user license agreement.
type Agreement struct {
	Label string              `yaml:"AgreementLabel,omitempty"`
	Text  string              `yaml:"Agreement,omitempty"`
	URL   manifest.DecodedURL `yaml:"AgreementUrl,omitempty"`
}

// IsEmpty reports whether every field is unset.
func (a *Agreement) IsEmpty() bool {
	return a.Label == "" && a.Text == "" && a.URL == ""
}
