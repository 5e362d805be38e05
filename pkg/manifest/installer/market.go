package installer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const maxMarkets = 256

// Market is a two-letter uppercase market code, such as "US".
type Market string

// NewMarket validates s as a market code.
func NewMarket(s string) (Market, error) {
	if len(s) != 2 {
		return "", fmt.Errorf("market %q: %w", s, ErrMarketLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", fmt.Errorf("market %q: %w", s, ErrMarketCharacter)
		}
	}
	return Market(s), nil
}

// String returns the market code as a plain string.
func (m Market) String() string { return string(m) }

// UnmarshalYAML decodes and validates a market code.
func (m *Market) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewMarket(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Markets restricts the markets a package may be shown in. A package
// names exactly one of the two sets: the markets it is allowed in, or
// the markets it is excluded from.
type Markets struct {
	Allowed  []Market `yaml:"AllowedMarkets,omitempty"`
	Excluded []Market `yaml:"ExcludedMarkets,omitempty"`
}

// Validate checks the market sets against the schema limits.
func (m *Markets) Validate() error {
	switch {
	case len(m.Allowed) > 0 && len(m.Excluded) > 0:
		return ErrMarketsConflict
	case len(m.Allowed) == 0 && len(m.Excluded) == 0:
		return ErrMarketsEmpty
	case len(m.Allowed) > maxMarkets || len(m.Excluded) > maxMarkets:
		return fmt.Errorf("over %d markets: %w", maxMarkets, ErrTooManyMarkets)
	}
	return nil
}

// UnmarshalYAML decodes and validates a market restriction.
func (m *Markets) UnmarshalYAML(value *yaml.Node) error {
	type plain Markets
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	parsed := Markets(p)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*m = parsed
	return nil
}
