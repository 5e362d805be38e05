package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewMarket(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "us", input: "US"},
		{name: "gb", input: "GB"},
		{name: "lowercase", input: "us", wantErr: ErrMarketCharacter},
		{name: "digit", input: "U1", wantErr: ErrMarketCharacter},
		{name: "one character", input: "U", wantErr: ErrMarketLength},
		{name: "three characters", input: "USA", wantErr: ErrMarketLength},
		{name: "empty", input: "", wantErr: ErrMarketLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market, err := NewMarket(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, market.String())
			}
		})
	}
}

func TestMarketsValidate(t *testing.T) {
	allowed := Markets{Allowed: []Market{"US", "GB"}}
	assert.NoError(t, allowed.Validate())

	excluded := Markets{Excluded: []Market{"US"}}
	assert.NoError(t, excluded.Validate())

	both := Markets{Allowed: []Market{"US"}, Excluded: []Market{"GB"}}
	assert.ErrorIs(t, both.Validate(), ErrMarketsConflict)

	neither := Markets{}
	assert.ErrorIs(t, neither.Validate(), ErrMarketsEmpty)
}

func TestMarketsDecode(t *testing.T) {
	var markets Markets
	err := yaml.Unmarshal([]byte("AllowedMarkets:\n  - US\n  - GB\n"), &markets)
	require.NoError(t, err)
	assert.Equal(t, []Market{"US", "GB"}, markets.Allowed)
	assert.Empty(t, markets.Excluded)

	err = yaml.Unmarshal([]byte("AllowedMarkets: [US]\nExcludedMarkets: [GB]\n"), &markets)
	assert.ErrorIs(t, err, ErrMarketsConflict)

	err = yaml.Unmarshal([]byte("{}\n"), &markets)
	assert.ErrorIs(t, err, ErrMarketsEmpty)
}
