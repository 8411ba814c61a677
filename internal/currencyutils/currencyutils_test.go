package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	customLogger := logrus.New()

	originalLogger := log
	defer func() {
		log = originalLogger
	}()

	SetLogger(customLogger)
	assert.Equal(t, customLogger, log)

	// nil must not replace the current logger
	SetLogger(nil)
	assert.Equal(t, customLogger, log)
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "1234.56", "1234.56"},
		{"US format", "1,234.56", "1234.56"},
		{"European format", "1.234,56", "1234.56"},
		{"comma decimal", "1234,56", "1234.56"},
		{"comma thousands only", "1,234", "1234"},
		{"swiss apostrophe", "1'234.56", "1234.56"},
		{"currency code prefix", "CHF 1'234.56", "1234.56"},
		{"euro symbol", "€1.234,56", "1234.56"},
		{"dollar symbol", "$1,234.56", "1234.56"},
		{"spaces", "1 234.56", "1234.56"},
		{"negative", "-1234.56", "-1234.56"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{"plain", "1234.56", "1234.56", false},
		{"empty is zero", "", "0", false},
		{"currency code", "CHF 1'234.56", "1234.56", false},
		{"negative", "-42.10", "-42.1", false},
		{"nonsense", "lots", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, amount.Equal(decimal.RequireFromString(tc.expected)),
					"expected %s, got %s", tc.expected, amount.String())
			}
		})
	}
}

func TestExtractCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"code with space", "CHF 1'234.56", "CHF"},
		{"code glued to digits", "USD123", ""},
		{"no code", "1234.56", ""},
		{"symbol only", "€1.234,56", ""},
		{"lowercase ignored", "chf 10", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractCurrency(tc.input))
		})
	}
}
