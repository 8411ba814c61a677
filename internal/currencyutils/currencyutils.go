// Package currencyutils provides the currency-amount parsing used by the
// money row accessor.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}\b`)

var symbolRe = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ExtractCurrency returns the ISO currency code prefixing an amount string,
// or "" when the string carries no code ("CHF 1'234.56" yields "CHF").
func ExtractCurrency(amountStr string) string {
	return currencyCodeRe.FindString(strings.TrimSpace(amountStr))
}

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1,234.56", "1.234,56", "1'234.56" and
// amounts carrying currency symbols or codes.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		log.WithField("value", amountStr).Debug("Amount did not standardize to a decimal")
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a form that
// decimal.NewFromString accepts. Handles patterns like "CHF 1'234.56",
// "€1.234,56", "$1,234.56" and "1 234,56".
func StandardizeAmount(amountStr string) string {
	amountStr = currencyCodeRe.ReplaceAllString(strings.TrimSpace(amountStr), "")
	amountStr = symbolRe.ReplaceAllString(amountStr, "")

	// Decide which of comma and period is the decimal separator.
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes are always thousand separators (1'234.56)
	return strings.ReplaceAll(amountStr, "'", "")
}
