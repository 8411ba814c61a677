// Package models holds the value types returned by the typed row accessors.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fjacquet/typed-csv/internal/currencyutils"
)

// Money represents a monetary value with an optional currency code.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney creates a new Money instance with the given amount and currency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// ParseMoney parses a textual amount into a Money value. A leading ISO
// currency code ("CHF 1'234.56") is captured; bare amounts ("1,234.56",
// "€1.234,56") parse with an empty currency.
func ParseMoney(s string) (Money, error) {
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value '%s': %w", s, err)
	}
	return Money{
		Amount:   amount,
		Currency: currencyutils.ExtractCurrency(s),
	}, nil
}

// ZeroMoney returns a Money instance with zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{
		Amount:   decimal.Zero,
		Currency: currency,
	}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative returns true if the amount is negative.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Abs returns the absolute value of the money amount.
func (m Money) Abs() Money {
	return Money{
		Amount:   m.Amount.Abs(),
		Currency: m.Currency,
	}
}

// Add adds another Money value to this one.
// Returns an error if currencies don't match.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}, nil
}

// Equal returns true if two Money values have the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

// String returns a string representation of the money value.
func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}
