// Package money holds the fixed-point helpers shared by the vault.
// Every balance and operation amount is a decimal with at most two
// fractional digits; binary floats never enter the arithmetic.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount flags a non-numeric, non-positive or too-precise amount.
var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// Parse converts a user-supplied string into an amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !HasCentPrecision(d) {
		return decimal.Zero, fmt.Errorf("%w: %q has more than 2 decimal places", ErrInvalidAmount, s)
	}
	return d, nil
}

// CheckPositive validates an amount used by a mutating operation
// (deposit, withdrawal, transfer).
func CheckPositive(d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: amount must be strictly positive, got %s", ErrInvalidAmount, d)
	}
	return nil
}

// Round rounds to the cent, the precision every amount is stored at.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// HasCentPrecision reports whether d has at most two decimal places.
func HasCentPrecision(d decimal.Decimal) bool {
	scaled := d.Mul(hundred)
	return scaled.Equal(scaled.Floor())
}

// Format renders an amount the way account summaries display it.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
