package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates a monetary value that cannot be represented as a
// two-decimal fixed-point amount, or an amount outside the allowed range for an
// operation (e.g. a non-positive payment).
var ErrInvalidAmount = errors.New("invalid amount")

// AmountDecimals is the fixed number of fractional digits for every stored
// monetary value. All arithmetic happens in decimal space; float64 is never
// used for persisted amounts.
const AmountDecimals = 2

// ParseAmount parses a decimal string into an amount with at most two
// fractional digits. Strings carrying more precision are rejected rather than
// silently rounded, so "1.005" is an error and not 1.01 or 1.00.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	if d.Exponent() < -AmountDecimals {
		return decimal.Zero, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, AmountDecimals)
	}
	return d, nil
}

// FormatAmount renders an amount with exactly two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountDecimals)
}

// ValidateAmountPrecision rejects values that cannot be represented with two
// fractional digits. Used at the request boundary for amounts that arrive as
// JSON numbers rather than strings.
func ValidateAmountPrecision(d decimal.Decimal) error {
	if d.Exponent() < -AmountDecimals {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, d.String(), AmountDecimals)
	}
	return nil
}
