package moneyfmt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxRoundDigits bounds RoundTo's fractional place count.
const maxRoundDigits = 28

// RoundTo rounds to the given number of fractional places using banker's
// rounding. A nil input passes through as a nil output. Digits outside
// [0, 28] fail with ErrInvalidDigits.
func RoundTo(v *decimal.Decimal, digits int) (*decimal.Decimal, error) {
	if digits < 0 || digits > maxRoundDigits {
		return nil, fmt.Errorf("round to %d places outside 0..%d: %w", digits, maxRoundDigits, ErrInvalidDigits)
	}
	if v == nil {
		return nil, nil
	}
	r := v.RoundBank(int32(digits))
	return &r, nil
}

// ToCurrencyRounded rounds a value to currency precision using banker's
// rounding: two fractional places, or whole units when includeCents is false.
func ToCurrencyRounded(v decimal.Decimal, includeCents bool) decimal.Decimal {
	if includeCents {
		return v.RoundBank(2)
	}
	return v.RoundBank(0)
}

// ToInt64 rounds to the nearest integer with halves away from zero
// (2.5 -> 3, -2.5 -> -3) and fails with ErrOverflow when the result does
// not fit in an int64.
func ToInt64(v decimal.Decimal) (int64, error) {
	bi := v.Round(0).BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("%s does not fit in int64: %w", v, ErrOverflow)
	}
	return bi.Int64(), nil
}

// SafeDivide divides numerator by denominator, returning zero when the
// denominator is exactly zero. Callers that must distinguish "legitimately
// zero" from "division undefined" should check the denominator themselves.
func SafeDivide(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}
