// Package moneyfmt formats exact decimal values as currency and percentage
// strings with proper financial rounding.
package moneyfmt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with a thousands separator
// every three integral digits. With excludeCents set, the cents are rounded
// into the dollar digit (half-to-even) and the fractional part is omitted.
// Returns ErrOverflow when the rounded integral part does not fit in an int64.
func FormatCurrency(v decimal.Decimal, excludeCents bool) (string, error) {
	return formatCurrency(v, excludeCents, usLocale)
}

// FormatCurrencyOptional is the nullable wrapper around FormatCurrency:
// a nil input produces a nil output with no error.
func FormatCurrencyOptional(v *decimal.Decimal, excludeCents bool) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := FormatCurrency(*v, excludeCents)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// formatCurrency renders right-to-left into a fixed-size scratch buffer, so
// the only allocation is the returned string. Rounding is half-to-even
// (banker's rounding) at two places, or at zero places with excludeCents.
func formatCurrency(v decimal.Decimal, excludeCents bool, loc Locale) (string, error) {
	neg := v.IsNegative()
	places := int32(2)
	if excludeCents {
		places = 0
	}
	rounded := v.Abs().RoundBank(places)

	whole := rounded.Truncate(0)
	bi := whole.BigInt()
	if !bi.IsInt64() {
		return "", fmt.Errorf("integral part of %s exceeds the 64-bit bound: %w", v, ErrOverflow)
	}
	units := bi.Int64()
	var cents int64
	if !excludeCents {
		cents = rounded.Sub(whole).Shift(2).IntPart()
	}
	// A magnitude that rounded to zero renders unsigned.
	if neg && units == 0 && cents == 0 {
		neg = false
	}

	var buf [48]byte
	i := len(buf)
	if loc.SuffixSymbol {
		i -= len(loc.Symbol)
		copy(buf[i:], loc.Symbol)
		i--
		buf[i] = ' '
	}
	if !excludeCents {
		i--
		buf[i] = '0' + byte(cents%10)
		i--
		buf[i] = '0' + byte(cents/10)
		i--
		buf[i] = loc.Decimal
	}
	n := units
	digits := 0
	for {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
		digits++
		if n == 0 {
			break
		}
		if digits%3 == 0 {
			i--
			buf[i] = loc.Group
		}
	}
	if !loc.SuffixSymbol {
		i -= len(loc.Symbol)
		copy(buf[i:], loc.Symbol)
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:]), nil
}
