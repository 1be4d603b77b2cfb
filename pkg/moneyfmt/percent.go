package moneyfmt

import "github.com/shopspring/decimal"

// FormatPercent formats a fraction as a percentage: the value is multiplied
// by 100 and rounded to two places using banker's rounding. Trailing
// fractional zeros are dropped (0.5 -> "50%", 0.3333 -> "33.33%") and an
// all-zero result always renders as "0%".
func FormatPercent(v decimal.Decimal) string {
	p := v.Shift(2).RoundBank(2)
	if p.IsZero() {
		return "0%"
	}
	return p.String() + "%"
}
