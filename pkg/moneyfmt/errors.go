package moneyfmt

import "errors"

// Sentinel errors; callers match with errors.Is.
var (
	// ErrOverflow reports a magnitude or rounded result outside the
	// representable range (integral part beyond int64).
	ErrOverflow = errors.New("moneyfmt: value outside representable range")

	// ErrInvalidDigits reports a fractional digit count outside the
	// supported rounding range.
	ErrInvalidDigits = errors.New("moneyfmt: digits outside supported range")
)
