package moneyfmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func mustFormat(t *testing.T, v string, excludeCents bool) string {
	t.Helper()
	got, err := FormatCurrency(decimal.RequireFromString(v), excludeCents)
	if err != nil {
		t.Fatalf("FormatCurrency(%s, %v) unexpected error: %v", v, excludeCents, err)
	}
	return got
}

func TestFormatCurrencyTwoPlaces(t *testing.T) {
	cases := []struct{ in, out string }{
		{"0", "$0.00"},
		{"0.05", "$0.05"}, // cents are zero-padded
		{"1234.56", "$1,234.56"},
		{"-0.99", "-$0.99"},
		{"1000000", "$1,000,000.00"},
		{"999.999", "$1,000.00"},  // cents rounding carries into dollars
		{"0.999", "$1.00"},
		{"-0.001", "$0.00"},       // rounds to zero, sign suppressed
		{"-0.005", "$0.00"},       // half to even at the boundary
		{"2.345", "$2.34"},        // banker's: 4 is even
		{"2.355", "$2.36"},
		{"-2.345", "-$2.34"},
		{"9223372036854775807", "$9,223,372,036,854,775,807.00"},
	}
	for _, c := range cases {
		if got := mustFormat(t, c.in, false); got != c.out {
			t.Fatalf("FormatCurrency(%s) got %q want %q", c.in, got, c.out)
		}
	}
}

func TestFormatCurrencyExcludeCents(t *testing.T) {
	// Excluded places round rather than truncate: half-to-even at the
	// units digit.
	cases := []struct{ in, out string }{
		{"0", "$0"},
		{"1234.56", "$1,235"},
		{"1234.5", "$1,234"}, // halfway, 4 is even
		{"1235.5", "$1,236"},
		{"-0.99", "-$1"},
		{"-0.4", "$0"},
		{"1000000", "$1,000,000"},
	}
	for _, c := range cases {
		if got := mustFormat(t, c.in, true); got != c.out {
			t.Fatalf("FormatCurrency(%s, exclude) got %q want %q", c.in, got, c.out)
		}
	}
}

func TestFormatCurrencyNegationSymmetry(t *testing.T) {
	values := []string{"0.01", "0.99", "1", "1234.56", "999999.995", "1000000"}
	for _, s := range values {
		for _, exclude := range []bool{false, true} {
			v := decimal.RequireFromString(s)
			pos, err := FormatCurrency(v, exclude)
			if err != nil {
				t.Fatalf("FormatCurrency(%s): %v", s, err)
			}
			neg, err := FormatCurrency(v.Neg(), exclude)
			if err != nil {
				t.Fatalf("FormatCurrency(-%s): %v", s, err)
			}
			rounded := ToCurrencyRounded(v, !exclude)
			if rounded.IsZero() {
				if neg != pos {
					t.Fatalf("zero-rounded %s: got %q and %q", s, pos, neg)
				}
			} else if neg != "-"+pos {
				t.Fatalf("negation symmetry broken for %s: %q vs %q", s, pos, neg)
			}
		}
	}
}

func TestFormatCurrencyGrouping(t *testing.T) {
	// k integral digits carry floor((k-1)/3) separators.
	v := decimal.NewFromInt(1)
	for k := 1; k <= 18; k++ {
		got, err := FormatCurrency(v, true)
		if err != nil {
			t.Fatalf("FormatCurrency(10^%d): %v", k-1, err)
		}
		want := (k - 1) / 3
		if n := strings.Count(got, ","); n != want {
			t.Fatalf("%q has %d separators, want %d", got, n, want)
		}
		v = v.Mul(decimal.NewFromInt(10))
	}
}

func TestFormatCurrencyOverflow(t *testing.T) {
	cases := []struct {
		in      string
		exclude bool
	}{
		{"9223372036854775808", false},          // MaxInt64 + 1
		{"-9223372036854775808", false},         // magnitude beyond MaxInt64
		{"9223372036854775807.996", false},      // cents carry past the bound
		{"9223372036854775807.5", true},         // units carry past the bound
		{"99999999999999999999999999", false},
	}
	for _, c := range cases {
		_, err := FormatCurrency(decimal.RequireFromString(c.in), c.exclude)
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("FormatCurrency(%s, %v) error = %v, want ErrOverflow", c.in, c.exclude, err)
		}
	}
}

func TestFormatCurrencyOptional(t *testing.T) {
	got, err := FormatCurrencyOptional(nil, false)
	if got != nil || err != nil {
		t.Fatalf("nil input: got %v, %v", got, err)
	}

	v := decimal.RequireFromString("1234.56")
	got, err = FormatCurrencyOptional(&v, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "$1,234.56" {
		t.Fatalf("got %v want $1,234.56", got)
	}

	huge := decimal.RequireFromString("9223372036854775808")
	if _, err := FormatCurrencyOptional(&huge, false); !errors.Is(err, ErrOverflow) {
		t.Fatalf("overflow not surfaced: %v", err)
	}
}

func TestFormatCurrencyLocale(t *testing.T) {
	v := decimal.RequireFromString("1234567.89")
	cases := []struct{ tag, out string }{
		{"en-US", "$1,234,567.89"},
		{"en-GB", "£1,234,567.89"},
		{"de-DE", "1.234.567,89 €"},
		{"fr-FR", "1 234 567,89 €"},
		{"nonsense", "$1,234,567.89"}, // unknown tag falls back to en-US
	}
	for _, c := range cases {
		got, err := FormatCurrencyLocale(v, c.tag, false)
		if err != nil {
			t.Fatalf("FormatCurrencyLocale(%s): %v", c.tag, err)
		}
		if got != c.out {
			t.Fatalf("FormatCurrencyLocale(%s) got %q want %q", c.tag, got, c.out)
		}
	}

	neg, err := FormatCurrencyLocale(v.Neg(), "de-DE", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if neg != "-1.234.568 €" {
		t.Fatalf("de-DE exclude got %q", neg)
	}
}
