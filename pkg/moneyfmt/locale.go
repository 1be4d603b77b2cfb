package moneyfmt

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Locale carries the symbol and separator characters for one culture.
// Only cultures that group integral digits in threes are supported.
type Locale struct {
	Symbol       string
	Group        byte
	Decimal      byte
	SuffixSymbol bool
}

// usLocale is the core contract: ASCII output, "$" prefix, comma grouping.
var usLocale = Locale{Symbol: "$", Group: ',', Decimal: '.'}

// localeTable is built at most once and read-only afterwards, so concurrent
// lookups need no locking.
var localeTable = sync.OnceValue(func() map[string]Locale {
	return map[string]Locale{
		"en-US": usLocale,
		"en-GB": {Symbol: "£", Group: ',', Decimal: '.'},
		"de-DE": {Symbol: "€", Group: '.', Decimal: ',', SuffixSymbol: true},
		"fr-FR": {Symbol: "€", Group: ' ', Decimal: ',', SuffixSymbol: true},
		"ja-JP": {Symbol: "¥", Group: ',', Decimal: '.'},
	}
})

// FormatCurrencyLocale formats like FormatCurrency but with the symbol and
// separators of the named locale. An unknown tag falls back to en-US.
func FormatCurrencyLocale(v decimal.Decimal, tag string, excludeCents bool) (string, error) {
	loc, ok := localeTable()[tag]
	if !ok {
		loc = usLocale
	}
	return formatCurrency(v, excludeCents, loc)
}
