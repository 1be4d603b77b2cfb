package domain

import (
	"github.com/shopspring/decimal"
)

// Style selects how a batch entry is rendered.
type Style string

const (
	StyleCurrency Style = "currency"
	StylePercent  Style = "percent"
)

// Entry is one value to format in a batch run.
type Entry struct {
	Label        string          `yaml:"label" json:"label"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	Style        Style           `yaml:"style" json:"style"`
	ExcludeCents bool            `yaml:"exclude_cents" json:"exclude_cents"`
	Locale       string          `yaml:"locale,omitempty" json:"locale,omitempty"`
}

// Batch is the parsed input of a batch run.
type Batch struct {
	Title   string  `yaml:"title" json:"title"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// RenderedLine is one formatted entry ready for output.
type RenderedLine struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Report is the rendered form of a batch, consumed by the output formatters.
type Report struct {
	Title string         `json:"title"`
	Lines []RenderedLine `json:"lines"`
}
