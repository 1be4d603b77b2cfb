package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/moneyfmt/moneyfmt/internal/domain"
)

// InputParser handles parsing of batch input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// rawEntry keeps the amount as text so parse failures surface as validation
// errors instead of a generic unmarshal failure.
type rawEntry struct {
	Label        string `yaml:"label"`
	Amount       string `yaml:"amount"`
	Style        string `yaml:"style"`
	ExcludeCents bool   `yaml:"exclude_cents"`
	Locale       string `yaml:"locale"`
}

type rawBatch struct {
	Title   string     `yaml:"title"`
	Entries []rawEntry `yaml:"entries"`
}

// LoadFromFile loads a batch definition from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates a YAML batch definition
func (ip *InputParser) Parse(data []byte) (*domain.Batch, error) {
	var raw rawBatch
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	batch, err := ip.validateBatch(&raw)
	if err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}
	return batch, nil
}

// validateBatch checks the raw input and converts it to the domain form
func (ip *InputParser) validateBatch(raw *rawBatch) (*domain.Batch, error) {
	if len(raw.Entries) == 0 {
		return nil, fmt.Errorf("no entries provided")
	}

	batch := &domain.Batch{Title: raw.Title, Entries: make([]domain.Entry, 0, len(raw.Entries))}
	for i, e := range raw.Entries {
		entry, err := ip.validateEntry(&e)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s) validation failed: %w", i, e.Label, err)
		}
		batch.Entries = append(batch.Entries, entry)
	}
	return batch, nil
}

func (ip *InputParser) validateEntry(e *rawEntry) (domain.Entry, error) {
	if e.Label == "" {
		return domain.Entry{}, fmt.Errorf("label is required")
	}
	amount, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("amount %q is not a valid decimal: %w", e.Amount, err)
	}

	style := domain.Style(e.Style)
	if e.Style == "" {
		style = domain.StyleCurrency
	}
	switch style {
	case domain.StyleCurrency, domain.StylePercent:
	default:
		return domain.Entry{}, fmt.Errorf("unknown style %q", e.Style)
	}
	if style == domain.StylePercent && e.ExcludeCents {
		return domain.Entry{}, fmt.Errorf("exclude_cents does not apply to percent entries")
	}

	return domain.Entry{
		Label:        e.Label,
		Amount:       amount,
		Style:        style,
		ExcludeCents: e.ExcludeCents,
		Locale:       e.Locale,
	}, nil
}
