package output

import (
	"fmt"

	"github.com/moneyfmt/moneyfmt/internal/domain"
	"github.com/moneyfmt/moneyfmt/pkg/moneyfmt"
)

// RenderBatch formats every entry of a batch into a report. The first entry
// that fails (an overflow, in practice) aborts the whole render.
func RenderBatch(batch *domain.Batch) (*domain.Report, error) {
	report := &domain.Report{Title: batch.Title, Lines: make([]domain.RenderedLine, 0, len(batch.Entries))}
	for _, e := range batch.Entries {
		text, err := renderEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.Label, err)
		}
		report.Lines = append(report.Lines, domain.RenderedLine{Label: e.Label, Text: text})
	}
	return report, nil
}

func renderEntry(e domain.Entry) (string, error) {
	switch e.Style {
	case domain.StylePercent:
		return moneyfmt.FormatPercent(e.Amount), nil
	default:
		if e.Locale != "" {
			return moneyfmt.FormatCurrencyLocale(e.Amount, e.Locale, e.ExcludeCents)
		}
		return moneyfmt.FormatCurrency(e.Amount, e.ExcludeCents)
	}
}
