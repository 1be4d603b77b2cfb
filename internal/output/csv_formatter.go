package output

import (
	"bytes"
	"encoding/csv"

	"github.com/moneyfmt/moneyfmt/internal/domain"
)

// CSVFormatter implements the summary CSV output (one row per line).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Label", "Formatted"}); err != nil {
		return nil, err
	}
	for _, line := range report.Lines {
		if err := w.Write([]string{line.Label, line.Text}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
