package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/moneyfmt/moneyfmt/internal/domain"
)

// ConsoleFormatter renders a report as aligned plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if report.Title != "" {
		fmt.Fprintln(&buf, report.Title)
		fmt.Fprintln(&buf, strings.Repeat("=", len(report.Title)))
	}
	width := 0
	for _, line := range report.Lines {
		if len(line.Label) > width {
			width = len(line.Label)
		}
	}
	for _, line := range report.Lines {
		fmt.Fprintf(&buf, "%-*s  %s\n", width, line.Label, line.Text)
	}
	return buf.Bytes(), nil
}
