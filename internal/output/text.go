// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"ridehr/internal/report"
)

// RowFunc renders one report into TSV lines.
type RowFunc func(report.Report) []string

// StreamText writes reports from a channel as TSV, one line per segment.
func StreamText(w io.Writer, in <-chan report.Report, header string, withHeader bool, rows RowFunc) error {
	if withHeader {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}
	for rep := range in {
		for _, line := range rows(rep) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteText writes a slice of reports as TSV (buffered path, used when
// sorting).
func WriteText(w io.Writer, list []report.Report, header string, withHeader bool, rows RowFunc) error {
	if withHeader {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}
	for _, rep := range list {
		for _, line := range rows(rep) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
