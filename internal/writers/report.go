// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"ridehr/internal/common"
	"ridehr/internal/output"
	"ridehr/internal/report"
)

// StartReportWriter spins up a writer goroutine for full ride reports.
// The returned channel accepts reports; the error channel yields the
// writer's first error once the input channel is closed and drained.
func StartReportWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- report.Report, <-chan error) {
	return start(out, format, sort, header, bufSize, output.TSVHeader, output.Rows)
}

// StartSegmentWriter is the segments-only variant (no HR columns in text
// output; json/jsonl carry the full report either way).
func StartSegmentWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- report.Report, <-chan error) {
	return start(out, format, sort, header, bufSize, output.SegTSVHeader, output.SegRows)
}

func start(out io.Writer, format string, sort, header bool, bufSize int, tsvHeader string, rows output.RowFunc) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []report.Report
			for rep := range in {
				buf = append(buf, rep)
			}
			if sort {
				common.SortReports(buf)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatJSONL:
			if sort {
				var buf []report.Report
				for rep := range in {
					buf = append(buf, rep)
				}
				common.SortReports(buf)
				err = output.WriteJSONL(out, buf)
			} else {
				err = output.StreamJSONL(out, in)
			}

		case output.FormatText:
			if sort {
				var buf []report.Report
				for rep := range in {
					buf = append(buf, rep)
				}
				common.SortReports(buf)
				err = output.WriteText(out, buf, tsvHeader, header, rows)
			} else {
				err = output.StreamText(out, in, tsvHeader, header, rows)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so senders never block after a write error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
