// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"ridehr/internal/report"
	"ridehr/internal/writers"
)

// ReportWriterFactory emits full per-segment analysis rows.
type ReportWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewReportWriterFactory(format string, sort, header bool) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- report.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, w.Sort, w.Header, bufSize)
}

// SegmentWriterFactory emits segment boundaries only.
type SegmentWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewSegmentWriterFactory(format string, sort, header bool) SegmentWriterFactory {
	return SegmentWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w SegmentWriterFactory) Start(out io.Writer, bufSize int) (chan<- report.Report, <-chan error) {
	return writers.StartSegmentWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
