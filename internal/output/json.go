// internal/output/json.go
package output

import (
	"io"

	"ridehr/internal/jsonutil"
	"ridehr/internal/report"
	"ridehr/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(rep report.Report) api.ReportV1 {
	v := api.ReportV1{
		ID:           rep.ID,
		SourceFile:   rep.SourceFile,
		TargetBPM:    rep.Target,
		ToleranceBPM: rep.Tolerance,
		Duration:     rep.Duration,
		Samples:      rep.Samples,
	}
	for _, sg := range rep.Segments {
		sv := api.SegmentV1{
			Kind:       string(sg.Kind),
			Start:      sg.Start,
			End:        sg.End,
			Duration:   sg.Duration,
			Samples:    sg.HR.Samples,
			MeanHR:     sg.HR.MeanHR,
			MinHR:      sg.HR.MinHR,
			MaxHR:      sg.HR.MaxHR,
			StdDevHR:   sg.HR.StdDevHR,
			MeanDev:    sg.HR.MeanDev,
			TimeInBand: sg.HR.TimeInBand,
			PctInBand:  sg.HR.PctInBand,
			Drift:      sg.HR.Drift,
		}
		if sg.HasWatts {
			w := sg.AvgWatts
			sv.AvgWatts = &w
		}
		if sg.HasCadence {
			c := sg.AvgCadence
			sv.AvgCadence = &c
		}
		v.Segments = append(v.Segments, sv)
	}
	return v
}

func toAPIReports(list []report.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, rep := range list {
		out = append(out, ToAPIReport(rep))
	}
	return out
}

// WriteJSON writes a single pretty-indented JSON array of v1 reports.
func WriteJSON(w io.Writer, list []report.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}

// StreamJSONL writes one v1 report per line.
func StreamJSONL(w io.Writer, in <-chan report.Report) error {
	for rep := range in {
		if err := jsonutil.EncodeLine(w, ToAPIReport(rep)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSONL writes v1 reports one per line (buffered path).
func WriteJSONL(w io.Writer, list []report.Report) error {
	for _, rep := range list {
		if err := jsonutil.EncodeLine(w, ToAPIReport(rep)); err != nil {
			return err
		}
	}
	return nil
}
