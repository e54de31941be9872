// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"ridehr/internal/report"
)

// TSVHeader is the canonical header row for ridehr text output.
// Keep this as the single source of truth; all writers use it.
const TSVHeader = "source_file\tsegment\tstart\tend\tduration\tavg_watts\tavg_cadence\tavg_hr\tmin_hr\tmax_hr\thr_sd\tdev_from_target\ttime_in_band\tpct_in_band\tdrift"

// SegTSVHeader is the header for the segments-only view (ridehr-segments).
const SegTSVHeader = "source_file\tsegment\tstart\tend\tduration\tavg_watts\tavg_cadence"

// Rows renders one TSV line per segment of rep.
func Rows(rep report.Report) []string {
	out := make([]string, 0, len(rep.Segments))
	for _, sg := range rep.Segments {
		out = append(out, strings.Join([]string{
			rep.SourceFile,
			string(sg.Kind),
			fmt.Sprint(sg.Start),
			fmt.Sprint(sg.End),
			fmt.Sprint(sg.Duration),
			optMean(sg.AvgWatts, sg.HasWatts),
			optMean(sg.AvgCadence, sg.HasCadence),
			fmt.Sprintf("%.1f", sg.HR.MeanHR),
			fmt.Sprint(sg.HR.MinHR),
			fmt.Sprint(sg.HR.MaxHR),
			fmt.Sprintf("%.1f", sg.HR.StdDevHR),
			fmt.Sprintf("%+.1f", sg.HR.MeanDev),
			fmt.Sprint(sg.HR.TimeInBand),
			fmt.Sprintf("%.1f", sg.HR.PctInBand),
			fmt.Sprintf("%+.1f", sg.HR.Drift),
		}, "\t"))
	}
	return out
}

// SegRows renders the segments-only TSV lines for rep.
func SegRows(rep report.Report) []string {
	out := make([]string, 0, len(rep.Segments))
	for _, sg := range rep.Segments {
		out = append(out, strings.Join([]string{
			rep.SourceFile,
			string(sg.Kind),
			fmt.Sprint(sg.Start),
			fmt.Sprint(sg.End),
			fmt.Sprint(sg.Duration),
			optMean(sg.AvgWatts, sg.HasWatts),
			optMean(sg.AvgCadence, sg.HasCadence),
		}, "\t"))
	}
	return out
}

// optMean formats an optional channel mean; absent readings render "-".
func optMean(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}
