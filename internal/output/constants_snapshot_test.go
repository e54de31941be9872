// internal/output/constants_snapshot_test.go
package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "source_file\tsegment\tstart\tend\tduration\tavg_watts\tavg_cadence\tavg_hr\tmin_hr\tmax_hr\thr_sd\tdev_from_target\ttime_in_band\tpct_in_band\tdrift"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestSegTSVHeader_Stable(t *testing.T) {
	const want = "source_file\tsegment\tstart\tend\tduration\tavg_watts\tavg_cadence"
	if SegTSVHeader != want {
		t.Fatalf("SegTSVHeader changed:\n got:  %q\n want: %q", SegTSVHeader, want)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatal("output format constants changed")
	}
}
