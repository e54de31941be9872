// pkg/api/report_v1.go
//
// Stable v1 wire schema for ride reports. Field names here are frozen;
// extend with new optional fields rather than renaming.
package api

// SegmentV1 is one detected ride window with its heart-rate evaluation.
type SegmentV1 struct {
	Kind     string `json:"kind"` // "ramp" | "steady"
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Duration int    `json:"duration"`

	AvgWatts   *float64 `json:"avg_watts,omitempty"`
	AvgCadence *float64 `json:"avg_cadence,omitempty"`

	Samples    int     `json:"samples"`
	MeanHR     float64 `json:"mean_hr"`
	MinHR      int     `json:"min_hr"`
	MaxHR      int     `json:"max_hr"`
	StdDevHR   float64 `json:"hr_sd"`
	MeanDev    float64 `json:"dev_from_target"`
	TimeInBand int     `json:"time_in_band"`
	PctInBand  float64 `json:"pct_in_band"`
	Drift      float64 `json:"drift"`
}

// ReportV1 is the analysis of one ride log.
type ReportV1 struct {
	ID           string      `json:"id"`
	SourceFile   string      `json:"source_file"`
	TargetBPM    int         `json:"target_bpm"`
	ToleranceBPM int         `json:"tolerance_bpm"`
	Duration     int         `json:"duration"`
	Samples      int         `json:"samples"`
	Segments     []SegmentV1 `json:"segments"`
}
