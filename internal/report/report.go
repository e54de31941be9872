// internal/report/report.go
package report

import (
	"github.com/google/uuid"

	"ridehr-core/hrstats"
	"ridehr-core/ride"
	"ridehr-core/segment"
)

// SegmentReport is one detected window with its readings summarized.
type SegmentReport struct {
	Kind     segment.Kind
	Start    int
	End      int
	Duration int

	AvgWatts   float64
	HasWatts   bool
	AvgCadence float64
	HasCadence bool

	HR hrstats.Summary
}

// Report is the analysis of one ride: the unit flowing through the
// pipeline and writers.
type Report struct {
	ID         string
	SourceFile string
	Target     int
	Tolerance  int
	Duration   int
	Samples    int
	Segments   []SegmentReport
}

// Build evaluates each detected segment of r against target±tolerance.
func Build(r *ride.Ride, segs []segment.Segment, target, tolerance int) Report {
	rep := Report{
		ID:         uuid.NewString(),
		SourceFile: r.Source,
		Target:     target,
		Tolerance:  tolerance,
		Duration:   r.Duration(),
		Samples:    len(r.Samples),
	}
	for _, sg := range segs {
		window := r.Slice(sg.Start, sg.End)
		sr := SegmentReport{
			Kind:     sg.Kind,
			Start:    sg.Start,
			End:      sg.End,
			Duration: sg.Duration(),
			HR:       hrstats.Evaluate(window, target, tolerance),
		}
		sr.AvgWatts, sr.HasWatts = ride.MeanWatts(window)
		sr.AvgCadence, sr.HasCadence = ride.MeanCadence(window)
		rep.Segments = append(rep.Segments, sr)
	}
	return rep
}

// Steady returns the first steady segment, or nil if none was detected.
func (r *Report) Steady() *SegmentReport {
	for i := range r.Segments {
		if r.Segments[i].Kind == segment.Steady {
			return &r.Segments[i]
		}
	}
	return nil
}
