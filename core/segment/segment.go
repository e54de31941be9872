// core/segment/segment.go
package segment

// Kind labels a detected ride segment.
type Kind string

const (
	Ramp   Kind = "ramp"
	Steady Kind = "steady"
)

// Segment is a half-open window [Start, End) in ride seconds.
type Segment struct {
	Kind  Kind
	Start int
	End   int
}

// Duration returns the segment span in seconds.
func (s Segment) Duration() int { return s.End - s.Start }
