// core/ride/sample.go
package ride

// Sample is one row of a workout log: one moment of ride time with the
// rider's instantaneous readings. Watts and Cadence are optional in the
// source logs (blank fields); HeartRate is always present.
type Sample struct {
	Time      int // seconds from ride start
	Watts     int
	Cadence   int
	HeartRate int

	HasWatts   bool
	HasCadence bool
}

// Ride is an ordered series of samples from a single log.
// Sample times are strictly increasing; gaps are allowed.
type Ride struct {
	Source  string
	Samples []Sample
}

// Duration returns the ride span in seconds (last time − first time).
func (r *Ride) Duration() int {
	if len(r.Samples) == 0 {
		return 0
	}
	return r.Samples[len(r.Samples)-1].Time - r.Samples[0].Time
}

// Slice returns the samples with start <= Time < end.
func (r *Ride) Slice(start, end int) []Sample {
	lo := 0
	for lo < len(r.Samples) && r.Samples[lo].Time < start {
		lo++
	}
	hi := lo
	for hi < len(r.Samples) && r.Samples[hi].Time < end {
		hi++
	}
	return r.Samples[lo:hi]
}

// MeanWatts averages the power readings that are present.
// ok is false when no sample carries power.
func MeanWatts(samples []Sample) (mean float64, ok bool) {
	sum, n := 0.0, 0
	for _, s := range samples {
		if s.HasWatts {
			sum += float64(s.Watts)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// MeanCadence averages the cadence readings that are present.
func MeanCadence(samples []Sample) (mean float64, ok bool) {
	sum, n := 0.0, 0
	for _, s := range samples {
		if s.HasCadence {
			sum += float64(s.Cadence)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
