// core/segment/detect.go
package segment

import "ridehr-core/ride"

// Config holds segmentation parameters.
type Config struct {
	Window        int     // power smoothing window, seconds (0 = default 30)
	SteadyCV      float64 // max power coefficient of variation for steady (0 = default 0.10)
	MinSteady     int     // minimum steady duration, seconds (0 = default 300)
	FallbackSplit int     // ramp/steady split when power detection is unusable (0 = default 400)
}

const (
	defaultWindow        = 30
	defaultSteadyCV      = 0.10
	defaultMinSteady     = 300
	defaultFallbackSplit = 400

	// plateauFraction of the steady power level the smoothed ramp must
	// reach and hold before the ride counts as settled.
	plateauFraction = 0.95
)

// Detector splits a ride into a ramp-up window followed by a
// steady-state window.
type Detector struct {
	cfg Config
}

// New creates a Detector, filling zero config fields with defaults.
func New(c Config) *Detector {
	if c.Window <= 0 {
		c.Window = defaultWindow
	}
	if c.SteadyCV <= 0 {
		c.SteadyCV = defaultSteadyCV
	}
	if c.MinSteady <= 0 {
		c.MinSteady = defaultMinSteady
	}
	if c.FallbackSplit <= 0 {
		c.FallbackSplit = defaultFallbackSplit
	}
	return &Detector{cfg: c}
}

// Detect segments samples into ramp and steady windows.
//
// The power channel drives detection: the smoothed series must reach and
// hold 95% of the ride's plateau level (median smoothed power over the
// second half). When power is too sparse or never settles, the split
// falls back to a fixed offset from the ride start.
func (d *Detector) Detect(samples []ride.Sample) []Segment {
	if len(samples) < 2 {
		return nil
	}
	start := samples[0].Time
	end := samples[len(samples)-1].Time + 1

	power, coverage := powerSeries(samples)
	if coverage < 0.5 {
		return d.fallback(start, end)
	}

	smoothed := rollingMean(power, d.cfg.Window)
	plateau := median(smoothed[len(smoothed)/2:])
	if plateau <= 0 {
		return d.fallback(start, end)
	}
	threshold := plateauFraction * plateau

	split := -1
	for i := range smoothed {
		if sustained(smoothed, i, d.cfg.Window, threshold) {
			split = samples[i].Time
			break
		}
	}
	if split <= start || end-split < d.cfg.MinSteady {
		return d.fallback(start, end)
	}

	// Verify the steady side is actually steady.
	mean, sd := meanStd(power[indexAt(samples, split):])
	if mean <= 0 || sd/mean > d.cfg.SteadyCV {
		return d.fallback(start, end)
	}

	return []Segment{
		{Kind: Ramp, Start: start, End: split},
		{Kind: Steady, Start: split, End: end},
	}
}

// fallback splits at a fixed offset; the steady side is only emitted
// when it is long enough to mean anything.
func (d *Detector) fallback(start, end int) []Segment {
	split := start + d.cfg.FallbackSplit
	if end-split < d.cfg.MinSteady {
		return []Segment{{Kind: Ramp, Start: start, End: end}}
	}
	return []Segment{
		{Kind: Ramp, Start: start, End: split},
		{Kind: Steady, Start: split, End: end},
	}
}

// powerSeries extracts watts per sample (absent readings carried as the
// previous value) and the fraction of samples with a power reading.
func powerSeries(samples []ride.Sample) ([]float64, float64) {
	out := make([]float64, len(samples))
	have := 0
	last := 0.0
	for i, s := range samples {
		if s.HasWatts {
			last = float64(s.Watts)
			have++
		}
		out[i] = last
	}
	return out, float64(have) / float64(len(samples))
}

// sustained reports whether vals stays at or above threshold for w
// points starting at i (or through the end of the series).
func sustained(vals []float64, i, w int, threshold float64) bool {
	hi := i + w
	if hi > len(vals) {
		hi = len(vals)
	}
	for _, v := range vals[i:hi] {
		if v < threshold {
			return false
		}
	}
	return true
}

func indexAt(samples []ride.Sample, t int) int {
	for i, s := range samples {
		if s.Time >= t {
			return i
		}
	}
	return len(samples)
}
