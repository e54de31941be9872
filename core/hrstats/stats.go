// core/hrstats/stats.go
package hrstats

import (
	"math"

	"ridehr-core/ride"
)

// Defaults for the heart-rate evaluation.
const (
	DefaultTarget    = 127 // bpm
	DefaultTolerance = 5   // bpm either side of target
)

// Summary describes heart-rate behaviour over a window of samples,
// relative to a target.
type Summary struct {
	Samples  int
	MeanHR   float64
	MinHR    int
	MaxHR    int
	StdDevHR float64

	MeanDev    float64 // mean(HR − target), signed
	TimeInBand int     // samples with |HR − target| <= tolerance
	PctInBand  float64 // TimeInBand as a percentage of Samples
	Drift      float64 // mean HR of second half − mean HR of first half
}

// Evaluate computes a Summary for samples against target±tolerance bpm.
// An empty window yields the zero Summary.
func Evaluate(samples []ride.Sample, target, tolerance int) Summary {
	var sum Summary
	if len(samples) == 0 {
		return sum
	}
	sum.Samples = len(samples)
	sum.MinHR, sum.MaxHR = samples[0].HeartRate, samples[0].HeartRate

	total := 0.0
	for _, s := range samples {
		hr := s.HeartRate
		total += float64(hr)
		if hr < sum.MinHR {
			sum.MinHR = hr
		}
		if hr > sum.MaxHR {
			sum.MaxHR = hr
		}
		if abs(hr-target) <= tolerance {
			sum.TimeInBand++
		}
	}
	sum.MeanHR = total / float64(len(samples))
	sum.MeanDev = sum.MeanHR - float64(target)
	sum.PctInBand = 100 * float64(sum.TimeInBand) / float64(len(samples))

	variance := 0.0
	for _, s := range samples {
		d := float64(s.HeartRate) - sum.MeanHR
		variance += d * d
	}
	sum.StdDevHR = math.Sqrt(variance / float64(len(samples)))

	half := len(samples) / 2
	if half > 0 {
		sum.Drift = meanHR(samples[half:]) - meanHR(samples[:half])
	}
	return sum
}

func meanHR(samples []ride.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range samples {
		total += float64(s.HeartRate)
	}
	return total / float64(len(samples))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
