// core/segment/smooth.go
package segment

import (
	"math"
	"sort"
)

// rollingMean smooths vals with a centered window of w points.
// w <= 1 returns a copy.
func rollingMean(vals []float64, w int) []float64 {
	out := make([]float64, len(vals))
	if w <= 1 {
		copy(out, vals)
		return out
	}
	half := w / 2
	for i := range vals {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(vals) {
			hi = len(vals)
		}
		sum := 0.0
		for _, v := range vals[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// meanStd returns the mean and population standard deviation.
func meanStd(vals []float64) (mean, sd float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	for _, v := range vals {
		d := v - mean
		sd += d * d
	}
	return mean, math.Sqrt(sd / float64(len(vals)))
}
